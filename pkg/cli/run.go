package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/geode-sdk/codegenrun/pkg/cli/config"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/infra/process"
	"github.com/geode-sdk/codegenrun/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		layoutCfg    config.Layout
		toolchainCfg config.Toolchain
		generatorCfg config.Generator
		reportPath   string
	)

	flags := append(layoutCfg.Flags(), toolchainCfg.Flags()...)
	flags = append(flags, generatorCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "report",
		Usage:       "Write a JSON report of the run to this file",
		Destination: &reportPath,
		Sources:     cli.EnvVars("CODEGENRUN_REPORT"),
	})

	return &cli.Command{
		Name:  "run",
		Usage: "Build the generator if needed, run it on every version and collect codegen.json",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			layout, err := config.Load(c, &layoutCfg, &toolchainCfg, &generatorCfg)
			if err != nil {
				return err
			}

			runner := process.NewRunner()
			pipeline := usecase.NewPipeline(
				usecase.NewResolver(runner),
				usecase.NewBatch(runner, usecase.WithJobs(generatorCfg.Jobs)),
				usecase.NewArtifact(),
			)

			report, err := pipeline.Execute(ctx, layout)
			if err != nil {
				return goerr.Wrap(err, "codegen run failed")
			}

			printSummary(c.Root().Writer, report)

			if reportPath != "" {
				if err := writeReport(reportPath, report); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, report *model.Report) {
	ok := color.New(color.FgGreen)
	ng := color.New(color.FgRed)
	warn := color.New(color.FgYellow)

	copies := make(map[string]model.CopyResult, len(report.Copies))
	for _, c := range report.Copies {
		copies[c.Version] = c
	}

	fmt.Fprintf(w, "\nExecutable: %s\n", report.Executable)
	for _, f := range report.Folders {
		name := f.Folder.Name
		if !f.Succeeded {
			ng.Fprintf(w, "  FAIL  %s (exit %d)\n", name, f.ExitCode)
			continue
		}

		switch c := copies[name]; c.Status {
		case model.CopyStatusCopied:
			ok.Fprintf(w, "  OK    %s -> %s\n", name, c.Dest)
		case model.CopyStatusMissing:
			warn.Fprintf(w, "  WARN  %s (no %s)\n", name, model.ArtifactFileName)
		default:
			ng.Fprintf(w, "  WARN  %s (copy failed: %s)\n", name, c.Error)
		}
	}

	fmt.Fprintf(w, "%d succeeded, %d failed, %d copied\n",
		len(report.Succeeded), len(report.Failed()), report.Copied())
}

func writeReport(path string, report *model.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal report")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write report", goerr.V("path", path))
	}
	return nil
}
