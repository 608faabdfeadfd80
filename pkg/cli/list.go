package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/geode-sdk/codegenrun/pkg/cli/config"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/infra/process"
	"github.com/geode-sdk/codegenrun/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var (
		layoutCfg    config.Layout
		toolchainCfg config.Toolchain
		generatorCfg config.Generator
	)

	flags := append(layoutCfg.Flags(), generatorCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show which bindings folders would be processed",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			def := model.DefaultLayout()
			toolchainCfg.CMake = def.CMake
			toolchainCfg.BuildConfig = def.BuildConfig

			layout, err := config.Load(c, &layoutCfg, &toolchainCfg, &generatorCfg)
			if err != nil {
				return err
			}

			folders, err := usecase.NewBatch(process.NewRunner()).Scan(ctx, layout)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			skip := color.New(color.Faint)
			for _, f := range folders {
				if f.Qualifies() {
					fmt.Fprintf(w, "%s\n", f.Name)
				} else {
					skip.Fprintf(w, "%s (skipped: %s)\n", f.Name, f.SkipReason)
				}
			}
			return nil
		},
	}
}
