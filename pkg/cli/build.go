package cli

import (
	"context"
	"fmt"

	"github.com/geode-sdk/codegenrun/pkg/cli/config"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/infra/process"
	"github.com/geode-sdk/codegenrun/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdBuild() *cli.Command {
	var (
		layoutCfg    config.Layout
		toolchainCfg config.Toolchain
		generatorCfg config.Generator
		rebuild      bool
	)

	flags := append(layoutCfg.Flags(), toolchainCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "rebuild",
		Usage:       "Configure and build even if an executable exists",
		Destination: &rebuild,
	})

	return &cli.Command{
		Name:  "build",
		Usage: "Only resolve or build the generator executable",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			generatorCfg.Platform = model.DefaultLayout().Platform
			generatorCfg.Jobs = 1

			layout, err := config.Load(c, &layoutCfg, &toolchainCfg, &generatorCfg)
			if err != nil {
				return err
			}

			resolver := usecase.NewResolver(process.NewRunner())

			var exe *model.Executable
			if rebuild {
				exe, err = resolver.Build(ctx, layout)
			} else {
				exe, err = resolver.Resolve(ctx, layout)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Root().Writer, exe.Path)
			return nil
		},
	}
}
