package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/geode-sdk/codegenrun/pkg/cli/config"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logger *slog.Logger
	app := newApp(&logger)

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func newApp(logger **slog.Logger) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:           "codegenrun",
		Usage:          "Build the bindings code generator and run it over every version folder",
		Version:        types.Version,
		Flags:          loggerCfg.Flags(),
		DefaultCommand: "run",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			l, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			*logger = l

			slog.SetDefault(l)
			ctx = ctxlog.With(ctx, l)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdRun(),
			cmdBuild(),
			cmdList(),
		},
	}
}
