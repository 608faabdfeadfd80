package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/geode-sdk/codegenrun/pkg/domain/interfaces"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// config holds runner configuration
type config struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
}

// Option is a functional option for the runner
type Option func(*config)

// WithDir sets the working directory of started processes
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithOutput sets where passthrough commands write their output
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *config) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

type runner struct {
	cfg config
}

// NewRunner creates a ProcessRunner backed by os/exec
func NewRunner(opts ...Option) interfaces.ProcessRunner {
	cfg := config{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &runner{cfg: cfg}
}

// Run starts the command and waits for it. No timeout is applied; only
// cancellation of ctx stops a hung process.
func (r *runner) Run(ctx context.Context, cmd *model.Command) (*model.ProcessResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.cfg.dir

	var stdout, stderr bytes.Buffer
	if cmd.Passthrough {
		c.Stdout = r.cfg.stdout
		c.Stderr = r.cfg.stderr
	} else {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	err := c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			return nil, wrapStartError(ctx, err, cmd)
		}
	}

	return &model.ProcessResult{
		ExitCode: c.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}

func wrapStartError(ctx context.Context, err error, cmd *model.Command) error {
	if ctx.Err() != nil {
		return goerr.Wrap(ctx.Err(), "process interrupted", goerr.V("name", cmd.Name))
	}

	opts := []goerr.Option{goerr.V("name", cmd.Name), goerr.V("args", cmd.Args)}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		opts = append(opts, goerr.T(types.ErrTagToolNotFound))
		return goerr.Wrap(err, "executable not found", opts...)
	}
	return goerr.Wrap(err, "failed to start process", opts...)
}
