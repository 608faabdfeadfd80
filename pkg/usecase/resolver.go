package usecase

import (
	"context"
	"os"

	"github.com/geode-sdk/codegenrun/pkg/domain/interfaces"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type resolverUseCase struct {
	runner interfaces.ProcessRunner
}

// NewResolver creates a new instance of ResolverUseCase
func NewResolver(runner interfaces.ProcessRunner) interfaces.ResolverUseCase {
	return &resolverUseCase{
		runner: runner,
	}
}

// Resolve returns the first existing executable candidate, building the
// generator only when none is present
func (uc *resolverUseCase) Resolve(ctx context.Context, layout model.Layout) (*model.Executable, error) {
	logger := ctxlog.From(ctx)

	if path, ok := findExecutable(layout); ok {
		logger.Info("Found existing Codegen executable, skipping build", "path", path)
		return &model.Executable{Path: path}, nil
	}

	logger.Info("Codegen executable not found, starting build", "build_dir", layout.BuildDir)
	return uc.Build(ctx, layout)
}

// Build configures and builds the generator with CMake, then looks for the
// executable. Every failure is fatal; nothing is retried.
func (uc *resolverUseCase) Build(ctx context.Context, layout model.Layout) (*model.Executable, error) {
	logger := ctxlog.From(ctx)

	if err := os.MkdirAll(layout.BuildDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create build directory",
			goerr.V("build_dir", layout.BuildDir))
	}

	configure := &model.Command{
		Name: layout.CMake,
		Args: []string{"-S", layout.SourceDir, "-B", layout.BuildDir},
	}
	logger.Info("Configuring CMake", "source_dir", layout.SourceDir, "build_dir", layout.BuildDir)
	if err := uc.runStep(ctx, "configure", configure); err != nil {
		return nil, err
	}

	build := &model.Command{
		Name: layout.CMake,
		Args: []string{"--build", layout.BuildDir, "--config", layout.BuildConfig},
	}
	logger.Info("Building project", "config", layout.BuildConfig)
	if err := uc.runStep(ctx, "build", build); err != nil {
		return nil, err
	}

	path, ok := findExecutable(layout)
	if !ok {
		candidates := layout.ExecutableCandidates()
		logger.Error("Executable not found in expected locations after build",
			"candidates", candidates,
		)
		return nil, goerr.New("executable not found after build",
			goerr.V("candidates", candidates),
			goerr.T(types.ErrTagExecutableNotFound))
	}

	logger.Info("Built Codegen executable", "path", path)
	return &model.Executable{Path: path, Built: true}, nil
}

func (uc *resolverUseCase) runStep(ctx context.Context, step string, cmd *model.Command) error {
	logger := ctxlog.From(ctx)
	logger.Debug("Executing command", "step", step, "command", shellquote.Join(cmd.Argv()...))

	result, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagToolNotFound) {
			logger.Error("Build tool not found", "step", step, "tool", cmd.Name)
		}
		return goerr.Wrap(err, "failed to run "+step+" step", goerr.V("step", step))
	}

	if !result.Succeeded() {
		logger.Error("CMake "+step+" failed",
			"exit_code", result.ExitCode,
			"stdout", string(result.Stdout),
			"stderr", string(result.Stderr),
		)
		return goerr.New("cmake "+step+" failed",
			goerr.V("step", step),
			goerr.V("exit_code", result.ExitCode),
			goerr.T(types.ErrTagBuildFailed))
	}

	return nil
}

// findExecutable returns the first candidate that exists as a regular file
func findExecutable(layout model.Layout) (string, bool) {
	for _, path := range layout.ExecutableCandidates() {
		if isRegularFile(path) {
			return path, true
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
