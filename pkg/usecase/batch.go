package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/geode-sdk/codegenrun/pkg/domain/interfaces"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/geode-sdk/codegenrun/pkg/utils/async"
	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type batchUseCase struct {
	runner interfaces.ProcessRunner
	jobs   int
}

// BatchOption is a functional option for the batch use case
type BatchOption func(*batchUseCase)

// WithJobs sets how many generator processes may run at once
func WithJobs(jobs int) BatchOption {
	return func(uc *batchUseCase) {
		uc.jobs = jobs
	}
}

// NewBatch creates a new instance of BatchUseCase
func NewBatch(runner interfaces.ProcessRunner, opts ...BatchOption) interfaces.BatchUseCase {
	uc := &batchUseCase{
		runner: runner,
		jobs:   1,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Scan lists the bindings directory in lexicographic order and classifies
// every entry
func (uc *batchUseCase) Scan(ctx context.Context, layout model.Layout) ([]model.Folder, error) {
	info, err := os.Stat(layout.BindingsDir)
	if err != nil || !info.IsDir() {
		return nil, goerr.New("bindings directory not found",
			goerr.V("bindings_dir", layout.BindingsDir),
			goerr.T(types.ErrTagBindingsNotFound))
	}

	// ReadDir sorts by filename; run order and the success list follow it
	entries, err := os.ReadDir(layout.BindingsDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read bindings directory",
			goerr.V("bindings_dir", layout.BindingsDir))
	}
	folders := make([]model.Folder, 0, len(entries))
	for _, entry := range entries {
		folder := model.Folder{
			Name: entry.Name(),
			Path: filepath.Join(layout.BindingsDir, entry.Name()),
		}
		folder.SkipReason = classify(folder, layout)
		folders = append(folders, folder)
	}

	return folders, nil
}

func classify(folder model.Folder, layout model.Layout) model.SkipReason {
	// Stat follows symlinks so a linked version folder still counts
	info, err := os.Stat(folder.Path)
	if err != nil || !info.IsDir() {
		return model.SkipNotDirectory
	}
	if strings.EqualFold(folder.Name, model.ExcludedFolder) {
		return model.SkipExcluded
	}
	if !isRegularFile(filepath.Join(folder.Path, model.MarkerFileName)) {
		return model.SkipMissingMarker
	}
	if !layout.Selected(folder.Name) {
		return model.SkipNotSelected
	}
	return model.SkipNone
}

// Run invokes the generator on every qualifying folder. A failing folder is
// logged and recorded; it never stops the batch.
func (uc *batchUseCase) Run(ctx context.Context, exe string, layout model.Layout) ([]model.FolderResult, []string, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Running generator over bindings",
		"bindings_dir", layout.BindingsDir,
		"output_dir", layout.OutputDir,
	)

	if err := os.MkdirAll(layout.OutputDir, 0755); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output directory",
			goerr.V("output_dir", layout.OutputDir))
	}

	folders, err := uc.Scan(ctx, layout)
	if err != nil {
		return nil, nil, err
	}

	var targets []model.Folder
	for _, folder := range folders {
		switch folder.SkipReason {
		case model.SkipNone:
			targets = append(targets, folder)
		case model.SkipNotDirectory:
			logger.Info("Skipping entry, not a directory", "name", folder.Name)
		case model.SkipExcluded:
			logger.Info("Skipping folder", "name", folder.Name)
		case model.SkipMissingMarker:
			logger.Warn("Marker file not found, skipping", "name", folder.Name, "marker", model.MarkerFileName)
		case model.SkipNotSelected:
			logger.Debug("Skipping folder not selected", "name", folder.Name)
		}
	}

	results, err := async.Map(ctx, uc.jobs, targets, func(ctx context.Context, folder model.Folder) (model.FolderResult, error) {
		return uc.runFolder(ctx, exe, layout, folder)
	})
	if err != nil {
		return nil, nil, err
	}

	var succeeded []string
	for _, r := range results {
		if r.Succeeded {
			succeeded = append(succeeded, r.Folder.Name)
		}
	}

	return results, succeeded, nil
}

func (uc *batchUseCase) runFolder(ctx context.Context, exe string, layout model.Layout, folder model.Folder) (model.FolderResult, error) {
	logger := ctxlog.From(ctx).With("folder", folder.Name)
	result := model.FolderResult{Folder: folder}

	cmd := &model.Command{
		Name:        exe,
		Args:        []string{layout.Platform, folder.Path, model.OutputTarget},
		Passthrough: true,
	}
	logger.Info("Running executable on folder", "command", shellquote.Join(cmd.Argv()...))

	proc, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		if ctx.Err() != nil {
			return result, goerr.Wrap(err, "generator run interrupted", goerr.V("folder", folder.Name))
		}
		logger.Error("Failed to start codegen", "error", err)
		result.ExitCode = -1
		result.Error = err.Error()
		return result, nil
	}

	result.ExitCode = proc.ExitCode
	if !proc.Succeeded() {
		logger.Error("Codegen error in folder", "exit_code", proc.ExitCode)
		return result, nil
	}

	logger.Info("Completed folder")
	result.Succeeded = true
	return result, nil
}
