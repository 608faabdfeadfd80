package usecase

import (
	"context"

	"github.com/geode-sdk/codegenrun/pkg/domain/interfaces"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// Pipeline chains resolver, batch and artifact copy
type Pipeline struct {
	resolver interfaces.ResolverUseCase
	batch    interfaces.BatchUseCase
	artifact interfaces.ArtifactUseCase
}

// NewPipeline creates a new pipeline
func NewPipeline(resolver interfaces.ResolverUseCase, batch interfaces.BatchUseCase, artifact interfaces.ArtifactUseCase) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		batch:    batch,
		artifact: artifact,
	}
}

// Execute runs the whole pipeline. The returned error is always fatal;
// per-folder failures are only visible in the report.
func (p *Pipeline) Execute(ctx context.Context, layout model.Layout) (*model.Report, error) {
	report := &model.Report{RunID: uuid.NewString()}
	logger := ctxlog.From(ctx).With("run_id", report.RunID)
	ctx = ctxlog.With(ctx, logger)

	exe, err := p.resolver.Resolve(ctx, layout)
	if err != nil {
		return nil, err
	}
	report.Executable = exe.Path
	report.Built = exe.Built

	results, succeeded, err := p.batch.Run(ctx, exe.Path, layout)
	if err != nil {
		return nil, err
	}
	report.Folders = results
	report.Succeeded = succeeded

	report.Copies = p.artifact.Copy(ctx, layout, succeeded)

	logger.Info("Codegen run finished",
		"succeeded", len(report.Succeeded),
		"failed", len(report.Failed()),
		"copied", report.Copied(),
	)
	return report, nil
}
