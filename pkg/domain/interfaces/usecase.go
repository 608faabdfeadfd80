package interfaces

import (
	"context"

	"github.com/geode-sdk/codegenrun/pkg/domain/model"
)

// ResolverUseCase locates or builds the generator executable
type ResolverUseCase interface {
	// Resolve returns an existing executable or builds one
	Resolve(ctx context.Context, layout model.Layout) (*model.Executable, error)

	// Build configures and builds unconditionally, then locates the executable
	Build(ctx context.Context, layout model.Layout) (*model.Executable, error)
}

// BatchUseCase runs the generator over the bindings directory
type BatchUseCase interface {
	// Scan lists bindings entries in sorted order with their skip reasons
	Scan(ctx context.Context, layout model.Layout) ([]model.Folder, error)

	// Run invokes exe once per qualifying folder and returns the per-folder
	// results together with the names that exited zero, both in sorted order
	Run(ctx context.Context, exe string, layout model.Layout) ([]model.FolderResult, []string, error)
}

// ArtifactUseCase copies generated data files to the output tree
type ArtifactUseCase interface {
	// Copy never fails as a whole; per-version failures are in the results
	Copy(ctx context.Context, layout model.Layout, versions []string) []model.CopyResult
}
