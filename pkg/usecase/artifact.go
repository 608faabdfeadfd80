package usecase

import (
	"context"
	"io"
	"os"

	"github.com/geode-sdk/codegenrun/pkg/domain/interfaces"
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type artifactUseCase struct{}

// NewArtifact creates a new instance of ArtifactUseCase
func NewArtifact() interfaces.ArtifactUseCase {
	return &artifactUseCase{}
}

// Copy copies <bindings>/<version>/Geode/CodegenData.json to
// <output>/<version>/codegen.json for every version, in the given order
func (uc *artifactUseCase) Copy(ctx context.Context, layout model.Layout, versions []string) []model.CopyResult {
	logger := ctxlog.From(ctx)
	results := make([]model.CopyResult, 0, len(versions))

	for _, version := range versions {
		destDir, dest := layout.OutputPaths(version)
		result := model.CopyResult{
			Version: version,
			Source:  layout.ArtifactPath(version),
			DestDir: destDir,
			Dest:    dest,
		}

		if !isRegularFile(result.Source) {
			logger.Warn("CodegenData.json not found at expected path",
				"version", version,
				"source", result.Source,
			)
			result.Status = model.CopyStatusMissing
			results = append(results, result)
			continue
		}

		if err := copyFile(result.Source, result.DestDir, result.Dest); err != nil {
			logger.Error("Failed to copy CodegenData.json",
				"version", version,
				"error", err,
			)
			result.Status = model.CopyStatusFailed
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		logger.Info("Copied CodegenData.json", "version", version, "dest", result.Dest)
		result.Status = model.CopyStatusCopied
		results = append(results, result)
	}

	return results
}

// copyFile copies contents, permission bits and modification time. An
// existing destination is overwritten.
func copyFile(src, destDir, dest string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory", goerr.V("dest_dir", destDir))
	}

	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source", goerr.V("src", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat source", goerr.V("src", src))
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("dest", dest))
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("dest", dest))
	}

	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return goerr.Wrap(err, "failed to set file mode", goerr.V("dest", dest))
	}
	if err := os.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		return goerr.Wrap(err, "failed to set file times", goerr.V("dest", dest))
	}

	return nil
}
