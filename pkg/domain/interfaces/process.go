package interfaces

import (
	"context"

	"github.com/geode-sdk/codegenrun/pkg/domain/model"
)

// ProcessRunner starts external processes and waits for them to exit
type ProcessRunner interface {
	// Run blocks until the process exits. A non-zero exit is reported in the
	// result, not as an error; an error means the process never ran.
	Run(ctx context.Context, cmd *model.Command) (*model.ProcessResult, error)
}
