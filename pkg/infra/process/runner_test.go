package process_test

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/geode-sdk/codegenrun/pkg/infra/process"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRunner_CapturesOutput(t *testing.T) {
	skipWithoutShell(t)

	r := process.NewRunner()
	result, err := r.Run(context.Background(), &model.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	gt.NoError(t, err)
	gt.Equal(t, result.ExitCode, 0)
	gt.True(t, result.Succeeded())
	gt.Equal(t, string(result.Stdout), "out\n")
	gt.Equal(t, string(result.Stderr), "err\n")
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	skipWithoutShell(t)

	r := process.NewRunner()
	result, err := r.Run(context.Background(), &model.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	})
	gt.NoError(t, err)
	gt.Equal(t, result.ExitCode, 3)
	gt.False(t, result.Succeeded())
}

func TestRunner_Passthrough(t *testing.T) {
	skipWithoutShell(t)

	var stdout, stderr bytes.Buffer
	r := process.NewRunner(process.WithOutput(&stdout, &stderr))
	result, err := r.Run(context.Background(), &model.Command{
		Name:        "sh",
		Args:        []string{"-c", "echo streamed; echo oops >&2"},
		Passthrough: true,
	})
	gt.NoError(t, err)
	gt.Equal(t, stdout.String(), "streamed\n")
	gt.Equal(t, stderr.String(), "oops\n")
	gt.Equal(t, len(result.Stdout), 0)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	r := process.NewRunner(process.WithDir(dir))
	result, err := r.Run(context.Background(), &model.Command{
		Name: "sh",
		Args: []string{"-c", "test -d \"$PWD\" && basename \"$PWD\""},
	})
	gt.NoError(t, err)
	gt.String(t, string(result.Stdout)).Contains(filepath.Base(dir))
}

func TestRunner_ToolNotFound(t *testing.T) {
	r := process.NewRunner()
	result, err := r.Run(context.Background(), &model.Command{
		Name: "codegenrun-no-such-tool-7f3a",
	})
	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.True(t, goerr.HasTag(err, types.ErrTagToolNotFound))
}

func TestRunner_Cancelled(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := process.NewRunner()
	_, err := r.Run(ctx, &model.Command{
		Name: "sh",
		Args: []string{"-c", "sleep 5"},
	})
	gt.Error(t, err)
	gt.False(t, goerr.HasTag(err, types.ErrTagToolNotFound))
}
