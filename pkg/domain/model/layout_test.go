package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestLayout_Resolve(t *testing.T) {
	wd, err := os.Getwd()
	gt.NoError(t, err)

	layout, err := model.DefaultLayout().Resolve()
	gt.NoError(t, err)

	gt.Equal(t, layout.SourceDir, filepath.Join(wd, "bindings", "codegen"))
	gt.Equal(t, layout.BuildDir, filepath.Join(wd, "bindings", "codegen", "build"))
	gt.Equal(t, layout.BindingsDir, filepath.Join(wd, "bindings", "bindings"))
	gt.Equal(t, layout.OutputDir, filepath.Join(filepath.Dir(wd), "src", "data", "versions"))
	gt.Equal(t, layout.Platform, "Win64")
	gt.Equal(t, layout.BuildConfig, "Release")
}

func TestLayout_Paths(t *testing.T) {
	layout := model.Layout{
		BuildDir:    "/repo/build",
		BindingsDir: "/repo/bindings",
		OutputDir:   "/site/versions",
	}

	gt.Equal(t, layout.ExecutableCandidates(), []string{
		filepath.Join("/repo/build", "Codegen.exe"),
		filepath.Join("/repo/build", "Release", "Codegen.exe"),
	})
	gt.Equal(t, layout.ArtifactPath("2.206"), filepath.Join("/repo/bindings", "2.206", "Geode", "CodegenData.json"))

	dir, file := layout.OutputPaths("2.206")
	gt.Equal(t, dir, filepath.Join("/site/versions", "2.206"))
	gt.Equal(t, file, filepath.Join("/site/versions", "2.206", "codegen.json"))
}

func TestLayout_Selected(t *testing.T) {
	tests := []struct {
		name     string
		only     []string
		folder   string
		expected bool
	}{
		{name: "no filter", only: nil, folder: "2.206", expected: true},
		{name: "listed", only: []string{"2.206"}, folder: "2.206", expected: true},
		{name: "case insensitive", only: []string{"mac"}, folder: "Mac", expected: true},
		{name: "not listed", only: []string{"2.206"}, folder: "2.2074", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := model.Layout{Only: tt.only}
			gt.Equal(t, layout.Selected(tt.folder), tt.expected)
		})
	}
}

func TestReport_Summary(t *testing.T) {
	report := &model.Report{
		Folders: []model.FolderResult{
			{Folder: model.Folder{Name: "a"}, Succeeded: true},
			{Folder: model.Folder{Name: "b"}, ExitCode: 1},
			{Folder: model.Folder{Name: "c"}, Succeeded: true},
		},
		Copies: []model.CopyResult{
			{Version: "a", Status: model.CopyStatusCopied},
			{Version: "c", Status: model.CopyStatusMissing},
		},
	}

	gt.Equal(t, report.Failed(), []string{"b"})
	gt.Equal(t, report.Copied(), 1)
}

func TestCommand_Argv(t *testing.T) {
	cmd := &model.Command{Name: "cmake", Args: []string{"--build", "build"}}
	gt.Equal(t, cmd.Argv(), []string{"cmake", "--build", "build"})
	gt.Equal(t, cmd.Args, []string{"--build", "build"})
}
