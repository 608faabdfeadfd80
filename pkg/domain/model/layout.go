package model

import (
	"path/filepath"
	"strings"
)

// Fixed names shared by the generator's build and its per-version inputs.
const (
	ExecutableName   = "Codegen.exe"
	MarkerFileName   = "Entry.bro"
	ExcludedFolder   = "include"
	ArtifactDir      = "Geode"
	ArtifactFileName = "CodegenData.json"
	OutputFileName   = "codegen.json"
	OutputTarget     = "./"
)

// Layout holds every filesystem location and fixed argument a run needs.
// Paths are absolute once returned by Resolve.
type Layout struct {
	SourceDir   string // CMake project root of the generator
	BuildDir    string // CMake binary dir
	BindingsDir string // one subfolder per version
	OutputDir   string // base of <version>/codegen.json

	CMake       string // build tool binary
	BuildConfig string // passed to --config
	Platform    string // first positional generator argument

	Only []string // restrict the batch to these folder names; empty means all
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		SourceDir:   "./bindings/codegen",
		BuildDir:    "./bindings/codegen/build",
		BindingsDir: "./bindings/bindings",
		OutputDir:   "../src/data/versions",
		CMake:       "cmake",
		BuildConfig: "Release",
		Platform:    "Win64",
	}
}

// Resolve returns a copy of the layout with every directory made absolute
// against the current working directory.
func (l Layout) Resolve() (Layout, error) {
	dirs := []*string{&l.SourceDir, &l.BuildDir, &l.BindingsDir, &l.OutputDir}
	for _, dir := range dirs {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return l, err
		}
		*dir = abs
	}
	return l, nil
}

// ExecutableCandidates lists where a build may leave the generator, in
// lookup order. Single-config generators write into the build dir itself,
// multi-config ones (Visual Studio) into a per-configuration subdir.
func (l Layout) ExecutableCandidates() []string {
	return []string{
		filepath.Join(l.BuildDir, ExecutableName),
		filepath.Join(l.BuildDir, "Release", ExecutableName),
	}
}

// ArtifactPath is where the generator leaves its data file for a version.
func (l Layout) ArtifactPath(version string) string {
	return filepath.Join(l.BindingsDir, version, ArtifactDir, ArtifactFileName)
}

// OutputPaths returns the destination directory and file for a version.
func (l Layout) OutputPaths(version string) (dir, file string) {
	dir = filepath.Join(l.OutputDir, version)
	return dir, filepath.Join(dir, OutputFileName)
}

// Selected reports whether a folder name passes the Only filter.
func (l Layout) Selected(name string) bool {
	if len(l.Only) == 0 {
		return true
	}
	for _, n := range l.Only {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
