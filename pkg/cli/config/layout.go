package config

import (
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Layout holds directory configuration. Relative paths are resolved against
// the working directory.
type Layout struct {
	ConfigFile  string
	SourceDir   string
	BuildDir    string
	BindingsDir string
	OutputDir   string
}

// Flags returns CLI flags for directory configuration
func (c *Layout) Flags() []cli.Flag {
	def := model.DefaultLayout()
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML config file",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("CODEGENRUN_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "source-dir",
			Usage:       "CMake project of the code generator",
			Value:       def.SourceDir,
			Destination: &c.SourceDir,
			Sources:     cli.EnvVars("CODEGENRUN_SOURCE_DIR"),
		},
		&cli.StringFlag{
			Name:        "build-dir",
			Usage:       "CMake build directory",
			Value:       def.BuildDir,
			Destination: &c.BuildDir,
			Sources:     cli.EnvVars("CODEGENRUN_BUILD_DIR"),
		},
		&cli.StringFlag{
			Name:        "bindings-dir",
			Usage:       "Directory with one bindings folder per version",
			Value:       def.BindingsDir,
			Destination: &c.BindingsDir,
			Sources:     cli.EnvVars("CODEGENRUN_BINDINGS_DIR"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Base directory receiving <version>/codegen.json",
			Value:       def.OutputDir,
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("CODEGENRUN_OUTPUT_DIR"),
		},
	}
}

func (c *Layout) applyFile(cmd *cli.Command, f *File) {
	setString(cmd, "source-dir", &c.SourceDir, f.SourceDir)
	setString(cmd, "build-dir", &c.BuildDir, f.BuildDir)
	setString(cmd, "bindings-dir", &c.BindingsDir, f.BindingsDir)
	setString(cmd, "output-dir", &c.OutputDir, f.OutputDir)
}

// setString overwrites dst with v unless the flag was given explicitly or v is empty
func setString(cmd *cli.Command, name string, dst *string, v string) {
	if v != "" && !cmd.IsSet(name) {
		*dst = v
	}
}
