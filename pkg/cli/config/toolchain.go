package config

import (
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Toolchain holds build tool configuration
type Toolchain struct {
	CMake       string
	BuildConfig string
}

// Flags returns CLI flags for build tool configuration
func (c *Toolchain) Flags() []cli.Flag {
	def := model.DefaultLayout()
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cmake",
			Usage:       "CMake binary",
			Value:       def.CMake,
			Destination: &c.CMake,
			Sources:     cli.EnvVars("CODEGENRUN_CMAKE"),
		},
		&cli.StringFlag{
			Name:        "build-config",
			Usage:       "CMake build configuration",
			Value:       def.BuildConfig,
			Destination: &c.BuildConfig,
			Sources:     cli.EnvVars("CODEGENRUN_BUILD_CONFIG"),
		},
	}
}

func (c *Toolchain) applyFile(cmd *cli.Command, f *File) {
	setString(cmd, "cmake", &c.CMake, f.CMake)
	setString(cmd, "build-config", &c.BuildConfig, f.BuildConfig)
}
