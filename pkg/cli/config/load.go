package config

import (
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Load merges flags with the optional config file and returns an absolute
// layout. Precedence is flag or env, then file, then default.
func Load(cmd *cli.Command, layout *Layout, toolchain *Toolchain, generator *Generator) (model.Layout, error) {
	if layout.ConfigFile != "" {
		f, err := LoadFile(layout.ConfigFile)
		if err != nil {
			return model.Layout{}, err
		}
		layout.applyFile(cmd, f)
		toolchain.applyFile(cmd, f)
		generator.applyFile(cmd, f)
	}

	if generator.Jobs < 1 {
		return model.Layout{}, goerr.New("jobs must be at least 1",
			goerr.V("jobs", generator.Jobs),
			goerr.T(types.ErrTagInvalidConfig))
	}
	if generator.Platform == "" || toolchain.CMake == "" || toolchain.BuildConfig == "" {
		return model.Layout{}, goerr.New("platform, cmake and build-config must not be empty",
			goerr.T(types.ErrTagInvalidConfig))
	}

	m := model.Layout{
		SourceDir:   layout.SourceDir,
		BuildDir:    layout.BuildDir,
		BindingsDir: layout.BindingsDir,
		OutputDir:   layout.OutputDir,
		CMake:       toolchain.CMake,
		BuildConfig: toolchain.BuildConfig,
		Platform:    generator.Platform,
		Only:        generator.Only,
	}

	resolved, err := m.Resolve()
	if err != nil {
		return model.Layout{}, goerr.Wrap(err, "failed to resolve directories",
			goerr.T(types.ErrTagInvalidConfig))
	}
	return resolved, nil
}
