package config

import (
	"os"

	"github.com/geode-sdk/codegenrun/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration. Every field is optional and only
// fills in flags that were not set on the command line or environment.
type File struct {
	SourceDir   string   `toml:"source_dir"`
	BuildDir    string   `toml:"build_dir"`
	BindingsDir string   `toml:"bindings_dir"`
	OutputDir   string   `toml:"output_dir"`
	CMake       string   `toml:"cmake"`
	BuildConfig string   `toml:"build_config"`
	Platform    string   `toml:"platform"`
	Jobs        int      `toml:"jobs"`
	Only        []string `toml:"only"`
}

// LoadFile reads and strictly decodes a TOML config file
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file",
			goerr.V("path", path),
			goerr.T(types.ErrTagInvalidConfig))
	}
	defer fd.Close()

	var f File
	dec := toml.NewDecoder(fd).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file",
			goerr.V("path", path),
			goerr.T(types.ErrTagInvalidConfig))
	}

	return &f, nil
}
