package config

import (
	"github.com/geode-sdk/codegenrun/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Generator holds code generator invocation configuration
type Generator struct {
	Platform string
	Jobs     int
	Only     []string
}

// Flags returns CLI flags for generator configuration
func (c *Generator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "platform",
			Usage:       "Platform tag passed to the generator",
			Value:       model.DefaultLayout().Platform,
			Destination: &c.Platform,
			Sources:     cli.EnvVars("CODEGENRUN_PLATFORM"),
		},
		&cli.IntFlag{
			Name:        "jobs",
			Aliases:     []string{"j"},
			Usage:       "Number of generator processes to run at once",
			Value:       1,
			Destination: &c.Jobs,
			Sources:     cli.EnvVars("CODEGENRUN_JOBS"),
		},
		&cli.StringSliceFlag{
			Name:        "only",
			Usage:       "Only process the named version folder (repeatable)",
			Destination: &c.Only,
		},
	}
}

func (c *Generator) applyFile(cmd *cli.Command, f *File) {
	setString(cmd, "platform", &c.Platform, f.Platform)
	if f.Jobs != 0 && !cmd.IsSet("jobs") {
		c.Jobs = f.Jobs
	}
	if len(f.Only) > 0 && !cmd.IsSet("only") {
		c.Only = f.Only
	}
}
