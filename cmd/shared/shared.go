// Package shared provides common CLI flag definitions used across the
// command-line interface.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// NoColorFlag is the name of the flag to disable colored log output.
const NoColorFlag = "no-color"

// GetCommonFlags returns the CLI flags accepted by the root command.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable colored log output",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}
