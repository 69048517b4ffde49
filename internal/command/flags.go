// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tbracco/pyseqgo/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewGlobalFlags builds the flag set shared by the query commands. ns is the
// command name, used to namespace config-file flag sources. None of these
// flags alter the result lines; they gate the help surfaces only.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:        "examples",
			Aliases:     []string{"e"},
			Usage:       "show usage examples",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "tldr",
			Usage:       "show tldr page",
			Hidden:      !pathHas("tldr"),
			HideDefault: true,
		},
	}

	return
}

// pathHas reports whether an executable is available on PATH.
func pathHas(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
