// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tbracco/pyseqgo/internal/config"
	"github.com/tbracco/pyseqgo/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg immediately following the binary is the pyseq subcommand and
	// also the namespace key used when retrieving config values. It could be
	// -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "pyseq",
		Usage: "Python sequence semantics, printed",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "pyseq version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		GenCommandBuilder(app, meta),
		LCompCommandBuilder(app, meta),
		RunCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
