// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"io"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tbracco/pyseqgo/internal/meta"
)

var runExamples = [][2]string{
	{"pyseq run", "print the full nine-line block"},
	{"pyseq run --examples", "show this table"},
}

// RunAll writes the generator block followed by the comprehension block:
// the full nine-line output.
func RunAll(w io.Writer) error {
	if err := RunGen(w); err != nil {
		return err
	}
	return RunLComp(w)
}

// RunCommandAction is the action handler for the "run" subcommand.
func RunCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for %v", GetMeta(cmd).Args)

	if ShortCircuitTLDR(ctx, cmd, "run") {
		return nil
	}
	if ShowExamplesIfRequested(cmd, runExamples) {
		return nil
	}

	return RunAll(Writer(cmd))
}

// RunCommandBuilder constructs the cli.Command definition for the "run"
// command, wiring flags, metadata, and the action handler.
func RunCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run the gen and lcomp queries in order",
		UsageText: `pyseq run [options]`,
		Flags:     NewGlobalFlags("run"),
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: RunCommandAction,
	}
}
