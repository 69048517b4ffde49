// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tbracco/pyseqgo/internal/meta"
	"github.com/tbracco/pyseqgo/internal/output"
	"github.com/tbracco/pyseqgo/internal/pyrt"
	"github.com/tbracco/pyseqgo/internal/seq"
)

var lcompExamples = [][2]string{
	{"pyseq lcomp", "print the uppercased, filtered, and range lists"},
	{"pyseq lcomp --examples", "show this table"},
}

// sampleWords is the fixed source sequence for the comprehension block.
var sampleWords = []string{"one", "two", "three", "four", "five", "six"}

// maxShortWord is the inclusive length bound for the filtered comprehension,
// measured on the original lowercase word.
const maxShortWord = 4

// RunLComp writes the comprehension block: the uppercased word list, the
// uppercased list restricted to short words, and the materialized range
// [0,10). Each list is printed as a single Python literal line.
func RunLComp(w io.Writer) error {
	upper := seq.Collect(seq.Map(seq.FromSlice(sampleWords), strings.ToUpper))
	if err := output.EmitRepr(w, pyrt.Repr, upper); err != nil {
		return err
	}

	short := seq.Filter(seq.FromSlice(sampleWords), func(s string) bool {
		return pyrt.Len(s) <= maxShortWord
	})
	shortUpper := seq.Collect(seq.Map(short, strings.ToUpper))
	if err := output.EmitRepr(w, pyrt.Repr, shortUpper); err != nil {
		return err
	}

	return output.EmitRepr(w, pyrt.Repr, seq.Collect(seq.Range(0, 10)))
}

// LCompCommandAction is the action handler for the "lcomp" subcommand.
func LCompCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for %v", GetMeta(cmd).Args)

	if ShortCircuitTLDR(ctx, cmd, "lcomp") {
		return nil
	}
	if ShowExamplesIfRequested(cmd, lcompExamples) {
		return nil
	}

	return RunLComp(Writer(cmd))
}

// LCompCommandBuilder constructs the cli.Command definition for the "lcomp"
// command, wiring flags, metadata, and the action handler.
func LCompCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "lcomp",
		Usage:     "materialized list query",
		UsageText: `pyseq lcomp [options]`,
		Flags:     NewGlobalFlags("lcomp"),
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: LCompCommandAction,
	}
}
