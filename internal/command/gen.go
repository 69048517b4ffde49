// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tbracco/pyseqgo/internal/meta"
	"github.com/tbracco/pyseqgo/internal/output"
	"github.com/tbracco/pyseqgo/internal/pydict"
	"github.com/tbracco/pyseqgo/internal/seq"
)

var genExamples = [][2]string{
	{"pyseq gen", "print every dict entry, then the even-valued ones"},
	{"pyseq gen --examples", "show this table"},
}

// sampleDict returns the fixed mapping {a:1, b:2, c:3, d:4}. A fresh value
// per call keeps every run independent of the last.
func sampleDict() *pydict.Dict[string, int] {
	return pydict.New(
		pydict.Pair[string, int]{Key: "a", Val: 1},
		pydict.Pair[string, int]{Key: "b", Val: 2},
		pydict.Pair[string, int]{Key: "c", Val: 3},
		pydict.Pair[string, int]{Key: "d", Val: 4},
	)
}

// RunGen writes the generator block: every dict entry formatted key:value in
// insertion order, then the subsequence whose values are even. Each pair
// sequence is built lazily and consumed exactly once.
func RunGen(w io.Writer) error {
	d := sampleDict()
	format := func(k string, v int) string {
		return fmt.Sprintf("%s:%d", k, v)
	}

	if err := output.EmitLines(w, seq.Map2(d.Items(), format)); err != nil {
		return err
	}

	even := seq.Filter2(d.Items(), func(_ string, v int) bool {
		return v%2 == 0
	})
	return output.EmitLines(w, seq.Map2(even, format))
}

// GenCommandAction is the action handler for the "gen" subcommand.
func GenCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for %v", GetMeta(cmd).Args)

	if ShortCircuitTLDR(ctx, cmd, "gen") {
		return nil
	}
	if ShowExamplesIfRequested(cmd, genExamples) {
		return nil
	}

	return RunGen(Writer(cmd))
}

// GenCommandBuilder constructs the cli.Command definition for the "gen"
// command, wiring flags, metadata, and the action handler.
func GenCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "formatted dict entry query",
		UsageText: `pyseq gen [options]`,
		Flags:     NewGlobalFlags("gen"),
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: GenCommandAction,
	}
}
