// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/tbracco/pyseqgo/internal/meta"
	"github.com/tbracco/pyseqgo/internal/output"
	"github.com/urfave/cli/v3"
)

// Writer resolves the destination for result output. Tests point the root
// command's Writer at a buffer; otherwise everything goes to stdout.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr pyseq <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "pyseq", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// ShowExamplesIfRequested dumps the command's example table when --examples
// is set, and returns true if it handled the request.
func ShowExamplesIfRequested(cmd *cli.Command, examples [][2]string) bool {
	if cmd.Bool("examples") {
		output.DumpExamples(Writer(cmd), cmd.Bool("color"), examples)
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
