// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tbracco/pyseqgo/internal/seq"
)

// EmitLines writes each element of s to w on its own line, in pull order.
// A write failure aborts the iteration immediately; nothing is retried.
func EmitLines(w io.Writer, s iter.Seq[string]) error {
	return seq.ForEach(s, func(line string) error {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output line: %w", err)
		}
		return nil
	})
}

// EmitRepr writes the Python repr of v to w as a single line. repr is
// injected so this package stays independent of the runtime semantics.
func EmitRepr(w io.Writer, repr func(any) string, v any) error {
	if _, err := fmt.Fprintln(w, repr(v)); err != nil {
		return fmt.Errorf("failed to write output line: %w", err)
	}
	return nil
}

// DumpExamples renders a table of example command usages.
func DumpExamples(w io.Writer, color bool, examples [][2]string) {
	if len(examples) == 0 {
		return
	}

	var rows [][]string
	for _, ex := range examples {
		rows = append(rows, []string{ex[0], ex[1]})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Rows(rows...)

	t = t.Headers("Command", "Description").BorderHeader(false)

	if color {
		header := lipgloss.NewStyle().Bold(true)
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle()
		})
	}

	fmt.Fprintln(w, t)
}
