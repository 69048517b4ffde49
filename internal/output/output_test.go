// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbracco/pyseqgo/internal/pyrt"
	"github.com/tbracco/pyseqgo/internal/seq"
)

func TestEmitLines(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{
			name: "multiple lines in order",
			in:   []string{"a:1", "b:2", "c:3", "d:4"},
			want: "a:1\nb:2\nc:3\nd:4\n",
		},
		{
			name: "empty sequence writes nothing",
			in:   []string{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := EmitLines(&buf, seq.FromSlice(tt.in))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("pipe closed")
	}
	w.after--
	return len(p), nil
}

func TestEmitLinesWriteFailure(t *testing.T) {
	var pulled int
	s := seq.Map(seq.FromSlice([]string{"x", "y", "z"}), func(v string) string {
		pulled++
		return v
	})

	err := EmitLines(&failingWriter{after: 1}, s)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "pipe closed"))
	// The failure surfaces on the second write, so the third element is
	// never demanded.
	assert.Equal(t, 2, pulled)
}

func TestEmitRepr(t *testing.T) {
	var buf bytes.Buffer
	err := EmitRepr(&buf, pyrt.Repr, []string{"ONE", "TWO"})
	assert.NoError(t, err)
	assert.Equal(t, "['ONE', 'TWO']\n", buf.String())
}

func TestDumpExamples(t *testing.T) {
	var buf bytes.Buffer
	DumpExamples(&buf, false, [][2]string{
		{"pyseq gen", "print formatted dict entries"},
	})
	assert.Contains(t, buf.String(), "pyseq gen")

	buf.Reset()
	DumpExamples(&buf, false, nil)
	assert.Empty(t, buf.String())
}
