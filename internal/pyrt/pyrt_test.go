// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package pyrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "plain string",
			value: "ONE",
			want:  "'ONE'",
		},
		{
			name:  "string with single quote",
			value: "it's",
			want:  `"it's"`,
		},
		{
			name:  "string with both quote kinds",
			value: `a'b"c`,
			want:  `'a\'b"c'`,
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "negative int",
			value: -7,
			want:  "-7",
		},
		{
			name:  "bool",
			value: true,
			want:  "True",
		},
		{
			name:  "nil",
			value: nil,
			want:  "None",
		},
		{
			name:  "string slice",
			value: []string{"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX"},
			want:  "['ONE', 'TWO', 'THREE', 'FOUR', 'FIVE', 'SIX']",
		},
		{
			name:  "int slice",
			value: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			want:  "[0, 1, 2, 3, 4, 5, 6, 7, 8, 9]",
		},
		{
			name:  "empty slice",
			value: []int{},
			want:  "[]",
		},
		{
			name:  "nested slice",
			value: [][]int{{1, 2}, {3}},
			want:  "[[1, 2], [3]]",
		},
		{
			name:  "newline escaped",
			value: "a\nb",
			want:  `'a\nb'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repr(tt.value))
		})
	}
}

func TestLen(t *testing.T) {
	assert.Equal(t, 4, Len("four"))
	assert.Equal(t, 0, Len(""))
	assert.Equal(t, 3, Len("äöü"))
}

func TestContainsString(t *testing.T) {
	bag := "the quick brown fox"

	assert.True(t, Contains(bag, "fox"))
	assert.False(t, Contains(bag, "dog"))
}

func TestContainsList(t *testing.T) {
	bag := []any{"one", "two", "three"}

	assert.True(t, Contains(bag, "one"))
	assert.False(t, Contains(bag, "four"))
}

func TestContainsMap(t *testing.T) {
	bag := map[string]any{"one": 1, "two": 2, "three": 3}

	assert.True(t, Contains(bag, "one"))
	assert.False(t, Contains(bag, "four"))
}

func TestContainsNonContainer(t *testing.T) {
	// can't really check if a float contains something
	assert.False(t, Contains(3.14, 3.14))
}

func TestIsSpace(t *testing.T) {
	assert.True(t, IsSpace(" \t\r\n"))
	assert.False(t, IsSpace(" . "))
	assert.False(t, IsSpace(""), "empty string is not a space")
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("abcdEFGH"))
	assert.False(t, IsAlpha("abcdEFGH1"), "digits are not alpha")
	assert.False(t, IsAlpha("abcd EFGH"), "spaces are not alpha")
	assert.False(t, IsAlpha(""), "empty string is not alpha")
}

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit("1234567890"))
	assert.False(t, IsDigit("123456789O"), "alpha are not digits")
	assert.False(t, IsDigit("1234 5678"), "spaces are not digits")
	assert.False(t, IsDigit(""), "empty string is not digit")
}

func TestIsUpper(t *testing.T) {
	assert.True(t, IsUpper("ABCDEFGH"))
	assert.True(t, IsUpper("ABCD EFGH"), "uncased runes are ignored")
	assert.False(t, IsUpper("ABCDefgh"))
	assert.False(t, IsUpper("    "), "no cased rune")
	assert.False(t, IsUpper(""))
}

func TestIsLower(t *testing.T) {
	assert.True(t, IsLower("abcdefgh"))
	assert.True(t, IsLower("abcd efgh"), "uncased runes are ignored")
	assert.False(t, IsLower("abcdEFGH"))
	assert.False(t, IsLower("    "), "no cased rune")
	assert.False(t, IsLower(""))
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "this should be true") })
	assert.PanicsWithValue(t, "AssertionError: nope", func() {
		Assert(false, "nope")
	})
}

func TestException(t *testing.T) {
	err := Raise("ValueError")
	assert.EqualError(t, err, "Exception(ValueError)")
	assert.Equal(t, "ValueError", err.Value())
}
