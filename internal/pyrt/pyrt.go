// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package pyrt reproduces the handful of Python runtime behaviors pyseq
// relies on: repr rendering, membership tests, the str.is* predicates, and
// assertion/exception plumbing. Semantics follow CPython, not Go, wherever
// the two disagree (empty strings, cased runes, substring membership).
package pyrt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Repr renders a value the way Python repr does: strings single-quoted,
// ints bare, booleans capitalized, slices and arrays as bracketed
// comma-separated element reprs.
func Repr(v any) string {
	switch x := v.(type) {
	case string:
		return reprString(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case nil:
		return "None"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = Repr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	return fmt.Sprintf("%v", v)
}

// reprString picks the quote style the way CPython does: single quotes
// unless the string contains one and no double quote.
func reprString(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// Len is Python len for strings: the character count, not the byte count.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Contains implements the Python "in" operator for the container kinds this
// program deals with: substring for strings, element membership for slices
// and arrays, key membership for maps. Anything else is not a container and
// reports false.
func Contains(bag any, item any) bool {
	if s, ok := bag.(string); ok {
		sub, ok := item.(string)
		return ok && strings.Contains(s, sub)
	}

	rv := reflect.ValueOf(bag)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), item) {
				return true
			}
		}
	case reflect.Map:
		iv := reflect.ValueOf(item)
		if iv.IsValid() && iv.Type().AssignableTo(rv.Type().Key()) {
			return rv.MapIndex(iv).IsValid()
		}
	}

	return false
}

// IsSpace reports whether s is non-empty and all whitespace.
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is non-empty and all letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether s is non-empty and all digits.
func IsDigit(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsUpper reports whether s has at least one cased rune and no lowercase.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// IsLower reports whether s has at least one cased rune and no uppercase.
func IsLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// Assert panics with an AssertionError when cond is false.
func Assert(cond bool, message string) {
	if !cond {
		panic("AssertionError: " + message)
	}
}

// Exception wraps a raised Python value as a Go error.
type Exception struct {
	value any
}

// Raise constructs an Exception carrying the raised value.
func Raise(value any) *Exception {
	return &Exception{value: value}
}

func (e *Exception) Error() string {
	return fmt.Sprintf("Exception(%v)", e.value)
}

// Value returns the raised value.
func (e *Exception) Value() any {
	return e.value
}
