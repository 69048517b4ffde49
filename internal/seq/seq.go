// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package seq provides the lazy, pull-based sequence operations the rest of
// pyseq is built on. Sequences are plain iter.Seq / iter.Seq2 values:
// demand-driven, single-pass, and restartable by reconstruction since every
// source in this program is an immutable literal.
package seq

import (
	"errors"
	"iter"
)

// Break stops a ForEach loop early without reporting an error to the caller.
var Break = errors.New("seq: break")

// FromSlice returns a sequence over the elements of s in order.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns the half-open integer sequence [start, stop). An empty
// sequence results when stop <= start.
func Range(start, stop int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < stop; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Filter yields the elements of src for which match returns true, preserving
// source order. The predicate runs per element as the consumer pulls.
func Filter[T any](src iter.Seq[T], match func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if !match(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Map transforms each element of src, preserving order and cardinality.
func Map[T, U any](src iter.Seq[T], transform func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter2 is Filter over a pair sequence.
func Filter2[K, V any](src iter.Seq2[K, V], match func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range src {
			if !match(k, v) {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Map2 collapses a pair sequence into a value sequence.
func Map2[K, V, U any](src iter.Seq2[K, V], transform func(K, V) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for k, v := range src {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// Collect materializes src into a slice in pull order.
func Collect[T any](src iter.Seq[T]) []T {
	out := []T{}
	for v := range src {
		out = append(out, v)
	}
	return out
}

// ForEach pulls every element of src through fn. Returning Break from fn
// stops the iteration without error; any other error aborts and is returned.
func ForEach[T any](src iter.Seq[T], fn func(T) error) error {
	for v := range src {
		if err := fn(v); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
	return nil
}
