// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package pydict implements a mapping with Python dict iteration semantics:
// keys come back in insertion order, and overwriting a key keeps its
// original position.
package pydict

import "iter"

type entry[K comparable, V any] struct {
	key K
	val V
}

// Dict is an insertion-ordered mapping. The zero value is ready to use.
type Dict[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

// Pair is a key-value literal used by New.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// New builds a Dict from ordered pair literals, mirroring a dict display.
func New[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := &Dict[K, V]{}
	for _, p := range pairs {
		d.Set(p.Key, p.Val)
	}
	return d
}

// Set inserts or overwrites. An overwritten key keeps its insertion slot.
func (d *Dict[K, V]) Set(key K, val V) {
	if d.index == nil {
		d.index = make(map[K]int)
	}
	if i, ok := d.index[key]; ok {
		d.entries[i].val = val
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, entry[K, V]{key: key, val: val})
}

// Get returns the value for key and whether it was present.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if i, ok := d.index[key]; ok {
		return d.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.index[key]
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	return len(d.entries)
}

// Items returns the entries as a lazy pair sequence in insertion order.
func (d *Dict[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range d.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}
