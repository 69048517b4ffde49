// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package seq

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		stop  int
		want  []int
	}{
		{
			name:  "zero to ten",
			start: 0,
			stop:  10,
			want:  []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:  "offset start",
			start: 3,
			stop:  6,
			want:  []int{3, 4, 5},
		},
		{
			name:  "empty when stop equals start",
			start: 5,
			stop:  5,
			want:  []int{},
		},
		{
			name:  "empty when stop below start",
			start: 5,
			stop:  2,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect(Range(tt.start, tt.stop)))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	tests := []struct {
		name  string
		in    []int
		match func(int) bool
		want  []int
	}{
		{
			name:  "evens",
			in:    []int{1, 2, 3, 4},
			match: func(v int) bool { return v%2 == 0 },
			want:  []int{2, 4},
		},
		{
			name:  "none match",
			in:    []int{1, 3, 5},
			match: func(v int) bool { return v%2 == 0 },
			want:  []int{},
		},
		{
			name:  "all match",
			in:    []int{2, 4, 6},
			match: func(v int) bool { return v%2 == 0 },
			want:  []int{2, 4, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect(Filter(FromSlice(tt.in), tt.match)))
		})
	}
}

func TestMapPreservesCardinality(t *testing.T) {
	in := []string{"one", "two", "three"}
	got := Collect(Map(FromSlice(in), strings.ToUpper))
	assert.Equal(t, []string{"ONE", "TWO", "THREE"}, got)
	assert.Len(t, got, len(in))
}

func TestFilterThenMapIsLazy(t *testing.T) {
	// The transform must only run for elements that survive the filter.
	var transformed []int
	s := Map(
		Filter(Range(0, 10), func(v int) bool { return v < 3 }),
		func(v int) int {
			transformed = append(transformed, v)
			return v * v
		},
	)

	assert.Equal(t, []int{0, 1, 4}, Collect(s))
	assert.Equal(t, []int{0, 1, 2}, transformed)
}

func TestReconstructionYieldsEqualResults(t *testing.T) {
	build := func() []int {
		return Collect(Filter(Range(0, 10), func(v int) bool { return v%3 == 0 }))
	}
	assert.Equal(t, build(), build())
}

func TestForEach(t *testing.T) {
	t.Run("visits in order", func(t *testing.T) {
		var got []int
		err := ForEach(Range(0, 4), func(v int) error {
			got = append(got, v)
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, got)
	})

	t.Run("break stops without error", func(t *testing.T) {
		var got []int
		err := ForEach(Range(0, 100), func(v int) error {
			if v == 3 {
				return Break
			}
			got = append(got, v)
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("error aborts and surfaces", func(t *testing.T) {
		boom := errors.New("boom")
		var count int
		err := ForEach(Range(0, 100), func(v int) error {
			if v == 2 {
				return boom
			}
			count++
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, count)
	})
}

func TestPairOperations(t *testing.T) {
	pairs := func(yield func(string, int) bool) {
		for i, k := range []string{"a", "b", "c", "d"} {
			if !yield(k, i+1) {
				return
			}
		}
	}

	t.Run("map2 formats pairs in order", func(t *testing.T) {
		got := Collect(Map2(pairs, func(k string, v int) string {
			return k + strings.Repeat("!", v)
		}))
		assert.Equal(t, []string{"a!", "b!!", "c!!!", "d!!!!"}, got)
	})

	t.Run("filter2 keeps relative order", func(t *testing.T) {
		even := Filter2(pairs, func(_ string, v int) bool { return v%2 == 0 })
		var got []string
		for k := range even {
			got = append(got, k)
		}
		assert.Equal(t, []string{"b", "d"}, got)
	})
}
