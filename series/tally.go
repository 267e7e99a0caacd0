// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"iter"
	"strings"
)

// Tally is an insertion-ordered frequency table: each distinct value maps to
// its occurrence count, and iteration follows first-occurrence order.
//
// A Tally is a snapshot; it does not track later changes to any Series.
type Tally[T comparable] struct {
	order  []T       // distinct values, first-occurrence order
	counts map[T]int // value -> occurrences
	total  int       // Σ counts
}

// newTally counts values in one pass.
// Complexity: O(n) time, O(d) memory for d distinct values.
func newTally[T comparable](values []T) *Tally[T] {
	t := &Tally[T]{counts: make(map[T]int)}
	for _, v := range values {
		if _, seen := t.counts[v]; !seen {
			t.order = append(t.order, v)
		}
		t.counts[v]++
	}
	t.total = len(values)

	return t
}

// Len returns the number of distinct values.
func (t *Tally[T]) Len() int { return len(t.order) }

// Total returns the number of observations (Σ counts).
func (t *Tally[T]) Total() int { return t.total }

// Count returns how many times v was observed; 0 if never.
func (t *Tally[T]) Count(v T) int { return t.counts[v] }

// Values returns the distinct values in first-occurrence order.
func (t *Tally[T]) Values() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)

	return out
}

// All yields (value, count) pairs in first-occurrence order.
func (t *Tally[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, v := range t.order {
			if !yield(v, t.counts[v]) {
				return
			}
		}
	}
}

// Map returns a plain map copy of the counts. Order is lost.
func (t *Tally[T]) Map() map[T]int {
	out := make(map[T]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}

	return out
}

// Max returns the highest count, or 0 for an empty Tally.
func (t *Tally[T]) Max() int {
	best := 0
	for _, c := range t.counts {
		if c > best {
			best = c
		}
	}

	return best
}

// String renders the tally as {v1:c1 v2:c2 ...} in first-occurrence order.
func (t *Tally[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range t.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%d", v, t.counts[v])
	}
	b.WriteByte('}')

	return b.String()
}
