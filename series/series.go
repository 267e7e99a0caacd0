// SPDX-License-Identifier: MIT
// Package series: the Series container and its sequence surface.
// Series wraps (does not extend) a slice: there are no in-place mutators,
// and Append/Concat return fresh values.

package series

import (
	"fmt"
	"iter"
	"slices"
)

// Series is an immutable, ordered, duplicate-permitting sequence of values.
// The zero value and a nil *Series both behave as an empty Series.
type Series[T comparable] struct {
	values []T
}

// New returns a Series holding a copy of values, in the given order.
// Complexity: O(n).
func New[T comparable](values ...T) *Series[T] {
	return &Series[T]{values: slices.Clone(values)}
}

// Len returns the number of elements.
func (s *Series[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// Empty reports whether the Series holds no elements.
func (s *Series[T]) Empty() bool { return s.Len() == 0 }

// At returns the element at index i. Negative indices count from the end
// (-1 is the last element). Returns ErrOutOfRange outside [-Len, Len).
func (s *Series[T]) At(i int) (T, error) {
	n := s.Len()
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, seriesErrorf("At", fmt.Errorf("index %d (len %d): %w", i, n, ErrOutOfRange))
	}

	return s.values[j], nil
}

// Values returns a copy of the elements in order.
func (s *Series[T]) Values() []T {
	if s == nil {
		return nil
	}

	return slices.Clone(s.values)
}

// All yields (index, value) pairs in order. The sequence may be ranged
// over any number of times.
func (s *Series[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil {
			return
		}
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether both Series hold equal elements in the same order.
func (s *Series[T]) Equal(o *Series[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}

	return slices.Equal(s.values, o.values)
}

// Append returns a new Series with vs appended. The receiver is unchanged.
func (s *Series[T]) Append(vs ...T) *Series[T] {
	out := make([]T, 0, s.Len()+len(vs))
	if s != nil {
		out = append(out, s.values...)
	}

	return &Series[T]{values: append(out, vs...)}
}

// Concat returns a new Series with the elements of s followed by those of o.
func (s *Series[T]) Concat(o *Series[T]) *Series[T] {
	if o == nil {
		return s.Append()
	}

	return s.Append(o.values...)
}

// String implements fmt.Stringer.
func (s *Series[T]) String() string {
	if s == nil {
		return "Series[]"
	}

	return fmt.Sprintf("Series%v", s.values)
}
