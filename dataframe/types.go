// SPDX-License-Identifier: MIT
// Package dataframe: value, record and key types.

package dataframe

import "github.com/katalvlaran/tealframe/series"

// Value is a single cell. Cells are not restricted to one type; statistics
// over a projected column apply the numeric view of the series package.
type Value = any

// Record is one row viewed by header name.
type Record map[string]Value

// Column is one header with its values, the unit of column-major input.
type Column struct {
	Header string
	Values []Value
}

// Key selects part of a DataFrame. It is a closed union: only Header, Index,
// Span, Headers and Indexes implement it.
type Key interface {
	isKey()
}

// Header selects one column by name.
type Header string

// Index selects one row; negative values count from the end.
type Index int

// Span selects the contiguous rows [Start, End). Negative bounds count from
// the end; bounds are clamped to [0, Len].
type Span struct {
	Start, End int
}

// Headers selects several columns in the given order.
type Headers []string

// Indexes selects several rows in the given order.
type Indexes []int

func (Header) isKey()  {}
func (Index) isKey()   {}
func (Span) isKey()    {}
func (Headers) isKey() {}
func (Indexes) isKey() {}

// Selection is the result of Access: exactly one of Series or Frame is set,
// or neither when the key named something that does not exist.
type Selection struct {
	Series *series.Series[Value]
	Frame  *DataFrame
}

// IsNil reports whether the selection found nothing.
func (s Selection) IsNil() bool {
	return s.Series == nil && s.Frame == nil
}
