// SPDX-License-Identifier: MIT
// Package dataframe: projection and selection.
//
// Access is the single polymorphic entry point; Column, Row, Slice, Select
// and Take are its typed branches and may be called directly.
//
// Not-found policy:
//   - single-key lookups (Header, Index) return an empty Selection, no error;
//   - list keys (Headers, Indexes) silently drop members that do not exist;
//   - Span bounds are clamped, so an out-of-range Span is an empty frame.
//
// Every returned DataFrame or Series owns fresh containers.

package dataframe

import (
	"fmt"

	"github.com/katalvlaran/tealframe/series"
)

// Access dispatches on the key shape:
//
//	Header  -> Series of that column
//	Index   -> single-row frame
//	Span    -> frame of rows [Start, End)
//	Headers -> frame of the listed, existing columns
//	Indexes -> frame of the listed, existing rows
//
// A nil key returns ErrInvalidKey.
func (df *DataFrame) Access(key Key) (Selection, error) {
	switch k := key.(type) {
	case Header:
		s, ok := df.Column(string(k))
		if !ok {
			return Selection{}, nil
		}
		return Selection{Series: s}, nil
	case Index:
		r, ok := df.Row(int(k))
		if !ok {
			return Selection{}, nil
		}
		return Selection{Frame: r}, nil
	case Span:
		return Selection{Frame: df.Slice(k.Start, k.End)}, nil
	case Headers:
		return Selection{Frame: df.Select(k...)}, nil
	case Indexes:
		return Selection{Frame: df.Take(k...)}, nil
	}

	return Selection{}, frameErrorf(opAccess, fmt.Errorf("%T: %w", key, ErrInvalidKey))
}

// Column projects the named column from every row, in row order, into a
// Series. ok is false when the header does not exist.
// Complexity: O(rows).
func (df *DataFrame) Column(header string) (s *series.Series[Value], ok bool) {
	if df == nil {
		return nil, false
	}
	j, ok := df.pos[header]
	if !ok {
		return nil, false
	}

	vs := make([]Value, len(df.rows))
	for i, row := range df.rows {
		vs[i] = row[j]
	}

	return series.New(vs...), true
}

// Row returns row i as a single-row frame with the same headers. Negative i
// counts from the end. ok is false outside [-Len, Len).
func (df *DataFrame) Row(i int) (r *DataFrame, ok bool) {
	i, ok = df.normalize(i)
	if !ok {
		return nil, false
	}

	return derive(df.Headers(), [][]Value{cloneRow(df.rows[i])}), true
}

// Slice returns the rows [start, end) as a new frame. Negative bounds count
// from the end; bounds are clamped to [0, Len], and start ≥ end yields a frame
// with no rows.
func (df *DataFrame) Slice(start, end int) *DataFrame {
	n := df.Len()
	start, end = clampBound(start, n), clampBound(end, n)
	if start > end {
		start = end
	}
	if n == 0 {
		return derive(df.Headers(), [][]Value{})
	}

	return derive(df.Headers(), cloneRows(df.rows[start:end]))
}

// Select returns a frame containing only the listed columns that exist, in
// list order. Unknown names, and repeats of a name already selected, are
// dropped. Row count is preserved.
func (df *DataFrame) Select(headers ...string) *DataFrame {
	keep := make([]string, 0, len(headers))
	cols := make([]int, 0, len(headers))
	seen := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		j, ok := df.lookup(h)
		if !ok {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		keep = append(keep, h)
		cols = append(cols, j)
	}

	rows := make([][]Value, df.Len())
	for i := range rows {
		row := make([]Value, len(cols))
		for k, j := range cols {
			row[k] = df.rows[i][j]
		}
		rows[i] = row
	}

	return derive(keep, rows)
}

// Take returns a frame of the rows at the given indices, in the given order
// (not sorted, repeats kept). Negative indices count from the end;
// out-of-range indices are dropped.
func (df *DataFrame) Take(indices ...int) *DataFrame {
	rows := make([][]Value, 0, len(indices))
	for _, i := range indices {
		if i, ok := df.normalize(i); ok {
			rows = append(rows, cloneRow(df.rows[i]))
		}
	}

	return derive(df.Headers(), rows)
}

// At returns the cell at row i (negative counts from the end) under header.
// ok is false if either does not exist.
func (df *DataFrame) At(i int, header string) (v Value, ok bool) {
	i, ok = df.normalize(i)
	if !ok {
		return nil, false
	}
	j, ok := df.lookup(header)
	if !ok {
		return nil, false
	}

	return df.rows[i][j], true
}

// normalize maps a possibly negative row index into [0, Len).
func (df *DataFrame) normalize(i int) (int, bool) {
	n := df.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}

	return i, true
}

func (df *DataFrame) lookup(h string) (int, bool) {
	if df == nil {
		return 0, false
	}
	j, ok := df.pos[h]

	return j, ok
}

// clampBound maps a possibly negative slice bound into [0, n].
func clampBound(b, n int) int {
	if b < 0 {
		b += n
	}

	return max(0, min(b, n))
}

// cloneRow copies a row; the result is never nil.
func cloneRow(r []Value) []Value {
	out := make([]Value, len(r))
	copy(out, r)

	return out
}
