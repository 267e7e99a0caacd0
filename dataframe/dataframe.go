// SPDX-License-Identifier: MIT
// Package dataframe: the DataFrame container and its constructors.
//
// Invariants (established by every constructor, never broken afterwards):
//   - headers are unique;
//   - every row has exactly len(headers) cells;
//   - the frame owns its row and header slices (inputs are copied).

package dataframe

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Operation name constants for uniform error wrapping.
const (
	opNew         = "New"
	opFromColumns = "FromColumns"
	opFromMap     = "FromMap"
	opFromRows    = "FromRows"
	opFromRecords = "FromRecords"
	opEmpty       = "Empty"
	opAccess      = "Access"
)

// DataFrame is an immutable table of named columns stored row-major.
type DataFrame struct {
	headers []string       // column order
	pos     map[string]int // header -> column position
	rows    [][]Value      // len(row) == len(headers) for every row
}

// New builds a DataFrame from one of the recognized input shapes (see the
// package documentation). The shapes are matched on []Value first; containers
// of concrete element types (map[string][]int, [][]float64,
// []map[string]string) are copied into the []Value form and then dispatched
// the same way. Unrecognized shapes return ErrUnknownInput.
//
//	df, err := dataframe.New([]dataframe.Column{
//		{Header: "name", Values: []dataframe.Value{"Marco", "Giovanni"}},
//		{Header: "age", Values: []dataframe.Value{20, 22}},
//	})
func New(data any, opts ...Option) (*DataFrame, error) {
	o := gatherOptions(opts...)

	switch d := data.(type) {
	case nil:
		return Empty(o.headers...)
	case []Column:
		return FromColumns(d...)
	case map[string][]Value:
		return FromMap(d, o.headers...)
	case [][]Value:
		return FromRows(o.headers, d)
	case []Record:
		return FromRecords(o.headers, d, opts...)
	case []map[string]Value:
		recs := make([]Record, len(d))
		for i, m := range d {
			recs[i] = Record(m)
		}
		return FromRecords(o.headers, recs, opts...)
	}
	if v, ok := coerce(data); ok {
		return New(v, opts...)
	}

	return nil, frameErrorf(opNew, fmt.Errorf("%T: %w", data, ErrUnknownInput))
}

// Empty returns a frame with the given headers and no rows.
func Empty(headers ...string) (*DataFrame, error) {
	df, err := newFrame(headers, nil)
	if err != nil {
		return nil, frameErrorf(opEmpty, err)
	}

	return df, nil
}

// FromColumns builds a frame from column-major input, transposing it to
// rows. Headers keep the order of cols. All columns must have equal length.
// Complexity: O(rows·cols).
func FromColumns(cols ...Column) (*DataFrame, error) {
	headers := make([]string, len(cols))
	for j, c := range cols {
		headers[j] = c.Header
	}

	rows, err := transpose(cols)
	if err != nil {
		return nil, frameErrorf(opFromColumns, err)
	}
	df, err := newFrame(headers, rows)
	if err != nil {
		return nil, frameErrorf(opFromColumns, err)
	}

	return df, nil
}

// FromMap builds a frame from a header -> values map. Go maps are unordered,
// so column order comes from headers when given (which must name exactly the
// map keys) and is otherwise the sorted key order.
func FromMap(m map[string][]Value, headers ...string) (*DataFrame, error) {
	if len(headers) == 0 {
		headers = slices.Sorted(maps.Keys(m))
	} else if err := sameKeys(m, headers); err != nil {
		return nil, frameErrorf(opFromMap, err)
	}

	cols := make([]Column, len(headers))
	for j, h := range headers {
		cols[j] = Column{Header: h, Values: m[h]}
	}
	rows, err := transpose(cols)
	if err != nil {
		return nil, frameErrorf(opFromMap, err)
	}
	df, err := newFrame(headers, rows)
	if err != nil {
		return nil, frameErrorf(opFromMap, err)
	}

	return df, nil
}

// FromRows builds a frame from row tuples; cell i of each row belongs to
// headers[i]. Rows are copied.
func FromRows(headers []string, rows [][]Value) (*DataFrame, error) {
	cp := make([][]Value, len(rows))
	for i, r := range rows {
		if len(r) != len(headers) {
			return nil, frameErrorf(opFromRows,
				fmt.Errorf("row %d has %d cells, want %d: %w", i, len(r), len(headers), ErrRowWidth))
		}
		cp[i] = cloneRow(r)
	}
	df, err := newFrame(headers, cp)
	if err != nil {
		return nil, frameErrorf(opFromRows, err)
	}

	return df, nil
}

// FromRecords builds a frame by projecting every header out of every record,
// in header order. A header missing from a record yields the WithFill value
// (nil by default); record keys that are not headers are ignored.
func FromRecords(headers []string, records []Record, opts ...Option) (*DataFrame, error) {
	o := gatherOptions(opts...)

	rows := make([][]Value, len(records))
	for i, rec := range records {
		row := make([]Value, len(headers))
		for j, h := range headers {
			v, ok := rec[h]
			if !ok {
				v = o.fill
			}
			row[j] = v
		}
		rows[i] = row
	}
	df, err := newFrame(headers, rows)
	if err != nil {
		return nil, frameErrorf(opFromRecords, err)
	}

	return df, nil
}

// newFrame validates header uniqueness and takes ownership of rows.
// Callers guarantee row widths.
func newFrame(headers []string, rows [][]Value) (*DataFrame, error) {
	pos := make(map[string]int, len(headers))
	for j, h := range headers {
		if _, dup := pos[h]; dup {
			return nil, fmt.Errorf("%q: %w", h, ErrDuplicateHeader)
		}
		pos[h] = j
	}
	if rows == nil {
		rows = [][]Value{}
	}

	return &DataFrame{headers: slices.Clone(headers), pos: pos, rows: rows}, nil
}

// derive builds a frame from already-validated parts (accessor results).
func derive(headers []string, rows [][]Value) *DataFrame {
	pos := make(map[string]int, len(headers))
	for j, h := range headers {
		pos[h] = j
	}

	return &DataFrame{headers: headers, pos: pos, rows: rows}
}

// transpose turns columns into rows, failing on unequal column lengths.
func transpose(cols []Column) ([][]Value, error) {
	if len(cols) == 0 {
		return nil, nil
	}
	n := len(cols[0].Values)
	for _, c := range cols[1:] {
		if len(c.Values) != n {
			return nil, fmt.Errorf("column %q has %d values, column %q has %d: %w",
				cols[0].Header, n, c.Header, len(c.Values), ErrRaggedColumns)
		}
	}

	rows := make([][]Value, n)
	for i := range rows {
		row := make([]Value, len(cols))
		for j, c := range cols {
			row[j] = c.Values[i]
		}
		rows[i] = row
	}

	return rows, nil
}

// sameKeys checks that headers name exactly the keys of m.
func sameKeys(m map[string][]Value, headers []string) error {
	if len(headers) != len(m) {
		return fmt.Errorf("%d headers for %d columns: %w", len(headers), len(m), ErrHeaderMismatch)
	}
	for _, h := range headers {
		if _, ok := m[h]; !ok {
			return fmt.Errorf("%q: %w", h, ErrHeaderMismatch)
		}
	}

	return nil
}

// Len returns the number of rows.
func (df *DataFrame) Len() int {
	if df == nil {
		return 0
	}

	return len(df.rows)
}

// Width returns the number of columns.
func (df *DataFrame) Width() int {
	if df == nil {
		return 0
	}

	return len(df.headers)
}

// Headers returns a copy of the column names in order.
func (df *DataFrame) Headers() []string {
	if df == nil {
		return nil
	}

	return slices.Clone(df.headers)
}

// HasHeader reports whether h names a column.
func (df *DataFrame) HasHeader(h string) bool {
	if df == nil {
		return false
	}
	_, ok := df.pos[h]

	return ok
}

// Rows returns a deep copy of the row tuples.
func (df *DataFrame) Rows() [][]Value {
	if df == nil {
		return nil
	}

	return cloneRows(df.rows)
}

// Equal reports whether both frames have the same headers and cells, in order.
// Cells are compared with reflect.DeepEqual.
func (df *DataFrame) Equal(o *DataFrame) bool {
	if df.Width() != o.Width() || df.Len() != o.Len() {
		return false
	}
	if df.Width() > 0 && !slices.Equal(df.headers, o.headers) {
		return false
	}
	for i := 0; i < df.Len(); i++ {
		for j := range df.rows[i] {
			if !reflect.DeepEqual(df.rows[i][j], o.rows[i][j]) {
				return false
			}
		}
	}

	return true
}

func cloneRows(rows [][]Value) [][]Value {
	out := make([][]Value, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}

	return out
}
