// SPDX-License-Identifier: MIT
// Package dataframe: row enumeration and column-major export.
// Records is the only place where positional rows become name-keyed views.

package dataframe

import "iter"

// Records yields (row index, Record) pairs in row order. Each Record is a
// fresh map from header to the row's cell, so callers may keep or modify it.
// The sequence is lazy (one map per step) and restartable.
//
//	for i, rec := range df.Records() {
//		fmt.Println(i, rec["first_name"])
//	}
func (df *DataFrame) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if df == nil {
			return
		}
		for i, row := range df.rows {
			rec := make(Record, len(df.headers))
			for j, h := range df.headers {
				rec[h] = row[j]
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Columns exports the frame column-major, in header order. It is the inverse
// of FromColumns: FromColumns(df.Columns()...) equals df.
func (df *DataFrame) Columns() []Column {
	if df == nil {
		return nil
	}
	out := make([]Column, len(df.headers))
	for j, h := range df.headers {
		vs := make([]Value, len(df.rows))
		for i, row := range df.rows {
			vs[i] = row[j]
		}
		out[j] = Column{Header: h, Values: vs}
	}

	return out
}
