// SPDX-License-Identifier: MIT
// Package dataframe: reflective coercion of typed containers.
//
// New's fast path matches the []Value-based shapes with a type switch. Callers
// holding concrete element types (map[string][]int, [][]float64,
// []map[string]string, ...) would otherwise have to copy into []Value by hand;
// coerce does that copy once, by kind:
//
//	map[~string][]E         -> map[string][]Value
//	[][]E                   -> [][]Value
//	[]map[~string]E         -> []Record
//
// Anything else (scalars, strings, slices of scalars, maps keyed by non-string
// kinds) is left to New, which reports ErrUnknownInput.

package dataframe

import "reflect"

// coerce converts a typed container into the matching []Value-based shape.
// ok is false when data has none of the recognized kinds.
func coerce(data any) (out any, ok bool) {
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || !isList(rv.Type().Elem()) {
			return nil, false
		}
		m := make(map[string][]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = valuesOf(iter.Value())
		}
		return m, true

	case reflect.Slice, reflect.Array:
		elem := rv.Type().Elem()
		switch {
		case isList(elem):
			rows := make([][]Value, rv.Len())
			for i := range rows {
				rows[i] = valuesOf(rv.Index(i))
			}
			return rows, true
		case elem.Kind() == reflect.Map && elem.Key().Kind() == reflect.String:
			recs := make([]Record, rv.Len())
			for i := range recs {
				recs[i] = recordOf(rv.Index(i))
			}
			return recs, true
		}
	}

	return nil, false
}

// isList reports whether t is a slice or array type.
func isList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// valuesOf copies a slice or array value into a []Value. Never nil.
func valuesOf(rv reflect.Value) []Value {
	out := make([]Value, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// recordOf copies a string-keyed map value into a Record.
func recordOf(rv reflect.Value) Record {
	rec := make(Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec[iter.Key().String()] = iter.Value().Interface()
	}

	return rec
}
