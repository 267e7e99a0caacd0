// Package dataframe provides DataFrame, an immutable, column-named, row-major
// in-memory table, and a single polymorphic accessor over a sealed key union.
//
// Construction:
//
//	New dispatches on the shape of its input:
//
//	  nil                  -> empty frame (headers from WithHeaders)
//	  []Column             -> column-major input, headers in the given order
//	  map[string][]Value   -> column-major input, headers sorted (or WithHeaders order)
//	  [][]Value            -> row tuples, headers from WithHeaders
//	  []Record             -> row mappings projected through WithHeaders
//	  []map[string]Value   -> same as []Record
//	  typed containers     -> map[string][]int, [][]float64, []map[string]string ...
//	                          are copied into the []Value forms above
//	  anything else        -> ErrUnknownInput (class ErrInvalidArgument)
//
//	Duplicate headers (ErrDuplicateHeader), columns of unequal length
//	(ErrRaggedColumns) and rows of the wrong width (ErrRowWidth) are rejected.
//
// Access:
//
//	Access(key) matches exactly five key shapes:
//
//	  Header("age")         -> Selection.Series, the projected column
//	  Index(-1)             -> Selection.Frame, a single-row frame
//	  Span{Start: 1, End: 3}-> Selection.Frame, rows [1, 3)
//	  Headers{"a", "b"}     -> Selection.Frame, existing columns in list order
//	  Indexes{3, 0}         -> Selection.Frame, existing rows in list order
//
//	Not-found conditions are never errors: an unknown header or out-of-range
//	index yields an empty Selection (IsNil), and list keys silently drop
//	members that do not exist. Only a nil key reports ErrInvalidKey.
//
// Enumeration:
//
//	for i, rec := range df.Records() {
//	    fmt.Println(i, rec["age"])
//	}
//
//	Records is lazy and may be ranged any number of times.
//
// Concurrency:
//
//	A DataFrame is never mutated after construction; concurrent readers need
//	no locking. Describe summarizes columns in parallel, one goroutine per
//	column, each reading only its own projection.
package dataframe
