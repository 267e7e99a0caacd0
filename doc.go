// Package tealframe is a small in-memory toolkit for tabular and univariate
// statistical data: an exact-arithmetic Series and a column-named DataFrame
// with one polymorphic accessor.
//
// What is inside?
//
//	series/    : Series[T]: an immutable ordered sequence with frequency,
//	             mean, median, mode, range, variance, standard deviation,
//	             probability (with Laplace smoothing), percentile, entropy
//	             and Gini impurity. Arithmetic results are exact *big.Rat.
//	dataframe/ : DataFrame: headers plus row-major storage, built from
//	             columns, maps, row tuples or records; Access(key) selects
//	             a column, a row, a span of rows, a list of columns or a
//	             list of rows; Records() iterates name-keyed rows.
//	examples/  : runnable scenarios (go run ./examples).
//
// Quick example:
//
//	df, _ := dataframe.New(map[string][]dataframe.Value{
//		"age": {20, 22, 24, 32},
//	})
//	sel, _ := df.Access(dataframe.Header("age"))
//	mean, _ := sel.Series.Mean() // 49/2
//
// Values are never mutated after construction, so every type is safe for
// concurrent reads.
//
//	go get github.com/katalvlaran/tealframe
package tealframe
