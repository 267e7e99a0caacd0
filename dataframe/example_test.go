// SPDX-License-Identifier: MIT

package dataframe_test

import (
	"fmt"

	"github.com/katalvlaran/tealframe/dataframe"
)

// ExampleDataFrame_Access shows every key shape on a small frame.
func ExampleDataFrame_Access() {
	df, err := dataframe.New(
		[][]dataframe.Value{{"Marco", 20}, {"Giovanni", 22}, {"Alice", 24}},
		dataframe.WithHeaders("first_name", "age"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sel, _ := df.Access(dataframe.Header("age"))
	fmt.Println(sel.Series)

	sel, _ = df.Access(dataframe.Index(-1))
	fmt.Println(sel.Frame.Rows())

	sel, _ = df.Access(dataframe.Span{Start: 0, End: 2})
	fmt.Println(sel.Frame.Len())

	sel, _ = df.Access(dataframe.Headers{"age", "missing"})
	fmt.Println(sel.Frame.Headers())

	sel, _ = df.Access(dataframe.Indexes{2, 0, 9})
	fmt.Println(sel.Frame.Rows())

	sel, _ = df.Access(dataframe.Index(50))
	fmt.Println(sel.IsNil())

	// Output:
	// Series[20 22 24]
	// [[Alice 24]]
	// 2
	// [age]
	// [[Alice 24] [Marco 20]]
	// true
}

// ExampleDataFrame_Records iterates rows as name-keyed records.
func ExampleDataFrame_Records() {
	df, _ := dataframe.FromColumns(
		dataframe.Column{Header: "name", Values: []dataframe.Value{"Marco", "Alice"}},
		dataframe.Column{Header: "age", Values: []dataframe.Value{20, 24}},
	)
	for i, rec := range df.Records() {
		fmt.Println(i, rec["name"], rec["age"])
	}

	// Output:
	// 0 Marco 20
	// 1 Alice 24
}

// ExampleDataFrame_Describe summarizes a numeric column.
func ExampleDataFrame_Describe() {
	df, _ := dataframe.New(map[string][]dataframe.Value{
		"age": {20, 22, 24, 32},
	})
	for _, s := range df.Describe() {
		fmt.Println(s)
	}

	// Output:
	// age: count=4 min=20 max=32 mean=24.5000 median=23.0000 std=4.555217
}
