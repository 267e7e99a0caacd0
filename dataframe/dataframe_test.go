// SPDX-License-Identifier: MIT

package dataframe_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tealframe/dataframe"
)

// TestNew_Empty creates an empty frame that keeps its headers.
func TestNew_Empty(t *testing.T) {
	df, err := dataframe.New(nil, dataframe.WithHeaders(HFirst, HLast, HAge))
	require.NoError(t, err)
	assert.Equal(t, 0, df.Len())
	assert.Equal(t, []string{HFirst, HLast, HAge}, df.Headers())
	assert.Empty(t, df.Rows())

	df, err = dataframe.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, df.Width())
}

// TestNew_FromColumns keeps column order and transposes to rows.
func TestNew_FromColumns(t *testing.T) {
	df, err := dataframe.New([]dataframe.Column{
		{Header: HFirst, Values: []dataframe.Value{"Marco", "Giovanni"}},
		{Header: HLast, Values: []dataframe.Value{"Some", "Thing"}},
		{Header: HAge, Values: []dataframe.Value{20, 22}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{HFirst, HLast, HAge}, df.Headers())
	if diff := cmp.Diff(expectedRows, df.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestNew_FromMap sorts keys unless headers fix the order.
func TestNew_FromMap(t *testing.T) {
	m := map[string][]dataframe.Value{
		HFirst: {"Marco", "Giovanni"},
		HLast:  {"Some", "Thing"},
		HAge:   {20, 22},
	}

	df, err := dataframe.New(m)
	require.NoError(t, err)
	assert.Equal(t, []string{HAge, HFirst, HLast}, df.Headers(), "map keys are sorted")
	assert.ElementsMatch(t, []string{HFirst, HLast, HAge}, df.Headers())

	df, err = dataframe.New(m, dataframe.WithHeaders(HFirst, HLast, HAge))
	require.NoError(t, err)
	if diff := cmp.Diff(expectedRows, df.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	_, err = dataframe.New(m, dataframe.WithHeaders(HFirst, HAge))
	assert.ErrorIs(t, err, dataframe.ErrHeaderMismatch)

	_, err = dataframe.New(m, dataframe.WithHeaders(HFirst, HAge, "other"))
	assert.ErrorIs(t, err, dataframe.ErrHeaderMismatch)
}

// TestNew_FromRows stores row tuples as given.
func TestNew_FromRows(t *testing.T) {
	df, err := dataframe.New(
		[][]dataframe.Value{{"Marco", "Some", 20}, {"Giovanni", "Thing", 22}},
		dataframe.WithHeaders(HFirst, HLast, HAge),
	)
	require.NoError(t, err)
	if diff := cmp.Diff(expectedRows, df.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestNew_FromRecords projects each header, filling missing keys.
func TestNew_FromRecords(t *testing.T) {
	recs := []map[string]dataframe.Value{
		{HFirst: "Marco", HLast: "Some", HAge: 20},
		{HFirst: "Giovanni", HLast: "Thing", HAge: 22},
	}
	df, err := dataframe.New(recs, dataframe.WithHeaders(HFirst, HLast, HAge))
	require.NoError(t, err)
	if diff := cmp.Diff(expectedRows, df.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	sparse := []dataframe.Record{{HFirst: "Alice", "ignored": true}, {HAge: 30}}
	df, err = dataframe.New(sparse, dataframe.WithHeaders(HFirst, HAge))
	require.NoError(t, err)
	assert.Equal(t, [][]dataframe.Value{{"Alice", nil}, {nil, 30}}, df.Rows())

	df, err = dataframe.FromRecords([]string{HFirst, HAge}, sparse, dataframe.WithFill("n/a"))
	require.NoError(t, err)
	assert.Equal(t, [][]dataframe.Value{{"Alice", "n/a"}, {"n/a", 30}}, df.Rows())
}

// TestNew_TypedContainers accepts concrete element types through coercion.
func TestNew_TypedContainers(t *testing.T) {
	df, err := dataframe.New(map[string][]int{"a": {1, 2}, "b": {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, df.Headers())
	assert.Equal(t, [][]dataframe.Value{{1, 3}, {2, 4}}, df.Rows())

	df, err = dataframe.New([][]float64{{1.5, 2}, {3, 4.5}}, dataframe.WithHeaders("x", "y"))
	require.NoError(t, err)
	assert.Equal(t, [][]dataframe.Value{{1.5, 2.0}, {3.0, 4.5}}, df.Rows())

	df, err = dataframe.New([]map[string]string{{HFirst: "Marco"}, {HLast: "Thing"}}, dataframe.WithHeaders(HFirst, HLast))
	require.NoError(t, err)
	assert.Equal(t, [][]dataframe.Value{{"Marco", nil}, {nil, "Thing"}}, df.Rows())

	_, err = dataframe.New(map[string][]int{"a": {1, 2}, "b": {3}})
	assert.ErrorIs(t, err, dataframe.ErrRaggedColumns)

	_, err = dataframe.New([][]int{{1, 2}}, dataframe.WithHeaders("only"))
	assert.ErrorIs(t, err, dataframe.ErrRowWidth)

	for _, bad := range []any{[]int{1, 2}, map[int][]int{1: {1}}, map[string]int{"a": 1}} {
		_, err = dataframe.New(bad)
		assert.ErrorIs(t, err, dataframe.ErrUnknownInput, "%T", bad)
	}
}

// TestNew_InvalidArgument covers every construction failure.
func TestNew_InvalidArgument(t *testing.T) {
	_, err := dataframe.New(42)
	assert.ErrorIs(t, err, dataframe.ErrUnknownInput)
	assert.ErrorIs(t, err, dataframe.ErrInvalidArgument)

	_, err = dataframe.New("a,b,c")
	assert.ErrorIs(t, err, dataframe.ErrUnknownInput)

	_, err = dataframe.FromColumns(
		dataframe.Column{Header: "a", Values: []dataframe.Value{1, 2}},
		dataframe.Column{Header: "b", Values: []dataframe.Value{1}},
	)
	assert.ErrorIs(t, err, dataframe.ErrRaggedColumns)
	assert.ErrorIs(t, err, dataframe.ErrInvalidArgument)

	_, err = dataframe.FromRows([]string{"a", "b"}, [][]dataframe.Value{{1, 2}, {3}})
	assert.ErrorIs(t, err, dataframe.ErrRowWidth)

	_, err = dataframe.FromRows(nil, [][]dataframe.Value{{1}})
	assert.ErrorIs(t, err, dataframe.ErrRowWidth, "rows without headers have the wrong width")

	_, err = dataframe.Empty("a", "b", "a")
	assert.ErrorIs(t, err, dataframe.ErrDuplicateHeader)

	_, err = dataframe.FromColumns(
		dataframe.Column{Header: "a", Values: []dataframe.Value{1}},
		dataframe.Column{Header: "a", Values: []dataframe.Value{2}},
	)
	assert.ErrorIs(t, err, dataframe.ErrDuplicateHeader)
}

// TestConstruction_CopiesInput ensures the frame owns its rows.
func TestConstruction_CopiesInput(t *testing.T) {
	rows := [][]dataframe.Value{{1, 2}}
	df, err := dataframe.FromRows([]string{"a", "b"}, rows)
	require.NoError(t, err)

	rows[0][0] = 99
	v, ok := df.At(0, "a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	out := df.Rows()
	out[0][1] = 99
	v, _ = df.At(0, "b")
	assert.Equal(t, 2, v, "Rows() must return a copy")
}

// TestRoundTrip_Columns rebuilds the input column mapping via Records.
func TestRoundTrip_Columns(t *testing.T) {
	in := map[string][]dataframe.Value{"a": {1, 2}, "b": {3, 4}}
	df, err := dataframe.New(in)
	require.NoError(t, err)

	out := make(map[string][]dataframe.Value)
	for _, rec := range df.Records() {
		for _, h := range df.Headers() {
			out[h] = append(out[h], rec[h])
		}
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	back, err := dataframe.FromColumns(df.Columns()...)
	require.NoError(t, err)
	assert.True(t, back.Equal(df))
}

// TestEqual distinguishes headers, order and cells.
func TestEqual(t *testing.T) {
	a := people(t)
	assert.True(t, a.Equal(people(t)))
	assert.False(t, a.Equal(a.Select(HAge, HFirst, HLast)))
	assert.False(t, a.Equal(a.Take(1, 0, 2, 3)))
	assert.False(t, a.Equal(a.Slice(0, 3)))
}

// TestString renders an aligned table with a shape footer.
func TestString(t *testing.T) {
	df, err := dataframe.FromRows([]string{HFirst, HAge}, [][]dataframe.Value{{"Marco", 20}, {"Giovanni", 22}})
	require.NoError(t, err)

	want := "   first_name  age\n" +
		"0  Marco       20\n" +
		"1  Giovanni    22\n" +
		"[2 rows x 2 columns]"
	assert.Equal(t, want, df.String())

	one, _ := df.Row(0)
	assert.Contains(t, one.String(), "[1 row x 2 columns]")
}
