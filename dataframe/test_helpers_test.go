// SPDX-License-Identifier: MIT
// Package dataframe_test contains shared fixtures for dataframe tests.

package dataframe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tealframe/dataframe"
)

// Common headers used across tests.
const (
	HFirst = "first_name"
	HLast  = "last_name"
	HAge   = "age"
)

// expectedRows is the two-person fixture in row-major form.
var expectedRows = [][]dataframe.Value{
	{"Marco", "Some", 20},
	{"Giovanni", "Thing", 22},
}

// people returns the four-row fixture used by accessor tests.
func people(t *testing.T) *dataframe.DataFrame {
	t.Helper()
	df, err := dataframe.FromColumns(
		dataframe.Column{Header: HFirst, Values: []dataframe.Value{"Marco", "Giovanni", "Alice", "Marco"}},
		dataframe.Column{Header: HLast, Values: []dataframe.Value{"Some", "Thing", "Else", "Qwerty"}},
		dataframe.Column{Header: HAge, Values: []dataframe.Value{20, 22, 24, 32}},
	)
	require.NoError(t, err)

	return df
}

// mustFrame returns an unwrapper for a Selection that must hold a frame, so
// Access results chain directly: mustFrame(t)(df.Access(key)).
func mustFrame(t *testing.T) func(dataframe.Selection, error) *dataframe.DataFrame {
	t.Helper()

	return func(sel dataframe.Selection, err error) *dataframe.DataFrame {
		t.Helper()
		require.NoError(t, err)
		require.NotNil(t, sel.Frame, "expected a DataFrame selection")
		require.Nil(t, sel.Series)

		return sel.Frame
	}
}
