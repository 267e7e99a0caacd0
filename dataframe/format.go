// SPDX-License-Identifier: MIT
// Package dataframe: human-readable rendering.

package dataframe

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// String renders the frame as an aligned table with a leading row-index
// column and a footer giving the shape:
//
//	   first_name  age
//	0  Marco       20
//	1  Giovanni    22
//	[2 rows x 2 columns]
//
// Counts in the footer use thousands separators.
func (df *DataFrame) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	for _, h := range df.Headers() {
		fmt.Fprintf(tw, "\t%s", h)
	}
	fmt.Fprintln(tw)
	for i, row := range df.rowsView() {
		fmt.Fprintf(tw, "%d", i)
		for _, v := range row {
			fmt.Fprintf(tw, "\t%v", v)
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()

	fmt.Fprintf(&b, "[%s %s x %s %s]",
		humanize.Comma(int64(df.Len())), plural(df.Len(), "row", "rows"),
		humanize.Comma(int64(df.Width())), plural(df.Width(), "column", "columns"))

	return b.String()
}

// rowsView returns the internal rows without copying, nil-safe.
func (df *DataFrame) rowsView() [][]Value {
	if df == nil {
		return nil
	}

	return df.rows
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
