// SPDX-License-Identifier: MIT
// Package dataframe: parallel per-column summaries.
//
// Each column is summarized by its own goroutine over its own projected
// Series; results land in a pre-sized slice slot indexed by column, so no
// accumulator is shared and output order is deterministic.

package dataframe

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tealframe/series"
)

// Summary holds descriptive statistics for one column.
// Statistics that do not apply to the column's values are left zero and the
// first such failure is recorded in Err (e.g. series.ErrNotNumeric for a
// column of names, series.ErrEmptySeries for a frame with no rows).
type Summary struct {
	Header string
	Count  int
	Min    Value
	Max    Value
	Mean   *big.Rat
	Median *big.Rat
	StdDev float64
	Err    error
}

// Describe summarizes the named columns (all columns when none are given).
// Unknown names are dropped, as with Select; the result follows the order of
// the selected columns.
func (df *DataFrame) Describe(headers ...string) []Summary {
	target := df
	if len(headers) > 0 {
		target = df.Select(headers...)
	}
	cols := target.Headers()

	out := make([]Summary, len(cols))
	var wg sync.WaitGroup
	wg.Add(len(cols))
	for j, h := range cols {
		go func(j int, h string) {
			defer wg.Done()
			s, _ := target.Column(h)
			out[j] = summarize(h, s)
		}(j, h)
	}
	wg.Wait()

	return out
}

// summarize runs the statistics of one column sequentially.
func summarize(h string, s *series.Series[Value]) Summary {
	sum := Summary{Header: h, Count: s.Len()}

	var err error
	if sum.Min, sum.Max, err = s.Range(); err != nil {
		sum.Min, sum.Max = nil, nil
		sum.Err = err
		return sum
	}
	if sum.Mean, err = s.Mean(); err != nil {
		sum.Err = err
		return sum
	}
	if sum.Median, err = s.Median(); err != nil {
		sum.Err = err
		return sum
	}
	if sum.StdDev, err = s.StandardDeviation(); err != nil {
		sum.Err = err
	}

	return sum
}

// String renders one line, e.g. "age: count=4 min=20 max=32 mean=24.5000 median=23.0000 std=4.555217".
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: count=%s", s.Header, humanize.Comma(int64(s.Count)))
	if s.Min != nil {
		fmt.Fprintf(&b, " min=%v max=%v", s.Min, s.Max)
	}
	if s.Mean != nil {
		fmt.Fprintf(&b, " mean=%s", s.Mean.FloatString(4))
	}
	if s.Median != nil {
		fmt.Fprintf(&b, " median=%s std=%s", s.Median.FloatString(4), humanize.Ftoa(s.StdDev))
	}
	if s.Err != nil {
		fmt.Fprintf(&b, " (%v)", s.Err)
	}

	return b.String()
}
