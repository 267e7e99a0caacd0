// SPDX-License-Identifier: MIT
// Package series_test contains shared fixtures and assertions for series tests.

package series_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/tealframe/series"
)

// Common fixture values (avoid magic numbers in test bodies).
var sampleValues = []int{1, 2, 3, 4, 2, 3}

const epsTight = 1e-12

// sample returns the canonical [1 2 3 4 2 3] fixture.
func sample() *series.Series[int] {
	return series.New(sampleValues...)
}

// requireRat fails the test unless got equals num/den exactly.
func requireRat(t *testing.T, got *big.Rat, num, den int64) {
	t.Helper()
	if got == nil {
		t.Fatalf("got nil, want %d/%d", num, den)
	}
	want := big.NewRat(num, den)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", got.RatString(), want.RatString())
	}
}

// ratEqual reports exact equality of two rationals.
func ratEqual(a, b *big.Rat) bool {
	return a != nil && b != nil && a.Cmp(b) == 0
}
