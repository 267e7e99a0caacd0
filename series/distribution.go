// SPDX-License-Identifier: MIT
// Package series: distribution-based statistics.
//
// Exposed API:
//   - Probability(v, ...ProbabilityOption) -> exact Laplace-smoothed relative frequency
//   - Percentile(p)                        -> exact linear interpolation between order statistics
//   - Entropy()                            -> Shannon entropy in bits (float64)
//   - GiniIndex()                          -> Gini impurity 1 − Σp² (exact)
//
// All four read the empirical distribution of the receiver; none requires the
// queried value to be present.

package series

import (
	"fmt"
	"math"
	"math/big"
)

// percentScale is the threshold above which p is read as a percentage.
const percentScale = 100

// Probability estimates P(v) from the Series with additive smoothing:
//
//	(count(v) + k) / (n + distinct·k)
//
// where k is set by WithSmoothing (default 0). With k = 0 and v absent the
// result is exactly 0/n = 0.
//
//	s := series.New(1, 2, 3, 4, 2, 3)
//	s.Probability(3)                          // 1/3
//	s.Probability(3, series.WithSmoothing(1)) // 3/10
//	s.Probability(-1, series.WithSmoothing(1)) // 1/10
//
// Errors: ErrEmptySeries when the denominator is zero (empty Series).
func (s *Series[T]) Probability(v T, opts ...ProbabilityOption) (*big.Rat, error) {
	o := gatherProbabilityOptions(opts...)
	t := s.Frequency()

	// Stage 1: denominator n + d·k.
	den := new(big.Rat).SetInt64(int64(t.Len()))
	den.Mul(den, o.smoothing)
	den.Add(den, new(big.Rat).SetInt64(int64(t.Total())))
	if den.Sign() == 0 {
		return nil, seriesErrorf(opProbability, ErrEmptySeries)
	}

	// Stage 2: numerator count + k.
	num := new(big.Rat).SetInt64(int64(t.Count(v)))
	num.Add(num, o.smoothing)

	return num.Quo(num, den), nil
}

// Percentile returns the value at fraction p of the sorted Series, using
// linear interpolation between adjacent order statistics at rank p·(n−1).
// p is read as a fraction when p ≤ 1 and as a percentage when 1 < p ≤ 100,
// so Percentile(0.5) and Percentile(50) both equal Median(). p is taken at
// its shortest decimal value: Percentile(30) on 0..10 is exactly 3.
//
// Errors: ErrBadPercentile (p < 0, p > 100, NaN), ErrEmptySeries, ErrNotNumeric.
// Complexity: O(n log n).
func (s *Series[T]) Percentile(p float64) (*big.Rat, error) {
	if math.IsNaN(p) || p < 0 || p > percentScale {
		return nil, seriesErrorf(opPercentile, fmt.Errorf("p=%g: %w", p, ErrBadPercentile))
	}
	if s.Len() == 0 {
		return nil, seriesErrorf(opPercentile, ErrEmptySeries)
	}
	rs, err := sortedRats(s.values)
	if err != nil {
		return nil, seriesErrorf(opPercentile, err)
	}

	// rank = p·(n−1), split into integer part (lower order statistic) and fraction.
	rank := decimalRat(p)
	if p > 1 {
		rank.Quo(rank, big.NewRat(percentScale, 1))
	}
	rank.Mul(rank, new(big.Rat).SetInt64(int64(len(rs)-1)))
	lower := new(big.Int).Quo(rank.Num(), rank.Denom()) // rank ≥ 0, so Quo is floor
	i := int(lower.Int64())
	frac := new(big.Rat).Sub(rank, new(big.Rat).SetInt(lower))

	if frac.Sign() == 0 || i+1 >= len(rs) {
		return new(big.Rat).Set(rs[i]), nil
	}

	// rs[i] + (rs[i+1] − rs[i])·frac
	out := new(big.Rat).Sub(rs[i+1], rs[i])
	out.Mul(out, frac)

	return out.Add(out, rs[i]), nil
}

// Entropy returns the Shannon entropy, in bits, of the empirical
// distribution given by Frequency: −Σ p(x)·log₂ p(x). An empty Series has
// entropy 0.
func (s *Series[T]) Entropy() float64 {
	t := s.Frequency()
	if t.Total() == 0 {
		return 0
	}

	n := float64(t.Total())
	h := 0.0
	for _, c := range t.All() {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}

	return h
}

// GiniIndex returns the Gini impurity 1 − Σ p(x)² of the empirical
// distribution, exactly: (n² − Σ count²) / n². An empty Series has impurity 0.
func (s *Series[T]) GiniIndex() *big.Rat {
	t := s.Frequency()
	n := int64(t.Total())
	if n == 0 {
		return new(big.Rat)
	}

	sq := new(big.Int)
	c := new(big.Int)
	for _, count := range t.All() {
		c.SetInt64(int64(count))
		sq.Add(sq, c.Mul(c, c))
	}
	n2 := new(big.Int).Mul(big.NewInt(n), big.NewInt(n))

	return new(big.Rat).SetFrac(new(big.Int).Sub(n2, sq), n2)
}
