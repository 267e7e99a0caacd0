// SPDX-License-Identifier: MIT
// Package series: central tendency, dispersion and frequency statistics.
//
// Exactness:
//   - Sum, Mean, Median, Variance are *big.Rat and compare exactly against
//     rational literals (big.NewRat(5, 2)).
//   - StandardDeviation is the only float here: √ is irrational in general.
//
// Every method is a pure read of the receiver; results are freshly allocated.

package series

import (
	"fmt"
	"math"
	"math/big"
)

// Operation name constants for uniform error wrapping.
const (
	opSum               = "Sum"
	opMean              = "Mean"
	opMedian            = "Median"
	opRange             = "Range"
	opVariance          = "Variance"
	opStandardDeviation = "StandardDeviation"
	opProbability       = "Probability"
	opPercentile        = "Percentile"
)

// Frequency counts the occurrences of each distinct element, keeping the
// order in which values first appear. An empty Series yields an empty Tally.
//
//	series.New(1, 2, 3, 4, 2, 3).Frequency() // {1:1 2:2 3:2 4:1}
//
// Complexity: O(n).
func (s *Series[T]) Frequency() *Tally[T] {
	if s == nil {
		return newTally[T](nil)
	}

	return newTally(s.values)
}

// Freq is shorthand for Frequency.
func (s *Series[T]) Freq() *Tally[T] { return s.Frequency() }

// Mode returns every element whose frequency equals the maximum frequency,
// in first-occurrence order. A multimodal Series yields several values; an
// empty Series yields an empty slice.
func (s *Series[T]) Mode() []T {
	t := s.Frequency()
	best := t.Max()
	out := make([]T, 0, 1)
	for v, c := range t.All() {
		if c == best {
			out = append(out, v)
		}
	}

	return out
}

// Sum returns the exact sum of the elements.
// Errors: ErrEmptySeries, ErrNotNumeric.
func (s *Series[T]) Sum() (*big.Rat, error) {
	if s.Len() == 0 {
		return nil, seriesErrorf(opSum, ErrEmptySeries)
	}
	rs, err := rats(s.values)
	if err != nil {
		return nil, seriesErrorf(opSum, err)
	}

	return sumRats(rs), nil
}

// Mean returns sum / n as an exact rational.
// Errors: ErrEmptySeries, ErrNotNumeric.
func (s *Series[T]) Mean() (*big.Rat, error) {
	if s.Len() == 0 {
		return nil, seriesErrorf(opMean, ErrEmptySeries)
	}
	rs, err := rats(s.values)
	if err != nil {
		return nil, seriesErrorf(opMean, err)
	}

	return meanOf(rs), nil
}

// meanOf assumes len(rs) > 0.
func meanOf(rs []*big.Rat) *big.Rat {
	sum := sumRats(rs)

	return sum.Quo(sum, new(big.Rat).SetInt64(int64(len(rs))))
}

// Median returns the middle value of a sorted copy: the middle element when
// n is odd, the exact average of the two middle elements when n is even.
// Errors: ErrEmptySeries, ErrNotNumeric.
// Complexity: O(n log n).
func (s *Series[T]) Median() (*big.Rat, error) {
	if s.Len() == 0 {
		return nil, seriesErrorf(opMedian, ErrEmptySeries)
	}
	rs, err := sortedRats(s.values)
	if err != nil {
		return nil, seriesErrorf(opMedian, err)
	}

	n := len(rs)
	if n%2 == 1 {
		return new(big.Rat).Set(rs[n/2]), nil
	}
	mid := new(big.Rat).Add(rs[n/2-1], rs[n/2])

	return mid.Quo(mid, big.NewRat(2, 1)), nil
}

// Range returns the minimum and maximum elements. Numbers compare by value
// and strings lexicographically; mixing the two is ErrNotOrdered.
// Ties keep the earliest element.
// Errors: ErrEmptySeries, ErrNotOrdered.
func (s *Series[T]) Range() (lo, hi T, err error) {
	if s.Len() == 0 {
		return lo, hi, seriesErrorf(opRange, ErrEmptySeries)
	}

	var loKey, hiKey orderKey
	for i, v := range s.values {
		k, ok := orderKeyOf(v)
		if !ok {
			return lo, hi, seriesErrorf(opRange, fmt.Errorf("element %d (%T): %w", i, v, ErrNotOrdered))
		}
		if i == 0 {
			lo, hi, loKey, hiKey = v, v, k, k
			continue
		}
		c, ok := k.compare(loKey)
		if !ok {
			return lo, hi, seriesErrorf(opRange, fmt.Errorf("element %d (%T): %w", i, v, ErrNotOrdered))
		}
		if c < 0 {
			lo, loKey = v, k
		}
		if c, _ = k.compare(hiKey); c > 0 {
			hi, hiKey = v, k
		}
	}

	return lo, hi, nil
}

// Variance returns the population variance: the exact mean of squared
// deviations from the mean (denominator n, not n−1).
// Errors: ErrEmptySeries, ErrNotNumeric.
func (s *Series[T]) Variance() (*big.Rat, error) {
	if s.Len() == 0 {
		return nil, seriesErrorf(opVariance, ErrEmptySeries)
	}
	rs, err := rats(s.values)
	if err != nil {
		return nil, seriesErrorf(opVariance, err)
	}

	return varianceOf(rs), nil
}

// varianceOf assumes len(rs) > 0.
func varianceOf(rs []*big.Rat) *big.Rat {
	mean := meanOf(rs)
	acc := new(big.Rat)
	d := new(big.Rat)
	for _, r := range rs {
		d.Sub(r, mean)
		acc.Add(acc, d.Mul(d, d))
	}

	return acc.Quo(acc, new(big.Rat).SetInt64(int64(len(rs))))
}

// StandardDeviation returns √Variance as a float64 approximation.
// Errors: ErrEmptySeries, ErrNotNumeric.
func (s *Series[T]) StandardDeviation() (float64, error) {
	if s.Len() == 0 {
		return 0, seriesErrorf(opStandardDeviation, ErrEmptySeries)
	}
	rs, err := rats(s.values)
	if err != nil {
		return 0, seriesErrorf(opStandardDeviation, err)
	}
	v, _ := varianceOf(rs).Float64()

	return math.Sqrt(v), nil
}
