// Package series provides Series, an immutable ordered sequence augmented with
// descriptive statistics.
//
// What is a Series?
//
//	A Series owns an ordered, duplicate-permitting slice of comparable values.
//	Order is preserved exactly as given and is significant: Frequency and Mode
//	report values in first-occurrence order.
//
// Statistics:
//
//   - Frequency / Mode       : need only equality
//   - Mean / Median / Variance / Percentile / Sum : exact *big.Rat results
//   - StandardDeviation      : float64 (square root of the exact variance)
//   - Probability            : exact, with optional Laplace smoothing (WithSmoothing)
//   - Entropy                : Shannon entropy in bits, float64
//   - GiniIndex              : Gini impurity 1 − Σp², exact
//   - Range                  : (min, max) for numeric or string elements
//
// Numeric view:
//
//	Numeric operations accept any Go integer kind and finite float32/float64
//	elements. Floats are converted to rationals exactly (0.1 becomes the exact
//	binary value nearest 0.1), so results never lose precision before the
//	caller asks for a float.
//
// Usage:
//
//	s := series.New(1, 2, 3, 4, 2, 3)
//	mean, _ := s.Mean()              // 5/2
//	p, _ := s.Probability(3, series.WithSmoothing(1)) // 3/10
//	s.Mode()                         // [2 3]
//
// Errors:
//
//	Operations that are undefined on an empty Series return ErrEmptySeries
//	(class ErrInvalidOperation). Bad arguments return ErrInvalidArgument.
//
// Concurrency:
//
//	A Series is never mutated after New; concurrent reads are safe.
package series
