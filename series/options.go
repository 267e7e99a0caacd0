// SPDX-License-Identifier: MIT
// Package series: functional options for Probability.
// This file defines:
//   - ProbabilityOption / probabilityOptions (functional options, internal state),
//   - DefaultSmoothing (documented default),
//   - WithSmoothing / WithSmoothingRat constructors with validation,
//   - gatherProbabilityOptions, which applies defaults then opts in order.
//
// Design goals:
//   - Options are per call: no package-level state, nothing sticky between calls.
//   - Safe by construction: constructors panic on nonsensical values
//     (programmer error); the statistics never panic on user data.
//   - Exact: the factor is stored as *big.Rat, never as a float.
//
// Notes:
//   - WithSmoothing takes a float64 for convenience and reads it at its
//     shortest decimal value (0.1 is 1/10). Use WithSmoothingRat when the
//     factor is already rational or must not round-trip through a float.
//   - Later options win: WithSmoothing(1), WithSmoothing(2) smooths by 2.
//   - A nil option is skipped.

package series

import (
	"math"
	"math/big"
)

// DefaultSmoothing is the additive (Laplace) smoothing factor used when
// WithSmoothing is not supplied: plain relative frequency.
const DefaultSmoothing = 0.0

const panicSmoothingInvalid = "series: WithSmoothing: factor must be finite and non-negative"

// ProbabilityOption configures a single Probability call.
type ProbabilityOption func(*probabilityOptions)

type probabilityOptions struct {
	smoothing *big.Rat // >= 0
}

// WithSmoothing sets the Laplace smoothing factor k, turning the estimate into
// (count + k) / (n + distinct·k). k is read at its shortest decimal value,
// so WithSmoothing(0.1) smooths by exactly 1/10.
// Panics if k is negative, NaN or infinite.
func WithSmoothing(k float64) ProbabilityOption {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		panic(panicSmoothingInvalid)
	}
	r := decimalRat(k)

	return func(o *probabilityOptions) { o.smoothing = r }
}

// WithSmoothingRat is WithSmoothing for a factor already held as a rational.
// k is copied. Panics if k is nil or negative.
func WithSmoothingRat(k *big.Rat) ProbabilityOption {
	if k == nil || k.Sign() < 0 {
		panic(panicSmoothingInvalid)
	}
	r := new(big.Rat).Set(k)

	return func(o *probabilityOptions) { o.smoothing = r }
}

// gatherProbabilityOptions applies opts over the documented defaults.
func gatherProbabilityOptions(opts ...ProbabilityOption) probabilityOptions {
	o := probabilityOptions{smoothing: decimalRat(DefaultSmoothing)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
