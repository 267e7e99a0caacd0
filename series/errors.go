// SPDX-License-Identifier: MIT
// Package series: sentinel error set.
// Every specific sentinel wraps one of the two classes (ErrInvalidOperation,
// ErrInvalidArgument), so callers may match either the class or the exact
// condition with errors.Is.
//
// Classes:
//   - ErrInvalidOperation: the receiver's contents do not support the
//     statistic (empty, non-numeric, mixed strings and numbers).
//   - ErrInvalidArgument: the caller passed a bad index or percentile.
//
// Every message is prefixed with "series: ". Public methods add the method
// name at the boundary ("Series.Mean: series: invalid operation: empty
// series"); sentinels are never returned bare from a public method.
//
// Error priority, when several apply: argument checks first (ErrBadPercentile
// before ErrEmptySeries), then emptiness, then per-element conversion in
// element order.

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is the class of errors raised by statistics that are
	// undefined for the receiver's contents.
	ErrInvalidOperation = errors.New("series: invalid operation")

	// ErrInvalidArgument is the class of errors raised for bad caller input.
	ErrInvalidArgument = errors.New("series: invalid argument")
)

var (
	// ErrEmptySeries is returned by Mean, Median, Range, Variance,
	// StandardDeviation, Sum and Percentile on an empty Series.
	ErrEmptySeries = fmt.Errorf("%w: empty series", ErrInvalidOperation)

	// ErrNotNumeric indicates an element could not be viewed as a finite number.
	ErrNotNumeric = fmt.Errorf("%w: non-numeric element", ErrInvalidOperation)

	// ErrNotOrdered indicates two elements cannot be ordered against each other.
	ErrNotOrdered = fmt.Errorf("%w: elements are not mutually ordered", ErrInvalidOperation)

	// ErrOutOfRange indicates an index outside [-Len, Len).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrBadPercentile indicates p outside [0, 100] or NaN.
	ErrBadPercentile = fmt.Errorf("%w: percentile must be within [0, 100]", ErrInvalidArgument)
)

// seriesErrorf wraps err with the public method name.
func seriesErrorf(op string, err error) error {
	return fmt.Errorf("Series.%s: %w", op, err)
}
