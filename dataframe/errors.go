// SPDX-License-Identifier: MIT
// Package dataframe: sentinel error set.
// All specific sentinels wrap ErrInvalidArgument, so callers can match the
// class or the exact condition with errors.Is. Not-found lookups are not
// errors and have no sentinel.
//
// Where each sentinel comes from:
//   - construction: ErrUnknownInput, ErrDuplicateHeader, ErrRaggedColumns,
//     ErrRowWidth, ErrHeaderMismatch;
//   - access: ErrInvalidKey (nil key only; every real key shape succeeds).
//
// Constructors report the first violation found. FromColumns checks column
// lengths before header uniqueness, so {a: [1 2]}, {a: [1]} fails with
// ErrRaggedColumns; FromMap checks the WithHeaders list against the keys
// before either.

package dataframe

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of all construction and access errors.
var ErrInvalidArgument = errors.New("dataframe: invalid argument")

var (
	// ErrUnknownInput is returned by New for an unrecognized data shape.
	ErrUnknownInput = fmt.Errorf("%w: unrecognized input shape", ErrInvalidArgument)

	// ErrInvalidKey is returned by Access for a key outside the five known shapes.
	ErrInvalidKey = fmt.Errorf("%w: unrecognized key", ErrInvalidArgument)

	// ErrDuplicateHeader indicates the same header was given twice.
	ErrDuplicateHeader = fmt.Errorf("%w: duplicate header", ErrInvalidArgument)

	// ErrRaggedColumns indicates column-major input with unequal column lengths.
	ErrRaggedColumns = fmt.Errorf("%w: columns have unequal lengths", ErrInvalidArgument)

	// ErrRowWidth indicates a row whose length differs from the header count.
	ErrRowWidth = fmt.Errorf("%w: row width does not match headers", ErrInvalidArgument)

	// ErrHeaderMismatch indicates WithHeaders does not name exactly the keys of a map input.
	ErrHeaderMismatch = fmt.Errorf("%w: headers do not match column keys", ErrInvalidArgument)
)

// frameErrorf wraps err with the public operation name.
func frameErrorf(op string, err error) error {
	return fmt.Errorf("DataFrame.%s: %w", op, err)
}
