// SPDX-License-Identifier: MIT
// Package series: numeric and ordering views over arbitrary comparable elements.
//
// Numeric view:
//   - all signed and unsigned Go integer kinds (named types included), exactly;
//   - finite float32/float64, exactly (big.Rat.SetFloat64): an element 0.1
//     is the binary value the caller stored, not 1/10;
//   - anything else (including NaN/±Inf) is rejected with ErrNotNumeric.
//
// Ordering view:
//   - numbers order by exact value, strings lexicographically;
//   - a number and a string are not mutually ordered (ErrNotOrdered).
//
// Parameters (a percentile, a smoothing factor) are different: they are read
// at their shortest decimal value (decimalRat), so Percentile(30) lands on an
// order statistic exactly.

package series

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ratOf returns the exact rational value of v, or false if v is not a finite number.
func ratOf(v any) (*big.Rat, bool) {
	switch x := v.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(x)), true
	case int8:
		return new(big.Rat).SetInt64(int64(x)), true
	case int16:
		return new(big.Rat).SetInt64(int64(x)), true
	case int32:
		return new(big.Rat).SetInt64(int64(x)), true
	case int64:
		return new(big.Rat).SetInt64(x), true
	case uint:
		return new(big.Rat).SetUint64(uint64(x)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(x)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(x)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(x)), true
	case uint64:
		return new(big.Rat).SetUint64(x), true
	case uintptr:
		return new(big.Rat).SetUint64(uint64(x)), true
	case float32:
		return finiteRat(float64(x))
	case float64:
		return finiteRat(x)
	}

	// Named numeric types (type Score int) fall through to reflection.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Rat).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return finiteRat(rv.Float())
	}

	return nil, false
}

func finiteRat(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}

	return new(big.Rat).SetFloat64(f), true
}

// decimalRat converts a caller-supplied parameter (a percentile, a smoothing
// factor) through its shortest decimal form, so 0.1 reads as 1/10 rather than
// the binary value nearest it. Elements keep their exact binary value
// (finiteRat); parameters are what the caller wrote. f must be finite.
func decimalRat(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		return new(big.Rat).SetFloat64(f)
	}

	return r
}

// rats converts every element to its exact rational value, in order.
func rats[T comparable](values []T) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(values))
	for i, v := range values {
		r, ok := ratOf(v)
		if !ok {
			return nil, fmt.Errorf("element %d (%T): %w", i, v, ErrNotNumeric)
		}
		out[i] = r
	}

	return out, nil
}

// sortedRats returns the rational view of values sorted ascending.
// The input slice is never reordered.
func sortedRats[T comparable](values []T) ([]*big.Rat, error) {
	rs, err := rats(values)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rs, func(a, b *big.Rat) int { return a.Cmp(b) })

	return rs, nil
}

// sumRats returns Σ rs as a fresh value.
func sumRats(rs []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	for _, r := range rs {
		sum.Add(sum, r)
	}

	return sum
}

// orderKey is the ordering view of one element.
type orderKey struct {
	num   *big.Rat
	str   string
	isStr bool
}

func orderKeyOf(v any) (orderKey, bool) {
	if s, ok := v.(string); ok {
		return orderKey{str: s, isStr: true}, true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return orderKey{str: rv.String(), isStr: true}, true
	}
	if r, ok := ratOf(v); ok {
		return orderKey{num: r}, true
	}

	return orderKey{}, false
}

// compare orders k against o. ok is false when the kinds differ.
func (k orderKey) compare(o orderKey) (c int, ok bool) {
	if k.isStr != o.isStr {
		return 0, false
	}
	if k.isStr {
		return strings.Compare(k.str, o.str), true
	}

	return k.num.Cmp(o.num), true
}
