// SPDX-License-Identifier: MIT
// Package dataframe: functional options for construction.
//
// Options are only consulted by the input shapes that need them:
//   - WithHeaders names the columns of row-shaped input and may reorder map input.
//   - WithFill sets the cell value used for keys missing from a Record.

package dataframe

// Option mutates construction options. Safe to apply repeatedly; the last
// application wins.
type Option func(*Options)

// Options is the effective construction configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	headers []string // column names for row-shaped input
	fill    Value    // nil unless WithFill
}

// WithHeaders supplies the ordered column names.
func WithHeaders(headers ...string) Option {
	hs := append([]string(nil), headers...)

	return func(o *Options) { o.headers = hs }
}

// WithFill sets the value stored for headers missing from a Record.
// Without it, missing cells hold nil.
func WithFill(v Value) Option {
	return func(o *Options) { o.fill = v }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
