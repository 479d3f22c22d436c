// SPDX-License-Identifier: MIT

// Package estimate: functional configuration for grid estimation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package estimate

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOffset is the piece count of row/column 0 (range(n) semantics).
	DefaultOffset = 0

	// DefaultBytesPerEntry assumes one byte per table entry.
	DefaultBytesPerEntry = 1
)

// ---------- Internal panic messages ----------

const (
	panicBytesPerEntryInvalid = "estimate: WithBytesPerEntry: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	offset        int   // DefaultOffset; validated by Estimate (ErrBadShape when < 0)
	bytesPerEntry int64 // DefaultBytesPerEntry; > 0
}

// WithOffset sets the piece count of the first row and column.
//   - 0: cell i covers i pieces (range(n)).
//   - 1: cell i covers i+1 pieces (range(n+1)[1:]).
//
// Negative offsets are reported by Estimate as ErrBadShape rather than
// panicking, since they usually come from preset data.
func WithOffset(n int) Option {
	return func(o *Options) { o.offset = n }
}

// WithBytesPerEntry sets the storage cost of one table entry.
// Panics when n <= 0 (programmer error).
func WithBytesPerEntry(n int) Option {
	if n <= 0 {
		panic(panicBytesPerEntryInvalid)
	}

	return func(o *Options) { o.bytesPerEntry = int64(n) }
}

// defaultOptions returns Options populated with Default* constants.
func defaultOptions() Options {
	return Options{
		offset:        DefaultOffset,
		bytesPerEntry: DefaultBytesPerEntry,
	}
}

// gatherOptions applies opts on top of the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
