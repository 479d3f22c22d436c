// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All accessors MUST return these sentinels and tests check them via errors.Is.

package grid

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0,
	// or a window that does not fit the grid).
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDataMismatch indicates that a backing slice has the wrong length for
	// the requested shape.
	ErrDataMismatch = errors.New("grid: data length does not match shape")
)
