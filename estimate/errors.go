// SPDX-License-Identifier: MIT
// Package estimate: sentinel error set.
// Every function returns these sentinels, possibly wrapped with fmt.Errorf
// ("ctx: %w"); callers match with errors.Is.

package estimate

import "errors"

var (
	// ErrInvalidRange is returned when a corner or edge count is negative or
	// exceeds the physical piece count (8 corners, 12 edges).
	ErrInvalidRange = errors.New("estimate: piece count out of physical range")

	// ErrOverflow indicates that a size does not fit the requested fixed-width
	// integer. The big.Int value is always exact; only narrowing can overflow.
	ErrOverflow = errors.New("estimate: size overflows uint64")

	// ErrBadShape is returned for non-positive grid dimensions or a negative offset.
	ErrBadShape = errors.New("estimate: invalid grid shape")

	// ErrUnknownMode is returned for a Mode value or name outside the known set.
	ErrUnknownMode = errors.New("estimate: unknown counting mode")

	// ErrInexactDivision signals that a factorial normalisation left a remainder.
	// It cannot happen for valid counts; the check keeps truncation from being silent.
	ErrInexactDivision = errors.New("estimate: division left a remainder")
)
