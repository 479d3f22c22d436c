// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnknownStyle is returned for an output style name outside the known set.
	ErrUnknownStyle = errors.New("render: unknown output style")

	// ErrBadFormat indicates an invalid Format (e.g. negative precision).
	ErrBadFormat = errors.New("render: invalid format")
)
