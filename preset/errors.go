// SPDX-License-Identifier: MIT

package preset

import "errors"

var (
	// ErrUnknownPreset is returned by Lookup for a name not in the catalogue.
	ErrUnknownPreset = errors.New("preset: unknown preset")

	// ErrInvalidPreset is returned when catalogue data fails validation.
	ErrInvalidPreset = errors.New("preset: invalid preset")
)
