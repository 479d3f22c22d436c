// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
)

// Format defaults.
const (
	// DefaultPrecision is the number of decimals printed for megabytes.
	DefaultPrecision = 2

	// MaxPrecision bounds Precision; beyond it float64 noise is printed.
	MaxPrecision = 12

	// NotApplicable is printed for cells without a defined size.
	NotApplicable = "n/a"
)

// Format holds per-call formatting parameters.
type Format struct {
	Precision int  // decimals after the point (0..MaxPrecision)
	Transpose bool // corners in columns, edges in rows
	Labels    bool // plain style: print axis labels around the matrix
}

// DefaultFormat returns the historical output format: two decimals,
// corners in rows, no labels.
func DefaultFormat() Format {
	return Format{Precision: DefaultPrecision}
}

// Validate reports ErrBadFormat for out-of-range precision.
func (f Format) Validate() error {
	if f.Precision < 0 || f.Precision > MaxPrecision {
		return fmt.Errorf("render: precision %d (want 0..%d): %w", f.Precision, MaxPrecision, ErrBadFormat)
	}

	return nil
}

// number formats v with a leading space in place of a '+' sign, or n/a for NaN.
func (f Format) number(v float64) string {
	if math.IsNaN(v) {
		return NotApplicable
	}

	return fmt.Sprintf("% .*f", f.Precision, v)
}

// Banner returns the run header printed once before the tables.
func Banner(f Format) string {
	axes := "Number of corners in rows, number of edges in columns"
	if f.Transpose {
		axes = "Number of corners in columns, number of edges in rows"
	}

	return "--------------------------------------------------------------\n" +
		"  ###  Table sizes (MB) for different pruning value ideas  ###  \n" +
		"       " + axes + "\n" +
		"--------------------------------------------------------------\n"
}
