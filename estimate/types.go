// SPDX-License-Identifier: MIT

package estimate

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// BytesPerMegabyte is the decimal megabyte used for display (1e6 bytes).
const BytesPerMegabyte = 1_000_000

// Mode selects the equivalence relation used to count block states.
type Mode int

const (
	// Exact counts every distinct (permutation, orientation) assignment.
	Exact Mode = iota

	// Permutation counts piece placements, ignoring orientation.
	Permutation

	// Orientation is Exact divided by nc!·ne!.
	Orientation

	// Layout is Permutation divided by nc!·ne!: which slots are occupied.
	Layout

	// Split sizes a corner-only and an edge-only Exact table and sums them.
	Split
)

var modeNames = [...]string{
	Exact:       "exact",
	Permutation: "permutation",
	Orientation: "orientation",
	Layout:      "layout",
	Split:       "split",
}

var modeDescriptions = [...]string{
	Exact: "Exact pruning value : exact number of moves needed to solve the block",
	Permutation: "Permutation pruning value : number of moves needed to restore the block pieces\n" +
		"to their home positions in the solved permutation state, but they can be misoriented",
	Orientation: "Orientation pruning value : number of moves needed to restore the block pieces\n" +
		"to their home positions in the solved orientation, but they can be permuted",
	Layout: "Layout pruning value : number of moves needed to restore the block pieces\n" +
		"to their home positions but they can be permuted and misoriented",
	Split: "Split pruning value : max of two lookups in separate corner and edge tables,\n" +
		"each storing the exact number of moves needed to solve its pieces",
}

// Modes returns every known mode in display order.
func Modes() []Mode {
	return []Mode{Exact, Permutation, Orientation, Layout, Split}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m >= Exact && m <= Split }

// String returns the lower-case mode name, or "Mode(n)" for unknown values.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Description returns the header text printed above a table of this mode.
func (m Mode) Description() string {
	if !m.Valid() {
		return m.String()
	}

	return modeDescriptions[m]
}

// ParseMode resolves a case-insensitive mode name.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range modeNames {
		if s == n {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("estimate: mode %q: %w", name, ErrUnknownMode)
}

// MarshalText implements encoding.TextMarshaler (used by the YAML presets).
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("estimate: %s: %w", m, ErrUnknownMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Cell is the size of one (corners, edges) table.
//   - Entries and Bytes are exact; Bytes = Entries · bytes-per-entry.
//   - Err is non-nil (ErrInvalidRange, wrapped) when the counts are not
//     physical; Entries and Bytes are nil then.
type Cell struct {
	Corners int      // corner pieces in the block
	Edges   int      // edge pieces in the block
	Entries *big.Int // number of table entries
	Bytes   *big.Int // table size in bytes
	Err     error    // per-cell failure, nil when valid
}

// Valid reports whether the cell holds a defined size.
func (c Cell) Valid() bool { return c.Err == nil && c.Bytes != nil }

// Uint64 returns the byte count as uint64.
// Errors:
//   - the cell's own error when it is not Valid.
//   - ErrOverflow (value saturated to math.MaxUint64) when Bytes ≥ 2^64.
func (c Cell) Uint64() (uint64, error) {
	if !c.Valid() {
		if c.Err != nil {
			return 0, c.Err
		}

		return 0, fmt.Errorf("estimate: cell (%d,%d) is empty: %w", c.Corners, c.Edges, ErrInvalidRange)
	}
	if !c.Bytes.IsUint64() {
		return math.MaxUint64, fmt.Errorf("estimate: cell (%d,%d) = %s bytes: %w", c.Corners, c.Edges, c.Bytes, ErrOverflow)
	}

	return c.Bytes.Uint64(), nil
}

// Megabytes returns Bytes / 1e6, or NaN for an invalid cell.
func (c Cell) Megabytes() float64 {
	if !c.Valid() {
		return math.NaN()
	}
	mb := new(big.Float).SetInt(c.Bytes)
	mb.Quo(mb, big.NewFloat(BytesPerMegabyte))
	f, _ := mb.Float64()

	return f
}

// String renders "nc=…,ne=…: N bytes" or the cell error.
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("nc=%d,ne=%d: n/a", c.Corners, c.Edges)
	}

	return fmt.Sprintf("nc=%d,ne=%d: %s bytes", c.Corners, c.Edges, c.Bytes)
}
