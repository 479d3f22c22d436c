// SPDX-License-Identifier: MIT

package cube

// Piece-type constants. They describe the physical puzzle and MUST NOT change.
const (
	// CornerSlots is the number of corner home positions.
	CornerSlots = 8

	// CornerOrientations is the number of twists a corner can take.
	CornerOrientations = 3

	// EdgeSlots is the number of edge home positions.
	EdgeSlots = 12

	// EdgeOrientations is the number of flips an edge can take.
	EdgeOrientations = 2
)

// Kind distinguishes corner pieces from edge pieces.
type Kind int

const (
	// Corner pieces: 8 slots, 3 orientations.
	Corner Kind = iota

	// Edge pieces: 12 slots, 2 orientations.
	Edge
)

// String returns "corner" or "edge".
func (k Kind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return "unknown"
	}
}

// Slots returns the number of home positions for pieces of kind k.
// Unknown kinds report 0.
func (k Kind) Slots() int {
	switch k {
	case Corner:
		return CornerSlots
	case Edge:
		return EdgeSlots
	default:
		return 0
	}
}

// Orientations returns the number of orientation states for pieces of kind k.
// Unknown kinds report 0.
func (k Kind) Orientations() int {
	switch k {
	case Corner:
		return CornerOrientations
	case Edge:
		return EdgeOrientations
	default:
		return 0
	}
}

// Valid reports whether n pieces of kind k fit on the cube (0 ≤ n ≤ Slots).
func (k Kind) Valid(n int) bool {
	return n >= 0 && n <= k.Slots()
}
