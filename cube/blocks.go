// SPDX-License-Identifier: MIT

package cube

import "sort"

// Block names a set of pieces solved together. Only the counts are kept:
// every block with the same counts has the same table size.
type Block struct {
	Name    string // human-readable name, e.g. "DLB_222"
	Corners int    // number of corner pieces in the block
	Edges   int    // number of edge pieces in the block
}

// Valid reports whether the block fits on a physical cube.
func (b Block) Valid() bool {
	return Corner.Valid(b.Corners) && Edge.Valid(b.Edges)
}

// knownBlocks are the blocks the solver scripts build tables for.
var knownBlocks = []Block{
	{Name: "DLB_222", Corners: 1, Edges: 3},
	{Name: "DB_123", Corners: 2, Edges: 3},
	{Name: "RouxFB", Corners: 2, Edges: 3},
	{Name: "DL_F_sq", Corners: 1, Edges: 2},
	{Name: "DL_B_sq", Corners: 1, Edges: 2},
	{Name: "DL_223", Corners: 2, Edges: 5},
	{Name: "222_w_extra_corners", Corners: 3, Edges: 3},
	{Name: "2_squares", Corners: 2, Edges: 4},
	{Name: "Corners", Corners: CornerSlots, Edges: 0},
}

// Blocks returns a copy of the known blocks ordered by (Corners, Edges, Name).
func Blocks() []Block {
	out := make([]Block, len(knownBlocks))
	copy(out, knownBlocks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Corners != out[j].Corners {
			return out[i].Corners < out[j].Corners
		}
		if out[i].Edges != out[j].Edges {
			return out[i].Edges < out[j].Edges
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// LookupBlock finds a known block by exact name.
func LookupBlock(name string) (Block, bool) {
	for _, b := range knownBlocks {
		if b.Name == name {
			return b, true
		}
	}

	return Block{}, false
}
