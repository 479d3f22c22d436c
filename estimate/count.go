// SPDX-License-Identifier: MIT

package estimate

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/prunesize/cube"
	"gonum.org/v1/gonum/stat/combin"
)

// validateCounts rejects piece counts that do not fit on a physical cube.
func validateCounts(nc, ne int) error {
	if !cube.Corner.Valid(nc) {
		return fmt.Errorf("estimate: %d corners (want 0..%d): %w", nc, cube.CornerSlots, ErrInvalidRange)
	}
	if !cube.Edge.Valid(ne) {
		return fmt.Errorf("estimate: %d edges (want 0..%d): %w", ne, cube.EdgeSlots, ErrInvalidRange)
	}

	return nil
}

// placements returns prod_{i<n}(slots-i): ordered placements of n pieces.
func placements(k cube.Kind, n int) *big.Int {
	return big.NewInt(int64(combin.NumPermutations(k.Slots(), n)))
}

// twists returns orientations^n.
func twists(k cube.Kind, n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(k.Orientations())), big.NewInt(int64(n)), nil)
}

// relabelings returns nc!·ne!, the number of ways to relabel the block pieces.
func relabelings(nc, ne int) *big.Int {
	f := big.NewInt(int64(combin.NumPermutations(nc, nc)))

	return f.Mul(f, big.NewInt(int64(combin.NumPermutations(ne, ne))))
}

// quoExact returns a/b, or ErrInexactDivision when b does not divide a.
func quoExact(a, b *big.Int) (*big.Int, error) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("estimate: %s / %s: %w", a, b, ErrInexactDivision)
	}

	return q, nil
}

// exactEntries = placements·twists for both piece kinds.
func exactEntries(nc, ne int) *big.Int {
	n := new(big.Int).Mul(placements(cube.Corner, nc), twists(cube.Corner, nc))
	n.Mul(n, placements(cube.Edge, ne))

	return n.Mul(n, twists(cube.Edge, ne))
}

// EntryCount returns the number of table entries for nc corners and ne edges
// under mode m.
//
// Formulas:
//   - Exact:       ∏_{c<nc}(8-c)·3 · ∏_{e<ne}(12-e)·2
//   - Permutation: ∏_{c<nc}(8-c) · ∏_{e<ne}(12-e)
//   - Orientation: Exact / (nc!·ne!)
//   - Layout:      Permutation / (nc!·ne!)
//   - Split:       Exact(nc,0) + Exact(0,ne); a part with no pieces is absent,
//     and the empty block still has its single solved entry.
//
// Errors:
//   - ErrUnknownMode for an invalid m.
//   - ErrInvalidRange when nc ∉ [0,8] or ne ∉ [0,12].
//   - ErrInexactDivision if a normalisation would truncate (never for valid input).
//
// Complexity: O(nc+ne) big-integer multiplications.
func EntryCount(m Mode, nc, ne int) (*big.Int, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("estimate: %s: %w", m, ErrUnknownMode)
	}
	if err := validateCounts(nc, ne); err != nil {
		return nil, err
	}

	switch m {
	case Exact:
		return exactEntries(nc, ne), nil
	case Permutation:
		return new(big.Int).Mul(placements(cube.Corner, nc), placements(cube.Edge, ne)), nil
	case Orientation:
		return quoExact(exactEntries(nc, ne), relabelings(nc, ne))
	case Layout:
		perm := new(big.Int).Mul(placements(cube.Corner, nc), placements(cube.Edge, ne))
		return quoExact(perm, relabelings(nc, ne))
	default: // Split
		if nc == 0 && ne == 0 {
			return big.NewInt(1), nil
		}
		total := new(big.Int)
		if nc > 0 {
			total.Add(total, exactEntries(nc, 0))
		}
		if ne > 0 {
			total.Add(total, exactEntries(0, ne))
		}

		return total, nil
	}
}

// CellSize returns the sized Cell for (nc, ne) under mode m.
// Options: WithBytesPerEntry (WithOffset is ignored here).
// The returned Cell carries the same error in Cell.Err.
func CellSize(m Mode, nc, ne int, opts ...Option) (Cell, error) {
	o := gatherOptions(opts...)

	return sizeCell(m, nc, ne, o.bytesPerEntry)
}

// sizeCell is CellSize with resolved options.
func sizeCell(m Mode, nc, ne int, bytesPerEntry int64) (Cell, error) {
	c := Cell{Corners: nc, Edges: ne}
	entries, err := EntryCount(m, nc, ne)
	if err != nil {
		c.Err = err
		return c, err
	}
	c.Entries = entries
	c.Bytes = new(big.Int).Mul(entries, big.NewInt(bytesPerEntry))

	return c, nil
}
