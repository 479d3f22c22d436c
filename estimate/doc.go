// Package estimate sizes pruning tables for block-building cube solvers.
//
// 🚀 What does it compute?
//
//	For a block of nc corners and ne edges, a pruning table holds one entry
//	per distinguishable block state. How many states are "distinguishable"
//	depends on the pruning value the table stores:
//	  • Exact       — every (permutation, orientation) assignment
//	  • Permutation — placement only, orientation ignored
//	  • Orientation — Exact with the nc!·ne! piece relabelings divided out
//	  • Layout      — Permutation with the nc!·ne! relabelings divided out
//	  • Split       — separate corner and edge tables, sizes summed
//
// ✨ Key features:
//   - exact arithmetic in math/big: no cell can overflow
//   - per-cell errors: an out-of-range cell never aborts the grid
//   - functional options (WithOffset, WithBytesPerEntry)
//   - windows over computed grids (Table.Window), as in sizes[2:, 4:]
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/prunesize/estimate"
//
//	tbl, err := estimate.Estimate(estimate.Exact, 5, 6)
//	if err != nil {
//	  // ErrBadShape
//	}
//	mb := tbl.Megabytes() // *grid.Dense[float64], bytes / 1e6
//
// Orientation mode reproduces the historical formula as written: dividing
// the oriented permutation count by nc!·ne! gives C(8,nc)·3^nc·C(12,ne)·2^ne,
// the number of (position set, orientation) pairs. It is not claimed to be
// the size of a "solved orientation, free permutation" coordinate.
package estimate
