// Package cube holds the physical constants of a standard 3×3×3 cube that
// the table-size estimator counts against, plus the named blocks used by
// the block-building solver.
//
// 🚀 What is a block?
//
//	A block is a subset of corner and edge pieces solved together (a 2×2×2,
//	a 2×2×3, the first Roux block...). Only its piece counts matter when
//	sizing a pruning table, so Block carries counts, not positions.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/prunesize/cube"
//
//	b, ok := cube.LookupBlock("DL_223")
//	fmt.Println(b.Corners, b.Edges) // 2 5
package cube
