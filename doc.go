// Package prunesize estimates how much memory pruning tables need when a
// block-building cube solver looks up move-count lower bounds.
//
// 🚀 What is prunesize?
//
//	A small library and CLI that counts block states under several
//	equivalence ideas and prints the resulting table sizes in megabytes:
//		• Exact:       every (permutation, orientation) of the block pieces
//		• Permutation: placements only, orientation ignored
//		• Orientation: Exact with piece relabelings divided out
//		• Layout:      which slots are occupied
//		• Split:       separate corner and edge tables
//
// Under the hood, everything is organized under these subpackages:
//
//	cube/          — piece constants (8 corners ×3, 12 edges ×2) & named blocks
//	grid/          — generic row-major grid with safe accessors & windows
//	estimate/      — counting modes, per-cell sizes, grid estimation
//	render/        — plain, markdown, lipgloss and glamour output
//	preset/        — embedded catalogue of historical runs
//	cmd/prunesize/ — the command-line entry point
//
// Quick example:
//
//	tbl, _ := estimate.Estimate(estimate.Exact, 5, 6)
//	c, _ := tbl.Lookup(2, 2) // 266112 bytes ≈ 0.27 MB
//
//	go run github.com/katalvlaran/prunesize/cmd/prunesize
package prunesize
