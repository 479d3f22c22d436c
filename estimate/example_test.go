package estimate_test

import (
	"fmt"

	"github.com/katalvlaran/prunesize/estimate"
)

// ExampleCellSize sizes an exact table for a block of two corners and two edges.
//
//	corners: 8·3 · 7·3   = 504
//	edges:   12·2 · 11·2 = 528
//	total:   504 · 528   = 266112 bytes
func ExampleCellSize() {
	c, err := estimate.CellSize(estimate.Exact, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s bytes ≈ %.2f MB\n", c.Bytes, c.Megabytes())
	// Output:
	// 266112 bytes ≈ 0.27 MB
}

// ExampleEstimate walks the corner axis of a small layout grid.
func ExampleEstimate() {
	tbl, err := estimate.Estimate(estimate.Layout, 4, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, nc := range tbl.Corners {
		c, _ := tbl.At(i, 0)
		fmt.Printf("nc=%d: %s\n", nc, c.Bytes)
	}
	// Output:
	// nc=0: 1
	// nc=1: 8
	// nc=2: 28
	// nc=3: 56
}
