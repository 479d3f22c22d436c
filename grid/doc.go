// Package grid provides a small generic, row-major, two-dimensional store
// used to hold per-cell results (byte counts, megabytes, labels).
//
// The grid package provides:
//
//   - Dense[T]: a flat row-major buffer with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - Window (copy of the lower-right sub-grid [r0:, c0:]) and Induced (copy
//     of explicit row/column index sets).
//   - Transpose, Map and a Do visitor with deterministic i→j order.
//
// Grids are tiny here (at most 9×13), so every operation copies freely.
package grid
