// SPDX-License-Identifier: MIT

package estimate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prunesize/grid"
)

// Table is a computed size grid for one mode.
//   - Rows are corner counts (Corners[i]), columns are edge counts (Edges[j]).
//   - Cells(i,j) holds the exact size or a per-cell error.
type Table struct {
	Mode          Mode
	BytesPerEntry int64
	Corners       []int             // piece count of each row
	Edges         []int             // piece count of each column
	Cells         *grid.Dense[Cell] // len(Corners) × len(Edges)
}

// Estimate computes an ncMax×neMax size grid for mode m.
// MAIN DESCRIPTION:
//   - Cell (i, j) sizes a block of i+offset corners and j+offset edges.
//
// Implementation:
//   - Stage 1: resolve options; validate mode, shape and offset.
//   - Stage 2: fill every cell in row-major order via sizeCell.
//
// Behavior highlights:
//   - Out-of-range cells (more than 8 corners or 12 edges) keep their
//     ErrInvalidRange in Cell.Err; the rest of the grid is still computed.
//     Table.Err joins those errors for a single report.
//
// Errors:
//   - ErrUnknownMode, ErrBadShape (ncMax<=0, neMax<=0, offset<0).
//
// Complexity:
//   - Time O(ncMax·neMax·(nc+ne)) big-int ops, Space O(ncMax·neMax).
func Estimate(m Mode, ncMax, neMax int, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if !m.Valid() {
		return nil, fmt.Errorf("estimate: %s: %w", m, ErrUnknownMode)
	}
	if ncMax <= 0 || neMax <= 0 {
		return nil, fmt.Errorf("estimate: %d×%d grid: %w", ncMax, neMax, ErrBadShape)
	}
	if o.offset < 0 {
		return nil, fmt.Errorf("estimate: offset %d: %w", o.offset, ErrBadShape)
	}

	cells, err := grid.New[Cell](ncMax, neMax)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", errors.Join(ErrBadShape, err))
	}
	t := &Table{
		Mode:          m,
		BytesPerEntry: o.bytesPerEntry,
		Corners:       axis(o.offset, ncMax),
		Edges:         axis(o.offset, neMax),
		Cells:         cells,
	}

	var i, j int
	for i = 0; i < ncMax; i++ {
		for j = 0; j < neMax; j++ {
			// Per-cell failures live in Cell.Err; they never abort the grid.
			c, _ := sizeCell(m, t.Corners[i], t.Edges[j], o.bytesPerEntry)
			if err = cells.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// axis returns [offset, offset+n).
func axis(offset, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = offset + i
	}

	return out
}

// Rows returns the number of corner rows.
func (t *Table) Rows() int { return t.Cells.Rows() }

// Cols returns the number of edge columns.
func (t *Table) Cols() int { return t.Cells.Cols() }

// At returns the cell at row i, column j (grid.ErrOutOfRange when invalid).
func (t *Table) At(i, j int) (Cell, error) { return t.Cells.At(i, j) }

// Lookup returns the cell covering nc corners and ne edges, if the table has one.
func (t *Table) Lookup(nc, ne int) (Cell, bool) {
	i, j := indexOf(t.Corners, nc), indexOf(t.Edges, ne)
	if i < 0 || j < 0 {
		return Cell{}, false
	}
	c, err := t.Cells.At(i, j)

	return c, err == nil
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}

	return -1
}

// Window returns the sub-table [r0:, c0:] with matching axis labels.
// Errors:
//   - ErrBadShape when r0/c0 do not fit the table.
func (t *Table) Window(r0, c0 int) (*Table, error) {
	cells, err := t.Cells.Window(r0, c0)
	if err != nil {
		return nil, fmt.Errorf("estimate: window [%d:, %d:]: %w", r0, c0, errors.Join(ErrBadShape, err))
	}

	return &Table{
		Mode:          t.Mode,
		BytesPerEntry: t.BytesPerEntry,
		Corners:       append([]int(nil), t.Corners[r0:]...),
		Edges:         append([]int(nil), t.Edges[c0:]...),
		Cells:         cells,
	}, nil
}

// Megabytes converts every cell to Bytes/1e6; invalid cells become NaN.
func (t *Table) Megabytes() *grid.Dense[float64] {
	return grid.Map(t.Cells, func(_, _ int, c Cell) float64 { return c.Megabytes() })
}

// Invalid returns the cells that carry an error, in row-major order.
func (t *Table) Invalid() []Cell {
	var out []Cell
	t.Cells.Do(func(_, _ int, c Cell) bool {
		if c.Err != nil {
			out = append(out, c)
		}
		return true
	})

	return out
}

// Err joins every per-cell error, or returns nil when all cells are valid.
func (t *Table) Err() error {
	bad := t.Invalid()
	if len(bad) == 0 {
		return nil
	}
	errs := make([]error, len(bad))
	for i, c := range bad {
		errs[i] = fmt.Errorf("cell (%d,%d): %w", c.Corners, c.Edges, c.Err)
	}

	return errors.Join(errs...)
}

// MaxBytes returns the largest valid cell; ok is false when none is valid.
func (t *Table) MaxBytes() (best Cell, ok bool) {
	t.Cells.Do(func(_, _ int, c Cell) bool {
		if c.Valid() && (!ok || c.Bytes.Cmp(best.Bytes) > 0) {
			best, ok = c, true
		}
		return true
	})

	return best, ok
}

// Fits reports whether every valid cell fits in a uint64 byte count.
func (t *Table) Fits() bool {
	fits := true
	t.Cells.Do(func(_, _ int, c Cell) bool {
		if c.Valid() && c.Bytes.BitLen() > 64 {
			fits = false
		}
		return fits
	})

	return fits
}
