// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/prunesize/estimate"
	"github.com/katalvlaran/prunesize/grid"
)

// Sheet is a labeled grid of already formatted cells.
type Sheet struct {
	Title    string              // text printed above the grid (may span lines)
	Corner   string              // top-left header, e.g. `nc \ ne`
	RowNames []string            // one per row
	ColNames []string            // one per column
	Cells    *grid.Dense[string] // formatted values
	Missing  *grid.Dense[bool]   // true where the value is n/a
	Labeled  bool                // plain style prints labels when true
}

// FromTable formats t in megabytes under f.
// Errors:
//   - ErrBadFormat when f is invalid.
func FromTable(title string, t *estimate.Table, f Format) (Sheet, error) {
	if err := f.Validate(); err != nil {
		return Sheet{}, err
	}

	s := Sheet{
		Title:    title,
		Corner:   `nc \ ne`,
		RowNames: itoas(t.Corners),
		ColNames: itoas(t.Edges),
		Cells:    grid.Map(t.Megabytes(), func(_, _ int, v float64) string { return f.number(v) }),
		Missing:  grid.Map(t.Cells, func(_, _ int, c estimate.Cell) bool { return !c.Valid() }),
		Labeled:  f.Labels,
	}
	if f.Transpose {
		s.Corner = `ne \ nc`
		s.RowNames, s.ColNames = s.ColNames, s.RowNames
		s.Cells, s.Missing = s.Cells.Transpose(), s.Missing.Transpose()
	}

	return s, nil
}

// FromBlocks formats one row per block and one column per mode.
// Transpose is ignored; blocks are always rows and labels are always printed.
func FromBlocks(title string, sizes []estimate.BlockSize, f Format) (Sheet, error) {
	if err := f.Validate(); err != nil {
		return Sheet{}, err
	}
	modes := estimate.Modes()
	cells, err := grid.New[string](len(sizes), len(modes))
	if err != nil {
		return Sheet{}, err
	}
	missing, err := grid.New[bool](len(sizes), len(modes))
	if err != nil {
		return Sheet{}, err
	}

	s := Sheet{
		Title:    title,
		Corner:   "block",
		RowNames: make([]string, len(sizes)),
		ColNames: make([]string, len(modes)),
		Cells:    cells,
		Missing:  missing,
		Labeled:  true,
	}
	for j, m := range modes {
		s.ColNames[j] = m.String()
	}
	for i, bs := range sizes {
		s.RowNames[i] = fmt.Sprintf("%s (%dc/%de)", bs.Block.Name, bs.Block.Corners, bs.Block.Edges)
		for j, m := range modes {
			c, err := bs.Cell(m)
			if err != nil {
				return Sheet{}, err
			}
			_ = cells.Set(i, j, f.number(c.Megabytes()))
			_ = missing.Set(i, j, !c.Valid())
		}
	}

	return s, nil
}

func itoas(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}

	return out
}

// rows returns the cell texts as [][]string (row-major copy).
func (s Sheet) rows() [][]string {
	out := make([][]string, s.Cells.Rows())
	for i := range out {
		out[i], _ = s.Cells.Row(i)
	}

	return out
}

// missing reports whether (i, j) is n/a; out-of-range reads as false.
func (s Sheet) missing(i, j int) bool {
	if s.Missing == nil {
		return false
	}
	v, _ := s.Missing.At(i, j)

	return v
}
