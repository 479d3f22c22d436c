// SPDX-License-Identifier: MIT

package estimate

import (
	"fmt"

	"github.com/katalvlaran/prunesize/cube"
)

// BlockSize is the size of one named block's table under every mode.
type BlockSize struct {
	Block cube.Block
	Cells []Cell // one per mode, in Modes() order
}

// BlockSizes sizes block b under every mode in Modes() order.
// Options: WithBytesPerEntry.
// Errors:
//   - ErrInvalidRange (wrapped with the block name) when b does not fit a cube.
func BlockSizes(b cube.Block, opts ...Option) (BlockSize, error) {
	o := gatherOptions(opts...)
	modes := Modes()
	res := BlockSize{Block: b, Cells: make([]Cell, len(modes))}
	for i, m := range modes {
		c, err := sizeCell(m, b.Corners, b.Edges, o.bytesPerEntry)
		if err != nil {
			return BlockSize{}, fmt.Errorf("estimate: block %s: %w", b.Name, err)
		}
		res.Cells[i] = c
	}

	return res, nil
}

// Cell returns the size under mode m.
func (s BlockSize) Cell(m Mode) (Cell, error) {
	if !m.Valid() || int(m) >= len(s.Cells) {
		return Cell{}, fmt.Errorf("estimate: %s: %w", m, ErrUnknownMode)
	}

	return s.Cells[m], nil
}
