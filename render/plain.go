// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Plain prints a bracketed matrix like a numpy array:
//
//	[[ 0.00  0.00]
//	 [ 0.00  0.00]]
//
// With Sheet.Labeled, a header line of column names and a column of row
// names are printed instead of the brackets.
type Plain struct{}

// Render writes the title, the matrix and a trailing blank line.
func (Plain) Render(w io.Writer, s Sheet) error {
	bw := bufio.NewWriter(w)
	if s.Title != "" {
		bw.WriteString(s.Title)
		bw.WriteByte('\n')
	}

	rows := s.rows()
	width := 0
	for _, row := range rows {
		for _, v := range row {
			width = max(width, runewidth.StringWidth(v))
		}
	}

	if s.Labeled {
		writeLabeled(bw, s, rows, width)
	} else {
		writeBracketed(bw, rows, width)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func writeBracketed(bw *bufio.Writer, rows [][]string, width int) {
	bw.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			bw.WriteString("\n ")
		}
		bw.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(padLeft(v, width))
		}
		bw.WriteByte(']')
	}
	bw.WriteString("]\n")
}

func writeLabeled(bw *bufio.Writer, s Sheet, rows [][]string, width int) {
	lw := runewidth.StringWidth(s.Corner)
	for _, n := range s.RowNames {
		lw = max(lw, runewidth.StringWidth(n))
	}
	for _, n := range s.ColNames {
		width = max(width, runewidth.StringWidth(n))
	}

	bw.WriteString(runewidth.FillRight(s.Corner, lw))
	for _, n := range s.ColNames {
		bw.WriteString("  ")
		bw.WriteString(padLeft(n, width))
	}
	bw.WriteByte('\n')
	for i, row := range rows {
		bw.WriteString(runewidth.FillRight(s.RowNames[i], lw))
		for _, v := range row {
			bw.WriteString("  ")
			bw.WriteString(padLeft(v, width))
		}
		bw.WriteByte('\n')
	}
}

// padLeft right-aligns v to width display cells.
func padLeft(v string, width int) string {
	if pad := width - runewidth.StringWidth(v); pad > 0 {
		return strings.Repeat(" ", pad) + v
	}

	return v
}
