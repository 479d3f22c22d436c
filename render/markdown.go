// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"
)

// Markdown prints a GitHub-flavored table with right-aligned value columns.
type Markdown struct{}

// Render writes the title as a paragraph followed by the table.
func (Markdown) Render(w io.Writer, s Sheet) error {
	_, err := io.WriteString(w, markdown(s))

	return err
}

func markdown(s Sheet) string {
	var b strings.Builder
	if s.Title != "" {
		// Hard line breaks keep multi-line titles intact.
		b.WriteString(strings.ReplaceAll(s.Title, "\n", "  \n"))
		b.WriteString("\n\n")
	}

	b.WriteString("| " + escapeCell(s.Corner))
	for _, n := range s.ColNames {
		b.WriteString(" | " + escapeCell(n))
	}
	b.WriteString(" |\n|---")
	for range s.ColNames {
		b.WriteString("|---:")
	}
	b.WriteString("|\n")

	for i, row := range s.rows() {
		b.WriteString("| " + escapeCell(s.RowNames[i]))
		for _, v := range row {
			b.WriteString(" | " + strings.TrimSpace(v))
		}
		b.WriteString(" |\n")
	}
	b.WriteByte('\n')

	return b.String()
}

// escapeCell protects pipes inside table cells.
func escapeCell(v string) string {
	return strings.ReplaceAll(v, "|", `\|`)
}
