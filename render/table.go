// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Dracula-inspired palette shared by the boxed table
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorText    = lipgloss.Color("#F8F8F2")
	ColorMuted   = lipgloss.Color("#6272A4")
	ColorBorder  = lipgloss.Color("#44475A")
	ColorInfo    = lipgloss.Color("#8BE9FD")
)

var (
	// TitleStyle renders the mode description above the table.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	// HeaderStyle renders the column header row.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)

	// LabelStyle renders the row-name column.
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)

	// ValueStyle renders defined sizes.
	ValueStyle = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1).Align(lipgloss.Right)

	// MissingStyle renders n/a cells.
	MissingStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true).Padding(0, 1).Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
)

// Table prints a boxed lipgloss table; the first column holds row names.
type Table struct{}

// Render writes the styled title and the table.
func (Table) Render(w io.Writer, s Sheet) error {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(TitleStyle.Render(s.Title))
		b.WriteByte('\n')
	}

	headers := append([]string{s.Corner}, s.ColNames...)
	rows := s.rows()
	for i := range rows {
		rows[i] = append([]string{s.RowNames[i]}, trimAll(rows[i])...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return LabelStyle
			case s.missing(row, col-1):
				return MissingStyle
			default:
				return ValueStyle
			}
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func trimAll(vs []string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strings.TrimSpace(v)
	}

	return out
}
