// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const (
	// DefaultGlamourTheme picks dark/light from the terminal background.
	DefaultGlamourTheme = "auto"

	// DefaultGlamourWrap is wide enough for the full 9×13 grid.
	DefaultGlamourWrap = 160
)

// Glamour renders the markdown form of a sheet for a terminal.
//   - Theme: a glamour standard style ("dark", "light", "notty", "ascii"...)
//     or "auto".
//   - WordWrap: render width in cells.
type Glamour struct {
	Theme    string
	WordWrap int
}

// Render builds the markdown table and writes glamour's rendering of it.
func (g Glamour) Render(w io.Writer, s Sheet) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(g.WordWrap)}
	if g.Theme == "" || g.Theme == DefaultGlamourTheme {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(g.Theme))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("render: glamour: %w", err)
	}
	out, err := r.Render(markdown(s))
	if err != nil {
		return fmt.Errorf("render: glamour: %w", err)
	}
	_, err = io.WriteString(w, out)

	return err
}
