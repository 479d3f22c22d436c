// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
)

// Style names an output style.
type Style string

const (
	StylePlain    Style = "plain"
	StyleMarkdown Style = "markdown"
	StyleTable    Style = "table"
	StyleGlamour  Style = "glamour"
)

// Styles returns every style in a stable order.
func Styles() []Style {
	return []Style{StylePlain, StyleMarkdown, StyleTable, StyleGlamour}
}

// ParseStyle resolves a case-insensitive style name.
func ParseStyle(name string) (Style, error) {
	n := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Styles() {
		if s == n {
			return s, nil
		}
	}

	return "", fmt.Errorf("render: style %q: %w", name, ErrUnknownStyle)
}

// Renderer writes a Sheet.
type Renderer interface {
	Render(w io.Writer, s Sheet) error
}

// New returns the renderer for style.
func New(style Style) (Renderer, error) {
	switch style {
	case StylePlain:
		return Plain{}, nil
	case StyleMarkdown:
		return Markdown{}, nil
	case StyleTable:
		return Table{}, nil
	case StyleGlamour:
		return Glamour{Theme: DefaultGlamourTheme, WordWrap: DefaultGlamourWrap}, nil
	default:
		return nil, fmt.Errorf("render: style %q: %w", style, ErrUnknownStyle)
	}
}
