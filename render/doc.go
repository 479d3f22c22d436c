// Package render turns estimated size tables into text.
//
// Four styles share one intermediate Sheet (labels + formatted cells):
//   - plain:    numpy-like bracketed matrix, the historical script output
//   - markdown: GitHub-flavored table
//   - table:    boxed lipgloss table with styled headers
//   - glamour:  the markdown table rendered for a terminal by glamour
//
// Formatting is a local Format value passed to each call; nothing in this
// package holds print state.
package render
