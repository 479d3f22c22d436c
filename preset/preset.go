// SPDX-License-Identifier: MIT

package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/prunesize/estimate"
	"gopkg.in/yaml.v3"
)

// DefaultPreset is run when no preset is named.
const DefaultPreset = "zero-based"

//go:embed presets.yaml
var builtin []byte

// Window selects the sub-grid [Corners:, Edges:] of a section.
type Window struct {
	Corners int `yaml:"corners"`
	Edges   int `yaml:"edges"`
}

// Section is one estimate grid.
// Offset and BytesPerEntry fall back to the preset's values when nil.
type Section struct {
	Mode          estimate.Mode `yaml:"mode"`
	Corners       int           `yaml:"corners"`
	Edges         int           `yaml:"edges"`
	Offset        *int          `yaml:"offset,omitempty"`
	BytesPerEntry *int          `yaml:"bytes_per_entry,omitempty"`
	Window        *Window       `yaml:"window,omitempty"`
}

// Preset is a named list of sections sharing defaults.
type Preset struct {
	Name          string    `yaml:"name"`
	Description   string    `yaml:"description"`
	Offset        int       `yaml:"offset"`
	BytesPerEntry int       `yaml:"bytes_per_entry"`
	Sections      []Section `yaml:"sections"`
}

// Catalogue is the decoded presets.yaml.
type Catalogue struct {
	Presets []Preset `yaml:"presets"`
}

// Load decodes the built-in catalogue.
func Load() (Catalogue, error) {
	return Parse(builtin)
}

// Parse decodes and validates catalogue YAML.
// Errors:
//   - yaml errors (wrapped), estimate.ErrUnknownMode for bad mode names,
//     ErrInvalidPreset for structural problems.
func Parse(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("preset: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalogue{}, err
	}

	return c, nil
}

func (c Catalogue) validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("preset: empty catalogue: %w", ErrInvalidPreset)
	}
	seen := make(map[string]bool, len(c.Presets))
	var errs []error
	for _, p := range c.Presets {
		if p.Name == "" || seen[p.Name] {
			errs = append(errs, fmt.Errorf("preset: name %q missing or duplicated: %w", p.Name, ErrInvalidPreset))
		}
		seen[p.Name] = true
		if err := p.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (p Preset) validate() error {
	if len(p.Sections) == 0 {
		return fmt.Errorf("preset %s: no sections: %w", p.Name, ErrInvalidPreset)
	}
	if p.Offset < 0 || p.BytesPerEntry < 0 {
		return fmt.Errorf("preset %s: negative offset or bytes_per_entry: %w", p.Name, ErrInvalidPreset)
	}
	for i, s := range p.Sections {
		switch {
		case s.Corners <= 0 || s.Edges <= 0:
			return fmt.Errorf("preset %s: section %d: shape %d×%d: %w", p.Name, i, s.Corners, s.Edges, ErrInvalidPreset)
		case s.Offset != nil && *s.Offset < 0:
			return fmt.Errorf("preset %s: section %d: offset %d: %w", p.Name, i, *s.Offset, ErrInvalidPreset)
		case s.BytesPerEntry != nil && *s.BytesPerEntry <= 0:
			return fmt.Errorf("preset %s: section %d: bytes_per_entry %d: %w", p.Name, i, *s.BytesPerEntry, ErrInvalidPreset)
		case s.Window != nil && (s.Window.Corners < 0 || s.Window.Corners >= s.Corners ||
			s.Window.Edges < 0 || s.Window.Edges >= s.Edges):
			return fmt.Errorf("preset %s: section %d: window outside %d×%d: %w", p.Name, i, s.Corners, s.Edges, ErrInvalidPreset)
		}
	}

	return nil
}

// Names lists preset names in catalogue order.
func (c Catalogue) Names() []string {
	out := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Name
	}

	return out
}

// Lookup finds a preset by exact name.
func (c Catalogue) Lookup(name string) (Preset, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("preset: %q (have %s): %w", name, strings.Join(c.Names(), ", "), ErrUnknownPreset)
}

// offset resolves the section offset against the preset default.
func (s Section) offset(p Preset) int {
	if s.Offset != nil {
		return *s.Offset
	}

	return p.Offset
}

// bytesPerEntry resolves the entry size; 0 everywhere means the estimate default.
func (s Section) bytesPerEntry(p Preset) int {
	switch {
	case s.BytesPerEntry != nil:
		return *s.BytesPerEntry
	case p.BytesPerEntry > 0:
		return p.BytesPerEntry
	default:
		return estimate.DefaultBytesPerEntry
	}
}

// Compute estimates the section grid and applies its window.
func (s Section) Compute(p Preset) (*estimate.Table, error) {
	tbl, err := estimate.Estimate(s.Mode, s.Corners, s.Edges,
		estimate.WithOffset(s.offset(p)),
		estimate.WithBytesPerEntry(s.bytesPerEntry(p)),
	)
	if err != nil {
		return nil, err
	}
	if s.Window == nil {
		return tbl, nil
	}

	return tbl.Window(s.Window.Corners, s.Window.Edges)
}

// Describe returns the header text for a computed section: the mode
// description, plus the covered range when a window is applied and the
// entry size when it is not one byte.
func (s Section) Describe(tbl *estimate.Table) string {
	var b strings.Builder
	b.WriteString(s.Mode.Description())
	if s.Window != nil && len(tbl.Corners) > 0 && len(tbl.Edges) > 0 {
		fmt.Fprintf(&b, "\n(for %d to %d corners and %d to %d edges)",
			tbl.Corners[0], tbl.Corners[len(tbl.Corners)-1],
			tbl.Edges[0], tbl.Edges[len(tbl.Edges)-1])
	}
	if tbl.BytesPerEntry != estimate.DefaultBytesPerEntry {
		fmt.Fprintf(&b, "\n(%d bytes per entry)", tbl.BytesPerEntry)
	}

	return b.String()
}
