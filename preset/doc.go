// Package preset holds the catalogue of historical table-size runs.
//
// The catalogue is compiled into the binary (presets.yaml) and decoded with
// yaml.v3. Each preset is a list of sections; a section is one estimate
// grid (mode, shape, offset, bytes per entry, optional window).
//
// ⚙️ Usage:
//
//	cat, err := preset.Load()
//	p, err := cat.Lookup(preset.DefaultPreset)
//	results, err := p.Run(ctx)
//	for _, r := range results {
//	  // r.Title, r.Table
//	}
package preset
