package buildconfig

import "github.com/soundbridge/soundbridge/internal/errs"

// PresetEntry is one factory preset's decode from Presets.toml: a display
// name plus a sparse map of parameter id (string, matching param.Builder's
// id) to normalized value. Parameters left out of Values keep their
// declared default.
type PresetEntry struct {
	Name   string             `toml:"name"`
	Values map[string]float64 `toml:"values"`
}

// PresetFile is the top-level shape of Presets.toml: an ordered list of
// presets, index 0 becoming a plugin's default factory preset.
type PresetFile struct {
	Presets []PresetEntry `toml:"presets"`
}

// Validate checks every preset has a non-empty name and every normalized
// value in its Values map falls in [0, 1], the same range param.Parameter
// enforces at runtime.
func (f PresetFile) Validate() error {
	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		if p.Name == "" {
			return &errs.ConfigurationError{Reason: "preset name must not be empty"}
		}
		if seen[p.Name] {
			return &errs.ConfigurationError{Reason: "duplicate preset name " + p.Name}
		}
		seen[p.Name] = true
		for id, v := range p.Values {
			if v < 0 || v > 1 {
				return &errs.ConfigurationError{Reason: "preset " + p.Name + " parameter " + id + " value out of [0,1] range"}
			}
		}
	}
	return nil
}
