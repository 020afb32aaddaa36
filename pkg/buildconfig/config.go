// Package buildconfig decodes and validates the on-disk Config.toml and
// Presets.toml a plugin author ships alongside its source, and derives the
// identifiers (VST3 class ids, AU FourCCs, bundle ids) cmd/plugbuild needs
// to emit a format's bundle layout. It mirrors plugin.Info/plugin.Descriptor
// in shape but exists purely as build-time metadata — nothing here is
// reachable from the render path.
package buildconfig

import (
	"fmt"

	"github.com/soundbridge/soundbridge/internal/errs"
)

// Category is a plugin's host-facing classification, driving both its VST3
// base category string and its AU component type.
type Category string

const (
	CategoryEffect     Category = "effect"
	CategoryInstrument Category = "instrument"
	CategoryMidiEffect Category = "midi_effect"
	CategoryGenerator  Category = "generator"
)

func (c Category) valid() bool {
	switch c {
	case CategoryEffect, CategoryInstrument, CategoryMidiEffect, CategoryGenerator:
		return true
	}
	return false
}

// VST3Category returns the base category string VST3 hosts group plugins
// under.
func (c Category) VST3Category() string {
	switch c {
	case CategoryInstrument:
		return "Instrument"
	case CategoryGenerator:
		return "Generator"
	default:
		return "Fx"
	}
}

// AUComponentType returns the four-character AU component type code for
// this category, as a plain 4-byte string suitable for au.NewFourCharCode.
func (c Category) AUComponentType() string {
	switch c {
	case CategoryInstrument:
		return "aumu"
	case CategoryMidiEffect:
		return "aumi"
	case CategoryGenerator:
		return "augn"
	default:
		return "aufx"
	}
}

// AcceptsMIDI reports whether this category's plugins take MIDI input.
func (c Category) AcceptsMIDI() bool {
	return c == CategoryInstrument || c == CategoryMidiEffect
}

// Subcategory refines Category with the vocabulary VST3 and AU both draw
// tag/subcategory strings from. Not every subcategory has an AU tag; those
// that don't are dropped by AUTags rather than rejected by Validate, since
// AU simply has a smaller vocabulary than VST3.
type Subcategory string

const (
	SubcategoryAnalyzer    Subcategory = "analyzer"
	SubcategoryBass        Subcategory = "bass"
	SubcategoryChannelStrip Subcategory = "channel_strip"
	SubcategoryDelay       Subcategory = "delay"
	SubcategoryDistortion  Subcategory = "distortion"
	SubcategoryDrums       Subcategory = "drums"
	SubcategoryDynamics    Subcategory = "dynamics"
	SubcategoryEQ          Subcategory = "eq"
	SubcategoryFilter      Subcategory = "filter"
	SubcategoryGenerator   Subcategory = "generator"
	SubcategoryGuitar      Subcategory = "guitar"
	SubcategoryMastering   Subcategory = "mastering"
	SubcategoryMicrophone  Subcategory = "microphone"
	SubcategoryModulation  Subcategory = "modulation"
	SubcategoryNetwork     Subcategory = "network"
	SubcategoryPitchShift  Subcategory = "pitch_shift"
	SubcategoryRestoration Subcategory = "restoration"
	SubcategoryReverb      Subcategory = "reverb"
	SubcategorySpatial     Subcategory = "spatial"
	SubcategorySurround    Subcategory = "surround"
	SubcategoryTools       Subcategory = "tools"
	SubcategoryVocals      Subcategory = "vocals"
	SubcategoryDrum        Subcategory = "drum"
	SubcategoryExternal    Subcategory = "external"
	SubcategoryPiano       Subcategory = "piano"
	SubcategorySampler     Subcategory = "sampler"
	SubcategorySynth       Subcategory = "synth"
	SubcategoryMono        Subcategory = "mono"
	SubcategoryStereo      Subcategory = "stereo"
	SubcategoryAmbisonics  Subcategory = "ambisonics"
	SubcategoryUpDownMix   Subcategory = "up_down_mix"
	SubcategoryOnlyRealTime Subcategory = "only_realtime"
	SubcategoryOnlyOffline Subcategory = "only_offline"
	SubcategoryNoOffline   Subcategory = "no_offline"
)

var vst3Subcategory = map[Subcategory]string{
	SubcategoryAnalyzer:     "Analyzer",
	SubcategoryBass:         "Bass",
	SubcategoryChannelStrip: "Channel Strip",
	SubcategoryDelay:        "Delay",
	SubcategoryDistortion:   "Distortion",
	SubcategoryDrums:        "Drums",
	SubcategoryDynamics:     "Dynamics",
	SubcategoryEQ:           "EQ",
	SubcategoryFilter:       "Filter",
	SubcategoryGenerator:    "Generator",
	SubcategoryGuitar:       "Guitar",
	SubcategoryMastering:    "Mastering",
	SubcategoryMicrophone:   "Microphone",
	SubcategoryModulation:   "Modulation",
	SubcategoryNetwork:      "Network",
	SubcategoryPitchShift:   "Pitch Shift",
	SubcategoryRestoration:  "Restoration",
	SubcategoryReverb:       "Reverb",
	SubcategorySpatial:      "Spatial",
	SubcategorySurround:     "Surround",
	SubcategoryTools:        "Tools",
	SubcategoryVocals:       "Vocals",
	SubcategoryDrum:         "Drum",
	SubcategoryExternal:     "External",
	SubcategoryPiano:        "Piano",
	SubcategorySampler:      "Sampler",
	SubcategorySynth:        "Synth",
	SubcategoryMono:         "Mono",
	SubcategoryStereo:       "Stereo",
	SubcategoryAmbisonics:   "Ambisonics",
	SubcategoryUpDownMix:    "Up-Downmix",
	SubcategoryOnlyRealTime: "OnlyRT",
	SubcategoryOnlyOffline:  "OnlyOfflineProcess",
	SubcategoryNoOffline:    "NoOfflineProcess",
}

var auTag = map[Subcategory]string{
	SubcategoryAnalyzer:    "Analyzer",
	SubcategoryDelay:       "Delay",
	SubcategoryDistortion:  "Distortion",
	SubcategoryDynamics:    "Dynamics",
	SubcategoryEQ:          "EQ",
	SubcategoryFilter:      "Filter",
	SubcategoryMastering:   "Mastering",
	SubcategoryModulation:  "Modulation",
	SubcategoryPitchShift:  "Pitch Shift",
	SubcategoryRestoration: "Restoration",
	SubcategoryReverb:      "Reverb",
	SubcategoryDrum:        "Drums",
	SubcategorySampler:     "Sampler",
	SubcategorySynth:       "Synth",
	SubcategoryPiano:       "Piano",
	SubcategoryGenerator:   "Generator",
}

// Config is the format-agnostic plugin identity decoded from Config.toml,
// mirroring plugin.Info's fields plus the build-time-only identifiers
// (codes, ids, editor flag) a running plugin never needs to carry itself.
type Config struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Vendor  string `toml:"vendor"`
	URL     string `toml:"url"`
	Email   string `toml:"email"`

	Category      Category      `toml:"category"`
	Subcategories []Subcategory `toml:"subcategories"`

	ManufacturerCode string `toml:"manufacturer_code"`
	PluginCode       string `toml:"plugin_code"`

	HasEditor bool `toml:"has_editor"`

	SysExOutputSlots int `toml:"sysex_output_slots"`
	SysExSlotBytes   int `toml:"sysex_slot_bytes"`
}

// Validate checks the fields cmd/plugbuild depends on to derive stable
// identifiers and a legal bundle: a non-empty id and name, 4-ASCII-byte
// manufacturer/plugin codes, a known category, and a subcategory list drawn
// from the closed vocabulary above. The id's reverse-DNS shape is not
// checked.
func (c Config) Validate() error {
	if c.ID == "" {
		return &errs.ConfigurationError{Reason: "id must not be empty"}
	}
	if c.Name == "" {
		return &errs.ConfigurationError{Reason: "name must not be empty"}
	}
	if !isFourASCII(c.ManufacturerCode) {
		return &errs.ConfigurationError{Reason: fmt.Sprintf("manufacturer_code %q must be exactly 4 ASCII bytes", c.ManufacturerCode)}
	}
	if !isFourASCII(c.PluginCode) {
		return &errs.ConfigurationError{Reason: fmt.Sprintf("plugin_code %q must be exactly 4 ASCII bytes", c.PluginCode)}
	}
	if !c.Category.valid() {
		return &errs.ConfigurationError{Reason: fmt.Sprintf("unknown category %q", c.Category)}
	}
	for _, sub := range c.Subcategories {
		if _, ok := vst3Subcategory[sub]; !ok {
			return &errs.ConfigurationError{Reason: fmt.Sprintf("unknown subcategory %q", sub)}
		}
	}
	return nil
}

func isFourASCII(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// VST3Subcategories joins the category's VST3 base string with every
// subcategory's VST3 string, pipe-separated, e.g. "Fx|Dynamics|EQ".
func (c Config) VST3Subcategories() string {
	out := c.Category.VST3Category()
	for _, sub := range c.Subcategories {
		out += "|" + vst3Subcategory[sub]
	}
	return out
}

// AUTags returns the AU tag strings for every subcategory that has one,
// skipping those that don't (AU's vocabulary is a strict subset of VST3's).
func (c Config) AUTags() []string {
	var tags []string
	for _, sub := range c.Subcategories {
		if tag, ok := auTag[sub]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}
