package buildconfig

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDecodeAndValidate(t *testing.T) {
	data := []byte(`
id = "com.soundbridge.examples.gain"
name = "Simple Gain"
version = "1.0.0"
vendor = "SoundBridge Examples"
manufacturer_code = "Sbdg"
plugin_code = "gain"
category = "effect"
subcategories = ["dynamics", "tools"]
`)
	var cfg Config
	require.NoError(t, toml.Unmarshal(data, &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Fx|Dynamics|Tools", cfg.VST3Subcategories())
	assert.Equal(t, []string{"Dynamics"}, cfg.AUTags())
}

func TestConfigValidateRejectsBadCodes(t *testing.T) {
	cfg := Config{ID: "x", Name: "x", ManufacturerCode: "abc", PluginCode: "abcd", Category: CategoryEffect}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsUnknownCategory(t *testing.T) {
	cfg := Config{ID: "x", Name: "x", ManufacturerCode: "abcd", PluginCode: "abcd", Category: "bogus"}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsUnknownSubcategory(t *testing.T) {
	cfg := Config{
		ID: "x", Name: "x", ManufacturerCode: "abcd", PluginCode: "abcd", Category: CategoryEffect,
		Subcategories: []Subcategory{"not-a-real-one"},
	}
	assert.Error(t, cfg.Validate())
}

func TestClassIDStableAndDistinctFromController(t *testing.T) {
	cfg := Config{ID: "com.soundbridge.examples.gain"}
	a := cfg.ClassID()
	b := cfg.ClassID()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, cfg.ControllerClassID())
}

func TestPresetFileValidate(t *testing.T) {
	f := PresetFile{Presets: []PresetEntry{
		{Name: "Default", Values: map[string]float64{"gain": 0.5}},
	}}
	require.NoError(t, f.Validate())

	dup := PresetFile{Presets: []PresetEntry{
		{Name: "Default"}, {Name: "Default"},
	}}
	assert.Error(t, dup.Validate())

	outOfRange := PresetFile{Presets: []PresetEntry{
		{Name: "Bad", Values: map[string]float64{"gain": 1.5}},
	}}
	assert.Error(t, outOfRange.Validate())
}
