// Command plugbuild reads a plugin's Config.toml and Presets.toml,
// validates them, and emits the bundle layout(s) its target formats need:
// directory trees with placeholder Info.plist/PkgInfo content and the
// identifiers (VST3 class ids, AU FourCCs, bundle ids) it derived. It does
// not invoke a compiler or a platform codesigning tool — the compiled
// plugin binary is expected to land inside the emitted tree separately.
package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/soundbridge/soundbridge/internal/obslog"
	"github.com/soundbridge/soundbridge/pkg/buildconfig"
)

func main() {
	var (
		configPath  string
		presetsPath string
		outDir      string
		formats     []string
		verbose     bool
	)

	pflag.StringVar(&configPath, "config", "Config.toml", "path to Config.toml")
	pflag.StringVar(&presetsPath, "presets", "Presets.toml", "path to Presets.toml (optional)")
	pflag.StringVar(&outDir, "out", "build", "output directory for emitted bundles")
	pflag.StringSliceVar(&formats, "format", []string{"vst3", "au", "auv3"}, "bundle formats to emit: vst3, au, auv3")
	pflag.BoolVar(&verbose, "verbose", false, "enable diagnostic logging")
	pflag.Parse()

	obslog.SetEnabled(verbose)

	if err := run(configPath, presetsPath, outDir, formats); err != nil {
		obslog.Error("build failed", err)
		fmt.Fprintln(os.Stderr, "plugbuild:", err)
		os.Exit(1)
	}
}

func run(configPath, presetsPath, outDir string, formats []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", configPath, err)
	}

	if _, err := os.Stat(presetsPath); err == nil {
		presets, err := loadPresets(presetsPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", presetsPath, err)
		}
		if err := presets.Validate(); err != nil {
			return fmt.Errorf("validating %s: %w", presetsPath, err)
		}
		obslog.Info("loaded presets", "count", len(presets.Presets))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, format := range formats {
		layout, err := emit(format, outDir, cfg)
		if err != nil {
			return fmt.Errorf("emitting %s bundle: %w", format, err)
		}
		report(layout)
	}
	return nil
}

func loadConfig(path string) (buildconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return buildconfig.Config{}, err
	}
	var cfg buildconfig.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return buildconfig.Config{}, err
	}
	return cfg, nil
}

func loadPresets(path string) (buildconfig.PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return buildconfig.PresetFile{}, err
	}
	var presets buildconfig.PresetFile
	if err := toml.Unmarshal(data, &presets); err != nil {
		return buildconfig.PresetFile{}, err
	}
	return presets, nil
}

func emit(format, outDir string, cfg buildconfig.Config) (buildconfig.BundleLayout, error) {
	switch format {
	case "vst3":
		return buildconfig.WriteVST3Bundle(outDir, cfg)
	case "au":
		return buildconfig.WriteComponentBundle(outDir, cfg)
	case "auv3":
		return buildconfig.WriteAppExtensionBundle(outDir, cfg)
	default:
		return buildconfig.BundleLayout{}, fmt.Errorf("unknown format %q (want vst3, au, or auv3)", format)
	}
}

func report(layout buildconfig.BundleLayout) {
	fmt.Printf("%-5s %s\n", layout.Format, layout.RootDir)
	if layout.Format == "vst3" {
		fmt.Printf("      class id: %x\n", layout.ClassID)
	}
	if layout.AUConfig != "" {
		fmt.Printf("      au manufacturer/subtype: %s\n", layout.AUConfig)
	}
	fmt.Printf("      bundle id: %s\n", layout.BundleID)
}
