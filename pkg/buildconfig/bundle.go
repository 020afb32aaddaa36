package buildconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// plistTemplate is a placeholder Info.plist body: real codesigning and
// binary embedding happen outside this tool (see cmd/plugbuild's package
// doc), so this only needs to carry the identifiers a host's bundle
// discovery reads before it ever loads the binary.
const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
	<key>CFBundleName</key>
	<string>%s</string>
	<key>CFBundleVersion</key>
	<string>%s</string>
	<key>CFBundleShortVersionString</key>
	<string>%s</string>
	<key>CFBundlePackageType</key>
	<string>%s</string>
</dict>
</plist>
`

// BundleLayout is the set of paths cmd/plugbuild created for one format,
// reported back to the caller alongside the identifiers it derived.
type BundleLayout struct {
	Format    string
	RootDir   string
	ClassID   [16]byte
	AUConfig  string
	BundleID  string
}

// WriteVST3Bundle emits a minimal .vst3 bundle tree under outDir:
// Contents/{Info.plist,PkgInfo,<platform>/}. It does not write a binary;
// the platform subdirectory is left empty for the actual compiled plugin
// to land in.
func WriteVST3Bundle(outDir string, c Config) (BundleLayout, error) {
	root := filepath.Join(outDir, c.Name+".vst3")
	contents := filepath.Join(root, "Contents")
	if err := os.MkdirAll(contents, 0o755); err != nil {
		return BundleLayout{}, err
	}
	if err := os.MkdirAll(filepath.Join(contents, "x86_64-linux"), 0o755); err != nil {
		return BundleLayout{}, err
	}
	plist := fmt.Sprintf(plistTemplate, c.BundleID(), c.Name, c.Version, c.Version, "BNDL")
	if err := os.WriteFile(filepath.Join(contents, "Info.plist"), []byte(plist), 0o644); err != nil {
		return BundleLayout{}, err
	}
	if err := os.WriteFile(filepath.Join(contents, "PkgInfo"), []byte("BNDL????"), 0o644); err != nil {
		return BundleLayout{}, err
	}
	return BundleLayout{Format: "vst3", RootDir: root, ClassID: c.ClassID(), BundleID: c.BundleID()}, nil
}

// WriteComponentBundle emits a minimal .component (AUv2) bundle tree:
// Contents/{Info.plist,PkgInfo,MacOS/}.
func WriteComponentBundle(outDir string, c Config) (BundleLayout, error) {
	root := filepath.Join(outDir, c.Name+".component")
	contents := filepath.Join(root, "Contents")
	if err := os.MkdirAll(filepath.Join(contents, "MacOS"), 0o755); err != nil {
		return BundleLayout{}, err
	}
	plist := fmt.Sprintf(plistTemplate, c.BundleID(), c.Name, c.Version, c.Version, "THNG")
	if err := os.WriteFile(filepath.Join(contents, "Info.plist"), []byte(plist), 0o644); err != nil {
		return BundleLayout{}, err
	}
	if err := os.WriteFile(filepath.Join(contents, "PkgInfo"), []byte("THNG????"), 0o644); err != nil {
		return BundleLayout{}, err
	}
	auCfg, err := c.AUIdentity()
	if err != nil {
		return BundleLayout{}, err
	}
	return BundleLayout{Format: "au", RootDir: root, BundleID: c.BundleID(), AUConfig: auCfg.Manufacturer.String() + "/" + auCfg.Subtype.String()}, nil
}

// WriteAppExtensionBundle emits a minimal .app wrapping a .appex (AUv3)
// bundle pair: <Name>.app/Contents/PlugIns/<Name>.appex/Contents/.
func WriteAppExtensionBundle(outDir string, c Config) (BundleLayout, error) {
	appRoot := filepath.Join(outDir, c.Name+".app")
	appContents := filepath.Join(appRoot, "Contents")
	if err := os.MkdirAll(appContents, 0o755); err != nil {
		return BundleLayout{}, err
	}
	appPlist := fmt.Sprintf(plistTemplate, c.BundleID(), c.Name, c.Version, c.Version, "APPL")
	if err := os.WriteFile(filepath.Join(appContents, "Info.plist"), []byte(appPlist), 0o644); err != nil {
		return BundleLayout{}, err
	}

	extRoot := filepath.Join(appContents, "PlugIns", c.Name+".appex")
	extContents := filepath.Join(extRoot, "Contents")
	if err := os.MkdirAll(extContents, 0o755); err != nil {
		return BundleLayout{}, err
	}
	extPlist := fmt.Sprintf(plistTemplate, c.BundleID()+".appex", c.Name+" AUv3", c.Version, c.Version, "XPC!")
	if err := os.WriteFile(filepath.Join(extContents, "Info.plist"), []byte(extPlist), 0o644); err != nil {
		return BundleLayout{}, err
	}

	auCfg, err := c.AUIdentity()
	if err != nil {
		return BundleLayout{}, err
	}
	return BundleLayout{Format: "auv3", RootDir: appRoot, BundleID: c.BundleID(), AUConfig: auCfg.Manufacturer.String() + "/" + auCfg.Subtype.String()}, nil
}
