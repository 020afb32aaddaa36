package buildconfig

import (
	"github.com/google/uuid"

	"github.com/soundbridge/soundbridge/pkg/au"
)

// classIDNamespace matches plugin.classIDNamespace so a build-time-derived
// class id and the in-process id plugin.Info.ClassID computes for the same
// Config.ID always agree.
var classIDNamespace = uuid.MustParse("6f1f9c9e-6b2c-4a9a-9b8e-2f6f8f8f9a10")

// ClassID derives the stable VST3 component class id for this Config, by
// the same UUIDv5 scheme plugin.Info.ClassID uses at runtime.
func (c Config) ClassID() [16]byte {
	u := uuid.NewSHA1(classIDNamespace, []byte(c.ID))
	var out [16]byte
	copy(out[:], u[:])
	return out
}

// ControllerClassID derives the companion edit-controller class id.
func (c Config) ControllerClassID() [16]byte {
	u := uuid.NewSHA1(classIDNamespace, []byte(c.ID+".controller"))
	var out [16]byte
	copy(out[:], u[:])
	return out
}

// AUIdentity derives the au.Config this plugin's manufacturer/plugin codes
// and category describe, for the AUv2/AUv3 bundle layouts.
func (c Config) AUIdentity() (au.Config, error) {
	manufacturer, err := au.NewFourCharCode(c.ManufacturerCode)
	if err != nil {
		return au.Config{}, err
	}
	subtype, err := au.NewFourCharCode(c.PluginCode)
	if err != nil {
		return au.Config{}, err
	}
	componentType, err := au.NewFourCharCode(c.Category.AUComponentType())
	if err != nil {
		return au.Config{}, err
	}
	return au.Config{
		Manufacturer:  manufacturer,
		Subtype:       subtype,
		ComponentType: componentType,
	}, nil
}

// BundleID returns the reverse-DNS bundle identifier hosts key the AUv3
// extension and app wrapper by, derived from Config.ID rather than
// duplicated as a separate TOML field.
func (c Config) BundleID() string {
	return c.ID
}
