// Package state provides plugin state save/load: a framework-internal blob
// layout keyed on stable parameter string ids, not hashed numeric ids, so
// the on-disk format survives a plugin's parameter set being reordered or
// extended across versions.
package state

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/soundbridge/soundbridge/internal/errs"
	"github.com/soundbridge/soundbridge/pkg/param"
)

const (
	magic          = "SNDBRG1"
	formatVersion  = uint32(1)
)

// CustomSaveFunc lets a plugin append bytes beyond the parameter block.
type CustomSaveFunc func(w io.Writer) error

// CustomLoadFunc lets a plugin consume the bytes its CustomSaveFunc wrote.
type CustomLoadFunc func(r io.Reader) error

// Manager saves and loads a parameter registry's values, plus an optional
// custom trailer, as an opaque blob.
type Manager struct {
	registry   *param.Registry
	customSave CustomSaveFunc
	customLoad CustomLoadFunc
}

// NewManager creates a Manager bound to registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{registry: registry}
}

// SetCustomSaveFunc registers the function used to append custom state.
func (m *Manager) SetCustomSaveFunc(fn CustomSaveFunc) { m.customSave = fn }

// SetCustomLoadFunc registers the function used to consume custom state.
func (m *Manager) SetCustomLoadFunc(fn CustomLoadFunc) { m.customLoad = fn }

// Save writes every parameter's normalized value, keyed by its stable
// string id, followed by an optional custom trailer.
func (m *Manager) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, formatVersion); err != nil {
		return err
	}

	all := m.registry.All()
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(all))); err != nil {
		return err
	}
	for _, p := range all {
		info := p.Info()
		if err := writeString(bw, info.StringID); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, p.Normalized()); err != nil {
			return err
		}
	}

	hasCustom := uint32(0)
	if m.customSave != nil {
		hasCustom = 1
	}
	if err := binary.Write(bw, binary.LittleEndian, hasCustom); err != nil {
		return err
	}
	if m.customSave != nil {
		if err := m.customSave(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a blob produced by Save, setting each parameter whose stable
// string id is found in the registry and leaving unknown ids (forward
// compatibility) and parameters absent from the blob (backward
// compatibility) untouched. Returns a *errs.StateError wrapping the
// underlying failure on any deserialization problem, without having
// mutated any parameter for the failing entry onward.
func (m *Manager) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	header := make([]byte, len(magic))
	if _, err := io.ReadFull(br, header); err != nil {
		return &errs.StateError{Reason: fmt.Sprintf("reading header: %v", err)}
	}
	if string(header) != magic {
		return &errs.StateError{Reason: "unrecognized magic header"}
	}

	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return &errs.StateError{Reason: fmt.Sprintf("reading version: %v", err)}
	}
	if version > formatVersion {
		return &errs.StateError{Reason: fmt.Sprintf("state version %d is newer than supported version %d", version, formatVersion)}
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return &errs.StateError{Reason: fmt.Sprintf("reading parameter count: %v", err)}
	}

	for i := uint32(0); i < count; i++ {
		stringID, err := readString(br)
		if err != nil {
			return &errs.StateError{Reason: fmt.Sprintf("reading parameter %d id: %v", i, err)}
		}
		var value float64
		if err := binary.Read(br, binary.LittleEndian, &value); err != nil {
			return &errs.StateError{Reason: fmt.Sprintf("reading parameter %d value: %v", i, err)}
		}
		if p := findByStringID(m.registry, stringID); p != nil {
			p.SetNormalized(value)
		}
	}

	var hasCustom uint32
	if err := binary.Read(br, binary.LittleEndian, &hasCustom); err != nil {
		return &errs.StateError{Reason: fmt.Sprintf("reading custom-state marker: %v", err)}
	}
	if hasCustom != 0 && m.customLoad != nil {
		if err := m.customLoad(br); err != nil {
			return &errs.StateError{Reason: fmt.Sprintf("custom state: %v", err)}
		}
	}
	return nil
}

func findByStringID(registry *param.Registry, stringID string) *param.Parameter {
	for _, p := range registry.All() {
		if p.Info().StringID == stringID {
			return p
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
