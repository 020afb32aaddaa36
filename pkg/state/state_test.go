package state

import (
	"bytes"
	"io"
	"testing"

	"github.com/soundbridge/soundbridge/pkg/param"
)

func newRegistry(t *testing.T) *param.Registry {
	t.Helper()
	reg := param.NewRegistry()
	gain := param.New("gain", "Gain", param.LinearMapper{Min: -60, Max: 12}, param.DefaultFormatter(param.UnitDecibels, -60), 0, 0)
	mix := param.New("mix", "Mix", param.LinearMapper{Min: 0, Max: 1}, param.DefaultFormatter(param.UnitPercent, -60), 1, 0)
	if err := reg.Add(gain, mix); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return reg
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	gain, _ := reg.ByID(param.New("gain", "Gain", param.LinearMapper{Min: -60, Max: 12}, nil, 0, 0).ID())
	gain.SetNormalized(0.3)

	var buf bytes.Buffer
	m := NewManager(reg)
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reg2 := newRegistry(t)
	m2 := NewManager(reg2)
	if err := m2.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	gain2, _ := reg2.ByID(gain.ID())
	if got := gain2.Normalized(); got != 0.3 {
		t.Fatalf("got %v, want 0.3", got)
	}
}

func TestLoadIgnoresUnknownStringIDs(t *testing.T) {
	reg := param.NewRegistry()
	extra := param.New("extra", "Extra", param.LinearMapper{Min: 0, Max: 1}, nil, 0.5, 0)
	if err := reg.Add(extra); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buf bytes.Buffer
	if err := NewManager(reg).Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reg2 := newRegistry(t) // doesn't know "extra"
	if err := NewManager(reg2).Load(&buf); err != nil {
		t.Fatalf("Load should tolerate unknown ids for forward compat: %v", err)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	reg := newRegistry(t)
	err := NewManager(reg).Load(bytes.NewReader([]byte("not a state blob")))
	if err == nil {
		t.Fatal("expected an error for a malformed blob")
	}
}

func TestCustomStateRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	m := NewManager(reg)
	m.SetCustomSaveFunc(func(w io.Writer) error {
		_, err := w.Write([]byte("custom-payload"))
		return err
	})

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var gotPayload []byte
	reg2 := newRegistry(t)
	m2 := NewManager(reg2)
	m2.SetCustomLoadFunc(func(r io.Reader) error {
		b := make([]byte, len("custom-payload"))
		n, err := r.Read(b)
		gotPayload = b[:n]
		return err
	})
	if err := m2.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(gotPayload) != "custom-payload" {
		t.Fatalf("got %q, want %q", gotPayload, "custom-payload")
	}
}
