package buffer

import (
	"testing"

	"github.com/soundbridge/soundbridge/pkg/bus"
)

func TestConversionRoundTripPreservesValue(t *testing.T) {
	cfg, err := bus.Cache(bus.EffectStereo())
	if err != nil {
		t.Fatalf("Cache: %v", err)
	}
	cb := NewConversionBuffers(cfg, 128)

	src := [][]float64{{0.5, -0.25, 1.0}, {0.1, 0.2, 0.3}}
	scratch := cb.MainIn(3)
	DowncastF64ToF32(scratch, src)

	dst := [][]float64{make([]float64, 3), make([]float64, 3)}
	UpcastF32ToF64(dst, scratch)

	for ch := range src {
		for i := range src[ch] {
			got, want := dst[ch][i], src[ch][i]
			if diff := got - want; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("channel %d frame %d: got %v want %v", ch, i, got, want)
			}
		}
	}
}

func TestConversionBuffersSizedPerAuxBus(t *testing.T) {
	cfg, err := bus.Cache(bus.EffectStereoWithSidechain())
	if err != nil {
		t.Fatalf("Cache: %v", err)
	}
	cb := NewConversionBuffers(cfg, 64)

	if got := cb.AuxIn(0, 32); len(got) != 2 {
		t.Fatalf("got %d aux in channels, want 2", len(got))
	}
	if got := cb.AuxIn(5, 32); got != nil {
		t.Fatal("out-of-range aux bus index should return nil")
	}
}
