package process

import (
	"testing"

	"github.com/soundbridge/soundbridge/pkg/param"
)

func TestPassThroughCopiesCommonChannels(t *testing.T) {
	in := NewBuffer([][]float32{{1, 2, 3}, {4, 5, 6}})
	outCh := [][]float32{make([]float32, 3), make([]float32, 3)}
	out := NewBuffer(outCh)

	reg := param.NewRegistry()
	ctx := NewContext(in, out, AuxiliaryBuffers[float32]{}, AuxiliaryBuffers[float32]{}, 48000, Transport{}, reg)
	ctx.PassThrough()

	want := [][]float32{{1, 2, 3}, {4, 5, 6}}
	for ch := range want {
		for i := range want[ch] {
			if outCh[ch][i] != want[ch][i] {
				t.Fatalf("channel %d frame %d: got %v want %v", ch, i, outCh[ch][i], want[ch][i])
			}
		}
	}
}

func TestNumSamplesFallsBackToOutput(t *testing.T) {
	out := NewBuffer([][]float32{make([]float32, 128)})
	reg := param.NewRegistry()
	ctx := NewContext(Buffer[float32]{}, out, AuxiliaryBuffers[float32]{}, AuxiliaryBuffers[float32]{}, 48000, Transport{}, reg)
	if ctx.NumSamples() != 128 {
		t.Fatalf("got %d, want 128", ctx.NumSamples())
	}
}

func TestParamLooksUpByID(t *testing.T) {
	reg := param.NewRegistry()
	p := param.New("gain", "Gain", param.LinearMapper{Min: 0, Max: 1}, param.DefaultFormatter(param.UnitGeneric, -60), 0.5, 0)
	if err := reg.Add(p); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ctx := NewContext(Buffer[float32]{}, Buffer[float32]{}, AuxiliaryBuffers[float32]{}, AuxiliaryBuffers[float32]{}, 48000, Transport{}, reg)
	if got := ctx.Param(p.ID()); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
	if got := ctx.Param(0xdeadbeef); got != 0 {
		t.Fatalf("unknown id: got %v, want 0", got)
	}
}
