package buffer

import "github.com/soundbridge/soundbridge/pkg/bus"

// ConversionBuffers holds parallel float32 scratch sized to
// channels×maxFrames for every main and aux bus, used when the host's
// sample type differs from the processor's. Allocated once at prepare
// time; copy-in/copy-out during render touches no heap.
type ConversionBuffers struct {
	mainIn   [][]float32
	mainOut  [][]float32
	auxIn    [][][]float32
	auxOut   [][][]float32
	maxFrames int
}

// NewConversionBuffers allocates scratch for cfg sized to maxFrames.
func NewConversionBuffers(cfg bus.CachedConfig, maxFrames int) *ConversionBuffers {
	cb := &ConversionBuffers{maxFrames: maxFrames}
	cb.mainIn = allocChannels(cfg.MainInChannels, maxFrames)
	cb.mainOut = allocChannels(cfg.MainOutChannels, maxFrames)
	cb.auxIn = make([][][]float32, len(cfg.AuxInChannels))
	for i, ch := range cfg.AuxInChannels {
		cb.auxIn[i] = allocChannels(ch, maxFrames)
	}
	cb.auxOut = make([][][]float32, len(cfg.AuxOutChannels))
	for i, ch := range cfg.AuxOutChannels {
		cb.auxOut[i] = allocChannels(ch, maxFrames)
	}
	return cb
}

func allocChannels(channels, maxFrames int) [][]float32 {
	out := make([][]float32, channels)
	for i := range out {
		out[i] = make([]float32, maxFrames)
	}
	return out
}

// MainIn returns the main-input scratch sliced to n frames.
func (cb *ConversionBuffers) MainIn(n int) [][]float32 { return sliceAll(cb.mainIn, n) }

// MainOut returns the main-output scratch sliced to n frames.
func (cb *ConversionBuffers) MainOut(n int) [][]float32 { return sliceAll(cb.mainOut, n) }

// AuxIn returns aux-input-bus busIdx's scratch sliced to n frames.
func (cb *ConversionBuffers) AuxIn(busIdx, n int) [][]float32 {
	if busIdx < 0 || busIdx >= len(cb.auxIn) {
		return nil
	}
	return sliceAll(cb.auxIn[busIdx], n)
}

// AuxOut returns aux-output-bus busIdx's scratch sliced to n frames.
func (cb *ConversionBuffers) AuxOut(busIdx, n int) [][]float32 {
	if busIdx < 0 || busIdx >= len(cb.auxOut) {
		return nil
	}
	return sliceAll(cb.auxOut[busIdx], n)
}

// sliceAll re-slices every channel in place to n frames (the full
// maxFrames capacity when n <= 0 or n exceeds it) and returns chans itself,
// so no render-time call allocates.
func sliceAll(chans [][]float32, n int) [][]float32 {
	for i, c := range chans {
		m := cap(c)
		if n > 0 && n < m {
			m = n
		}
		chans[i] = c[:m]
	}
	return chans
}

// DowncastF64ToF32 copies float64 host channels into float32 scratch.
func DowncastF64ToF32(dst [][]float32, src [][]float64) {
	for ch := range dst {
		if ch >= len(src) {
			continue
		}
		s, d := src[ch], dst[ch]
		n := len(d)
		if len(s) < n {
			n = len(s)
		}
		for i := 0; i < n; i++ {
			d[i] = float32(s[i])
		}
	}
}

// UpcastF32ToF64 copies float32 scratch back into float64 host channels.
func UpcastF32ToF64(dst [][]float64, src [][]float32) {
	for ch := range dst {
		if ch >= len(src) {
			continue
		}
		s, d := src[ch], dst[ch]
		n := len(d)
		if len(s) < n {
			n = len(s)
		}
		for i := 0; i < n; i++ {
			d[i] = float64(s[i])
		}
	}
}
