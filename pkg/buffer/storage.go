// Package buffer provides the render-time pointer storage and
// sample-format conversion scratch space that let the adapter present host
// sample memory to a processor without any allocation inside a render call.
package buffer

import (
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/bus"
)

// Sample is the set of sample types the framework moves without copying:
// float32 (the VST3/AU default) and float64 (opt-in double precision).
type Sample interface {
	~float32 | ~float64
}

// PointerStorage is a pre-sized container of raw per-channel pointers for
// one sample type, built once at prepare time from a bus.CachedConfig and
// reused for every render call via Clear and the Set*Channel methods — no
// slice ever grows after prepare.
type PointerStorage[S Sample] struct {
	mainIn     []unsafe.Pointer
	mainOut    []unsafe.Pointer
	auxIn      [][]unsafe.Pointer
	auxOut     [][]unsafe.Pointer
	frameCap   int

	internalOut    [][]S // present iff cfg.NeedsInternalOutputBuffers()
	usingInternal  bool

	// Pre-allocated view slices, reused by *Slices so render calls never
	// allocate the outer [][]S header.
	mainInView  [][]S
	mainOutView [][]S
	auxInViews  [][][]S
	auxOutViews [][][]S
}

// NewPointerStorage allocates a PointerStorage with exact capacities for
// cfg, including an internal output buffer pool when the config is an
// instrument shape that may receive null output pointers from the host.
func NewPointerStorage[S Sample](cfg bus.CachedConfig, maxFrames int) *PointerStorage[S] {
	ps := &PointerStorage[S]{
		mainIn:   make([]unsafe.Pointer, cfg.MainInChannels),
		mainOut:  make([]unsafe.Pointer, cfg.MainOutChannels),
		frameCap: maxFrames,
	}
	ps.auxIn = make([][]unsafe.Pointer, len(cfg.AuxInChannels))
	for i, ch := range cfg.AuxInChannels {
		ps.auxIn[i] = make([]unsafe.Pointer, ch)
	}
	ps.auxOut = make([][]unsafe.Pointer, len(cfg.AuxOutChannels))
	for i, ch := range cfg.AuxOutChannels {
		ps.auxOut[i] = make([]unsafe.Pointer, ch)
	}
	if cfg.NeedsInternalOutputBuffers() {
		ps.internalOut = make([][]S, cfg.MainOutChannels)
		for i := range ps.internalOut {
			ps.internalOut[i] = make([]S, maxFrames)
		}
	}
	ps.mainInView = make([][]S, cfg.MainInChannels)
	ps.mainOutView = make([][]S, cfg.MainOutChannels)
	ps.auxInViews = make([][][]S, len(cfg.AuxInChannels))
	for i, ch := range cfg.AuxInChannels {
		ps.auxInViews[i] = make([][]S, ch)
	}
	ps.auxOutViews = make([][][]S, len(cfg.AuxOutChannels))
	for i, ch := range cfg.AuxOutChannels {
		ps.auxOutViews[i] = make([][]S, ch)
	}
	return ps
}

// Clear sets every channel pointer slot to nil without freeing backing
// storage. Its cost is linear in the channel count fixed at prepare time
// and it never allocates; called once at the top of every render call.
func (ps *PointerStorage[S]) Clear() {
	for i := range ps.mainIn {
		ps.mainIn[i] = nil
	}
	for i := range ps.mainOut {
		ps.mainOut[i] = nil
	}
	for _, bus := range ps.auxIn {
		for i := range bus {
			bus[i] = nil
		}
	}
	for _, bus := range ps.auxOut {
		for i := range bus {
			bus[i] = nil
		}
	}
	ps.usingInternal = false
}

// SetMainInChannel records the host-provided pointer for main input channel
// ch.
func (ps *PointerStorage[S]) SetMainInChannel(ch int, p unsafe.Pointer) {
	if ch >= 0 && ch < len(ps.mainIn) {
		ps.mainIn[ch] = p
	}
}

// SetMainOutChannel records the host-provided pointer for main output
// channel ch, or nil if the host passed a null pointer for that channel.
func (ps *PointerStorage[S]) SetMainOutChannel(ch int, p unsafe.Pointer) {
	if ch >= 0 && ch < len(ps.mainOut) {
		ps.mainOut[ch] = p
	}
}

// SetAuxInChannel records a pointer for an aux input bus/channel pair.
func (ps *PointerStorage[S]) SetAuxInChannel(busIdx, ch int, p unsafe.Pointer) {
	if busIdx >= 0 && busIdx < len(ps.auxIn) && ch >= 0 && ch < len(ps.auxIn[busIdx]) {
		ps.auxIn[busIdx][ch] = p
	}
}

// SetAuxOutChannel records a pointer for an aux output bus/channel pair.
func (ps *PointerStorage[S]) SetAuxOutChannel(busIdx, ch int, p unsafe.Pointer) {
	if busIdx >= 0 && busIdx < len(ps.auxOut) && ch >= 0 && ch < len(ps.auxOut[busIdx]) {
		ps.auxOut[busIdx][ch] = p
	}
}

// ResolveMainOutputs substitutes the internal output buffer pool for any
// main output channel whose host pointer is nil, but only when every main
// output channel is nil — per spec's documented mixed-null policy, partial
// null/non-null is left to the caller (the wrapper) to define, and this
// method leaves such a mix untouched.
func (ps *PointerStorage[S]) ResolveMainOutputs() {
	if ps.internalOut == nil {
		return
	}
	allNil := true
	for _, p := range ps.mainOut {
		if p != nil {
			allNil = false
			break
		}
	}
	if !allNil {
		return
	}
	ps.usingInternal = true
	for i := range ps.mainOut {
		ps.mainOut[i] = unsafe.Pointer(&ps.internalOut[i][0])
	}
}

// MainInSlices materializes typed read views over the current main input
// pointers, each sliced to n frames. The returned [][]S reuses a
// pre-allocated outer slice; only the unsafe.Slice header construction
// happens per call, which the Go runtime does not heap-allocate.
func (ps *PointerStorage[S]) MainInSlices(n int) [][]S {
	fillSlices[S](ps.mainInView, ps.mainIn, n)
	return ps.mainInView
}

// MainOutSlices materializes typed write views over the current main
// output pointers (post-ResolveMainOutputs), sliced to n frames.
func (ps *PointerStorage[S]) MainOutSlices(n int) [][]S {
	fillSlices[S](ps.mainOutView, ps.mainOut, n)
	return ps.mainOutView
}

// AuxInSlices materializes typed views for aux input bus busIdx.
func (ps *PointerStorage[S]) AuxInSlices(busIdx, n int) [][]S {
	if busIdx < 0 || busIdx >= len(ps.auxIn) {
		return nil
	}
	fillSlices[S](ps.auxInViews[busIdx], ps.auxIn[busIdx], n)
	return ps.auxInViews[busIdx]
}

// AuxOutSlices materializes typed views for aux output bus busIdx.
func (ps *PointerStorage[S]) AuxOutSlices(busIdx, n int) [][]S {
	if busIdx < 0 || busIdx >= len(ps.auxOut) {
		return nil
	}
	fillSlices[S](ps.auxOutViews[busIdx], ps.auxOut[busIdx], n)
	return ps.auxOutViews[busIdx]
}

// UsingInternalOutputBuffers reports whether the most recent
// ResolveMainOutputs call substituted the internal pool.
func (ps *PointerStorage[S]) UsingInternalOutputBuffers() bool { return ps.usingInternal }

// AuxBusCount returns the number of aux input buses if input is true, else
// the number of aux output buses.
func (ps *PointerStorage[S]) AuxBusCount(input bool) int {
	if input {
		return len(ps.auxIn)
	}
	return len(ps.auxOut)
}

func fillSlices[S Sample](view [][]S, ptrs []unsafe.Pointer, n int) {
	for i, p := range ptrs {
		if p == nil || n <= 0 {
			view[i] = nil
			continue
		}
		view[i] = unsafe.Slice((*S)(p), n)
	}
}
