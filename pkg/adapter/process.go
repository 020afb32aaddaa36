package adapter

import (
	"github.com/soundbridge/soundbridge/internal/errs"
	"github.com/soundbridge/soundbridge/pkg/buffer"
	"github.com/soundbridge/soundbridge/pkg/midi"
	"github.com/soundbridge/soundbridge/pkg/process"
)

// ParameterEvent is one automation event from the host's parameter-change
// queue. SampleOffset and DurationSamples are accepted but not used for
// sub-block splitting (spec §4.5 documented compromise): the parameter's
// own smoother interpolates toward Value once set.
type ParameterEvent struct {
	ID              uint32
	Value           float64 // normalized target
	SampleOffset    int32
	DurationSamples int32
}

// Storage32 returns the render-time f32 pointer storage, or nil if
// Unprepared. The wrapper fills it with host channel pointers before
// calling Process32.
func (a *Adapter) Storage32() *buffer.PointerStorage[float32] {
	if s := a.current.Load(); s != nil {
		return s.storage32
	}
	return nil
}

// Storage64 returns the render-time f64 pointer storage, or nil if
// Unprepared or the processor does not support double precision.
func (a *Adapter) Storage64() *buffer.PointerStorage[float64] {
	if s := a.current.Load(); s != nil {
		return s.storage64
	}
	return nil
}

// MIDIInput returns the buffer the wrapper pushes incoming events into
// before calling ProcessMIDI, or nil if Unprepared.
func (a *Adapter) MIDIInput() *midi.Buffer {
	if s := a.current.Load(); s != nil {
		return s.midiIn
	}
	return nil
}

// MIDIOutput returns the buffer the wrapper drains after ProcessMIDI, or
// nil if Unprepared.
func (a *Adapter) MIDIOutput() *midi.Buffer {
	if s := a.current.Load(); s != nil {
		return s.midiOut
	}
	return nil
}

// CCTable returns the adapter's MIDI-CC → parameter mapping table, or nil
// if Unprepared.
func (a *Adapter) CCTable() *midi.CCTable {
	if s := a.current.Load(); s != nil {
		return s.ccTable
	}
	return nil
}

// ApplyParameterEvents sets each event's target normalized value; the
// parameter's own smoother interpolates sample-by-sample as the processor
// reads it.
func (a *Adapter) ApplyParameterEvents(events []ParameterEvent) {
	registry := a.descriptor.Parameters()
	for _, ev := range events {
		if p, ok := registry.ByID(ev.ID); ok {
			p.SetNormalized(ev.Value)
		}
	}
}

// Process32 renders one block through the processor's f32 path. numFrames
// must be ≤ the prepared max_frames. Returns a *errs.ProcessingError if
// called while Unprepared. If the descriptor declares a bypass parameter,
// its current value drives a crossfade between the processor's wet output
// and a dry pass-through (or the processor's own BypassHandler, if it
// implements one) rather than switching instantaneously.
func (a *Adapter) Process32(numFrames int, transport process.Transport) error {
	s := a.current.Load()
	if s == nil {
		return &errs.ProcessingError{Reason: "process called while unprepared"}
	}
	s.storage32.ResolveMainOutputs()
	refreshAuxBuses(s.auxIn32, s.storage32, numFrames, true)
	refreshAuxBuses(s.auxOut32, s.storage32, numFrames, false)
	ctx := process.NewContext[float32](
		process.NewBuffer(s.storage32.MainInSlices(numFrames)),
		process.NewBuffer(s.storage32.MainOutSlices(numFrames)),
		process.NewAuxiliaryBuffers(s.auxIn32),
		process.NewAuxiliaryBuffers(s.auxOut32),
		s.sampleRate,
		transport,
		a.descriptor.Parameters(),
	)
	target := bypassTarget(s.bypassParam)
	switch {
	case s.bypassMix == target && target == 0:
		if s.bypassHandler != nil {
			s.bypassHandler.Bypass(ctx)
		} else {
			ctx.PassThrough()
		}
	case s.bypassMix == target:
		s.processor.Process(ctx)
	default:
		s.processor.Process(ctx)
		blendBypassCrossfade(s, ctx, s.sampleRate, target)
	}
	return nil
}

// Process64 renders one block through the processor's f64 path. Only valid
// when the descriptor advertises double-precision support; the wrapper is
// responsible for only calling this when the host negotiated f64.
func (a *Adapter) Process64(numFrames int, transport process.Transport) error {
	s := a.current.Load()
	if s == nil {
		return &errs.ProcessingError{Reason: "process called while unprepared"}
	}
	if s.storage64 == nil {
		return &errs.ProcessingError{Reason: "processor does not support double precision"}
	}
	s.storage64.ResolveMainOutputs()
	refreshAuxBuses(s.auxIn64, s.storage64, numFrames, true)
	refreshAuxBuses(s.auxOut64, s.storage64, numFrames, false)
	ctx := process.NewContext[float64](
		process.NewBuffer(s.storage64.MainInSlices(numFrames)),
		process.NewBuffer(s.storage64.MainOutSlices(numFrames)),
		process.NewAuxiliaryBuffers(s.auxIn64),
		process.NewAuxiliaryBuffers(s.auxOut64),
		s.sampleRate,
		transport,
		a.descriptor.Parameters(),
	)
	target := bypassTarget(s.bypassParam)
	switch {
	case s.bypassMix == target && target == 0:
		if s.bypassHandler != nil {
			s.bypassHandler.BypassDouble(ctx)
		} else {
			ctx.PassThrough()
		}
	case s.bypassMix == target:
		s.processor.ProcessDouble(ctx)
	default:
		s.processor.ProcessDouble(ctx)
		blendBypassCrossfade(s, ctx, s.sampleRate, target)
	}
	return nil
}

// refreshAuxBuses refills buses' elements in place from storage for the
// current render call. buses is sized once at Allocate time (one outer
// [][][]S per renderState, never reallocated); only the per-bus view
// slices storage already owns are re-sliced here, so this never allocates.
func refreshAuxBuses[S buffer.Sample](buses [][][]S, storage *buffer.PointerStorage[S], numFrames int, input bool) {
	for i := range buses {
		if input {
			buses[i] = storage.AuxInSlices(i, numFrames)
		} else {
			buses[i] = storage.AuxOutSlices(i, numFrames)
		}
	}
}

// ProcessMIDI drains MIDIInput through the CC-mapping and program-change →
// preset gates described in spec §4.3, then calls the processor's
// ProcessMIDI with what remains, collecting any events it emits into
// MIDIOutput.
func (a *Adapter) ProcessMIDI() error {
	s := a.current.Load()
	if s == nil {
		return &errs.ProcessingError{Reason: "process_midi called while unprepared"}
	}

	presets := a.descriptor.Presets()
	presetCount := presets.Count()

	gated := s.midiIn.Events()
	forward := gated[:0:0]
	for _, ev := range gated {
		switch ev.Kind {
		case midi.KindControlChange:
			if id, normalized, ok := s.ccTable.Lookup(ev.Channel, ev.Controller, ev.Value); ok {
				if p, ok := a.descriptor.Parameters().ByID(id); ok {
					p.SetNormalized(normalized)
				}
				continue // CC consumed by the mapping, dropped from the MIDI stream
			}
		case midi.KindProgramChange:
			if presetCount > 0 && int(ev.Program) < presetCount {
				presets.Apply(int(ev.Program), a.descriptor.Parameters())
				continue // PC consumed, applied as a preset
			}
		}
		forward = append(forward, ev)
	}

	s.processor.ProcessMIDI(forward, s.midiOut)
	return nil
}

// ClearRenderBuffers resets pointer storage and MIDI buffers for the next
// render block. Called by the wrapper at the top of every process call.
func (a *Adapter) ClearRenderBuffers() {
	s := a.current.Load()
	if s == nil {
		return
	}
	s.storage32.Clear()
	if s.storage64 != nil {
		s.storage64.Clear()
	}
	s.midiIn.Clear()
	s.midiOut.Clear()
}
