// Package adapter provides the generic, type-erased driver that turns a
// user's plugin.Descriptor/plugin.Processor pair into the host-facing
// lifecycle both the VST3 and AU wrappers call through: prepare/unprepare,
// parameter and state access, and the render/MIDI entry points.
package adapter

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/soundbridge/soundbridge/internal/errs"
	"github.com/soundbridge/soundbridge/pkg/bus"
	"github.com/soundbridge/soundbridge/pkg/buffer"
	"github.com/soundbridge/soundbridge/pkg/midi"
	"github.com/soundbridge/soundbridge/pkg/param"
	"github.com/soundbridge/soundbridge/pkg/plugin"
	"github.com/soundbridge/soundbridge/pkg/preset"
	"github.com/soundbridge/soundbridge/pkg/process"
	"github.com/soundbridge/soundbridge/pkg/state"
)

// renderState is everything the render path touches. It is swapped
// atomically by Allocate/Deallocate, which the host contract guarantees
// never race a concurrent render call; Process itself never takes mu, only
// atomic.Pointer.Load, so it never blocks on a mutex also touched off T1.
type renderState struct {
	processor  plugin.Processor
	sampleRate float64
	maxFrames  int
	busConfig  bus.CachedConfig

	storage32 *buffer.PointerStorage[float32]
	storage64 *buffer.PointerStorage[float64]
	conv      *buffer.ConversionBuffers
	ccTable   *midi.CCTable
	midiIn    *midi.Buffer
	midiOut   *midi.Buffer

	// Outer [][][]S containers for aux bus views, sized once at prepare
	// time and refilled in place every render call (see refreshAuxBuses) so
	// Process32/Process64 never allocate the wrapper slice per call.
	auxIn32  [][][]float32
	auxOut32 [][][]float32
	auxIn64  [][][]float64
	auxOut64 [][][]float64

	// Bypass crossfade state, cached once at prepare time so Process32/64
	// never walk the registry or do a type assertion per render call.
	bypassParam   *param.Parameter
	bypassHandler plugin.BypassHandler // nil if processor doesn't implement it
	bypassMix     float64              // 1 = fully wet, 0 = fully bypassed
}

// Adapter drives descriptor D through the Unprepared/Prepared lifecycle.
// Transitioning is not a distinct observable state in this
// implementation: mu serializes Allocate/Deallocate/state-access calls
// (all off T1 per the host contract), and current is swapped only once the
// new state is fully built, so no caller ever observes a half-built state.
type Adapter struct {
	mu sync.Mutex

	descriptor   plugin.Descriptor
	pendingState []byte // set by LoadState before first Allocate

	current atomic.Pointer[renderState] // nil while Unprepared

	ccSlotsPerBlock int
	sysexSlots      int
	sysexSlotSize   int
}

// New wraps descriptor in an Adapter, Unprepared.
func New(descriptor plugin.Descriptor) *Adapter {
	return &Adapter{
		descriptor:      descriptor,
		ccSlotsPerBlock: midi.DefaultBufferCapacity,
		sysexSlots:      midi.DefaultSysExSlots,
		sysexSlotSize:   midi.DefaultSysExBufferSize,
	}
}

// IsPrepared reports whether the adapter currently holds a live processor.
func (a *Adapter) IsPrepared() bool { return a.current.Load() != nil }

// SampleRate returns the prepared sample rate, or 0 if Unprepared.
func (a *Adapter) SampleRate() float64 {
	if s := a.current.Load(); s != nil {
		return s.sampleRate
	}
	return 0
}

// MaxFrames returns the prepared block size, or 0 if Unprepared.
func (a *Adapter) MaxFrames() int {
	if s := a.current.Load(); s != nil {
		return s.maxFrames
	}
	return 0
}

// Allocate performs Unprepared→Prepared or Prepared→Prepared (re-prepare).
// On re-prepare, the existing processor is deactivated before the new one
// is constructed; pending state loaded via LoadState is only ever applied
// on the first Allocate after it was set. Failure leaves the adapter
// Unprepared (or, on re-prepare failure, leaves the *previous* processor in
// place — a failed re-prepare must not silently tear down a working
// instance).
func (a *Adapter) Allocate(sampleRate float64, maxFrames int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	buses, err := bus.Cache(a.descriptor.Buses())
	if err != nil {
		return &errs.InitializationFailed{Reason: err.Error()}
	}

	prev := a.current.Load()
	if prev != nil {
		_ = prev.processor.SetActive(false)
	}

	processor, err := a.descriptor.CreateProcessor(sampleRate, maxFrames, buses)
	if err != nil {
		return &errs.InitializationFailed{Reason: err.Error()}
	}

	next := &renderState{
		processor:  processor,
		sampleRate: sampleRate,
		maxFrames:  maxFrames,
		busConfig:  buses,
		storage32:  buffer.NewPointerStorage[float32](buses, maxFrames),
		ccTable:    midi.NewCCTable(),
		midiIn:     midi.NewBuffer(a.ccSlotsPerBlock),
		midiOut:    midi.NewBuffer(a.ccSlotsPerBlock),
	}
	next.bypassParam, _ = a.descriptor.Parameters().BypassParameter()
	next.bypassHandler, _ = processor.(plugin.BypassHandler)
	next.auxIn32 = make([][][]float32, next.storage32.AuxBusCount(true))
	next.auxOut32 = make([][][]float32, next.storage32.AuxBusCount(false))
	if a.descriptor.SupportsDoublePrecision() {
		next.storage64 = buffer.NewPointerStorage[float64](buses, maxFrames)
		next.auxIn64 = make([][][]float64, next.storage64.AuxBusCount(true))
		next.auxOut64 = make([][][]float64, next.storage64.AuxBusCount(false))
	} else {
		next.conv = buffer.NewConversionBuffers(buses, maxFrames)
	}

	if prev == nil && a.pendingState != nil {
		if err := a.loadStateInto(processor, a.pendingState); err != nil {
			return err
		}
		a.pendingState = nil
	} else if prev != nil {
		// Re-prepare: carry forward the live parameter/processor state by
		// re-applying a fresh save/load round-trip through the new
		// processor, since a changed bus topology may have dropped or
		// added parameters (see DESIGN.md Open Question (a)).
		var buf writeBuffer
		if err := a.saveStateFrom(prev.processor, &buf); err == nil {
			_ = a.loadStateInto(processor, buf.data)
		}
	}

	if err := processor.SetActive(true); err != nil {
		return &errs.InitializationFailed{Reason: err.Error()}
	}

	// Settle the crossfade at whatever the bypass parameter's restored
	// value says, rather than always starting wet and fading on the first
	// render call after a prepare that loaded a bypassed state.
	if next.bypassParam != nil && bypassParamActive(next.bypassParam) {
		next.bypassMix = 0
	} else {
		next.bypassMix = 1
	}

	a.current.Store(next)
	return nil
}

// Deallocate performs Prepared→Unprepared; a no-op if already Unprepared.
func (a *Adapter) Deallocate() {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.current.Swap(nil)
	if prev != nil {
		_ = prev.processor.SetActive(false)
	}
}

// Parameters returns the plugin's parameter registry. Valid in both
// Unprepared and Prepared states, since the registry is owned by the
// Descriptor and shared with whatever Processor it constructs.
func (a *Adapter) Parameters() *param.Registry {
	return a.descriptor.Parameters()
}

// Presets returns the plugin's factory preset list, or nil if it has none.
func (a *Adapter) Presets() *preset.List {
	return a.descriptor.Presets()
}

// Reset invokes the processor's deactivate/activate sequence. No-op if
// Unprepared.
func (a *Adapter) Reset() error {
	s := a.current.Load()
	if s == nil {
		return nil
	}
	if err := s.processor.SetActive(false); err != nil {
		return &errs.ProcessingError{Reason: err.Error()}
	}
	if err := s.processor.SetActive(true); err != nil {
		return &errs.ProcessingError{Reason: err.Error()}
	}
	return nil
}

// SetProcessorActive toggles the processor's activate/deactivate state
// without tearing down or rebuilding any render resource. The VST3 and AU
// wrappers call this from their own setActive(bool)-shaped host callback,
// which a host may invoke repeatedly within a single Allocate/Deallocate
// cycle (e.g. on transport stop/start) — unlike Allocate, it never touches
// pointer storage or MIDI buffers. No-op if Unprepared.
func (a *Adapter) SetProcessorActive(active bool) error {
	s := a.current.Load()
	if s == nil {
		return nil
	}
	if err := s.processor.SetActive(active); err != nil {
		return &errs.ProcessingError{Reason: err.Error()}
	}
	return nil
}

// LatencySamples proxies to the processor when Prepared, else 0.
func (a *Adapter) LatencySamples() int32 {
	if s := a.current.Load(); s != nil {
		return s.processor.LatencySamples()
	}
	return 0
}

// TailSamples proxies to the processor when Prepared, else 0.
func (a *Adapter) TailSamples() int32 {
	if s := a.current.Load(); s != nil {
		return s.processor.TailSamples()
	}
	return 0
}

// DeclaredBuses proxies to the plugin's declared topology so the host can
// query bus layout before Allocate.
func (a *Adapter) DeclaredBuses() bus.Layout {
	return a.descriptor.Buses()
}

type writeBuffer struct{ data []byte }

func (w *writeBuffer) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

// SaveState returns empty bytes if Unprepared; the processor's serialized
// state otherwise.
func (a *Adapter) SaveState() ([]byte, error) {
	s := a.current.Load()
	if s == nil {
		return nil, nil
	}
	var buf writeBuffer
	if err := a.saveStateFrom(s.processor, &buf); err != nil {
		return nil, err
	}
	return buf.data, nil
}

func (a *Adapter) saveStateFrom(processor plugin.Processor, w io.Writer) error {
	mgr := state.NewManager(a.descriptor.Parameters())
	mgr.SetCustomSaveFunc(processor.SaveState)
	if err := mgr.Save(w); err != nil {
		return &errs.StateError{Reason: err.Error()}
	}
	return nil
}

// LoadState stores data as pending state if Unprepared (applied on the
// next Allocate); if Prepared, applies immediately and resets every
// parameter's smoother to the newly-loaded target.
func (a *Adapter) LoadState(data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.current.Load()
	if s == nil {
		cp := make([]byte, len(data))
		copy(cp, data)
		a.pendingState = cp
		return nil
	}
	if err := a.loadStateInto(s.processor, data); err != nil {
		return err
	}
	for _, p := range a.descriptor.Parameters().All() {
		p.ResetSmoothing()
	}
	return nil
}

func (a *Adapter) loadStateInto(processor plugin.Processor, data []byte) error {
	mgr := state.NewManager(a.descriptor.Parameters())
	mgr.SetCustomLoadFunc(processor.LoadState)
	return mgr.Load(bytes.NewReader(data))
}
