// Package plugin defines the two-phase lifecycle contract a plugin author
// implements once and exposes to both the VST3 and AU wrappers through the
// generic adapter: a Descriptor describing the plugin's static shape, and a
// Processor it produces once the host commits to a sample rate and block
// size.
package plugin

import (
	"io"

	"github.com/soundbridge/soundbridge/pkg/bus"
	"github.com/soundbridge/soundbridge/pkg/midi"
	"github.com/soundbridge/soundbridge/pkg/param"
	"github.com/soundbridge/soundbridge/pkg/preset"
	"github.com/soundbridge/soundbridge/pkg/process"
)

// Info is a plugin's static identity, stable across builds.
type Info struct {
	ID       string // reverse-DNS unique identifier, e.g. "com.soundbridge.examples.gain"
	Name     string
	Version  string // semantic version, e.g. "1.0.0"
	Vendor   string
	Category string // "Fx", "Instrument", "Fx|Delay", etc.

	// ManufacturerCode and PluginCode are FourCCs used for AU component
	// identity (see pkg/au) and, reinterpreted, VST3 subcategory hints.
	ManufacturerCode [4]byte
	PluginCode       [4]byte
}

// Descriptor is a plugin's unprepared state: everything the host can query
// before committing to a sample rate and block size, plus the factory that
// produces a Processor once it does.
type Descriptor interface {
	Info() Info
	Parameters() *param.Registry
	Buses() bus.Layout
	// Presets returns the plugin's factory preset list, or nil if it has
	// none.
	Presets() *preset.List
	// SupportsDoublePrecision reports whether CreateProcessor's Processor
	// implements ProcessDouble; if false the wrapper always converts
	// through the f32 path.
	SupportsDoublePrecision() bool
	// CreateProcessor performs the non-realtime "prepare" transition:
	// allocate every render-time resource the processor needs for the
	// given sample rate, maximum block size, and validated bus topology.
	// Returning an error leaves the adapter in its Unprepared state.
	CreateProcessor(sampleRate float64, maxFrames int, buses bus.CachedConfig) (Processor, error)
}

// Processor is a plugin's prepared state: the render-time object the
// adapter drives once per host buffer. None of its methods may allocate,
// lock, block, or panic.
type Processor interface {
	// Process renders one block of float32 audio.
	Process(ctx process.Context[float32])
	// ProcessDouble renders one block of float64 audio. Only called when
	// Descriptor.SupportsDoublePrecision is true and the host selected
	// double precision.
	ProcessDouble(ctx process.Context[float64])
	// ProcessMIDI consumes in (already CC-mapped and PC-gated by the
	// adapter) and may push events to out.
	ProcessMIDI(in []midi.Event, out *midi.Buffer)
	// SetActive runs the deactivate/activate sequence invoked by the
	// adapter's reset() and by the wrapper around transport stop/start.
	SetActive(active bool) error
	// LatencySamples and TailSamples report processing delay and
	// ring-out length for host PDC and tail handling.
	LatencySamples() int32
	TailSamples() int32
	// SaveState/LoadState persist processor-owned data beyond the
	// parameter registry (which the adapter already saves/loads keyed by
	// stable string id). Implementations that have nothing extra to
	// store may no-op both.
	SaveState(w io.Writer) error
	LoadState(r io.Reader) error
}

// BypassHandler is an optional interface a Processor implements when it
// needs to control its own bypass behavior (for example, maintaining filter
// phase continuity through the transition) instead of the adapter's default
// crossfaded input-to-output pass-through. The adapter checks for it with a
// type assertion at prepare time; a Processor that doesn't implement it gets
// the default behavior.
type BypassHandler interface {
	// Bypass produces ctx.Output while the plugin is fully bypassed,
	// f32 path. Implementations typically call ctx.PassThrough().
	Bypass(ctx process.Context[float32])
	// BypassDouble is Bypass's f64 counterpart.
	BypassDouble(ctx process.Context[float64])
}
