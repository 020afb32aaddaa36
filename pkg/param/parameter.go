// Package param implements the parameter model: atomic-backed values, range
// mappers, formatters, smoothing, and the registry/group tree hosts query.
package param

import (
	"math"
	"sync/atomic"

	"github.com/soundbridge/soundbridge/internal/hash"
)

// Flags are behavioral bits attached to a Parameter.
type Flags uint32

const (
	// CanAutomate marks the parameter as host-automatable.
	CanAutomate Flags = 1 << iota
	// ReadOnly marks the parameter as host-display-only.
	ReadOnly
	// IsBypass marks the plugin's single bypass parameter, if any.
	IsBypass
	// IsList marks a parameter whose discrete steps should render as a
	// host dropdown rather than a slider.
	IsList
	// IsHidden hides the parameter from generic host UIs.
	IsHidden
)

// Has reports whether f is set.
func (fl Flags) Has(f Flags) bool { return fl&f != 0 }

// Info is the immutable, host-facing description of a parameter: every
// field a host needs to enumerate and display the parameter, independent of
// its current value.
type Info struct {
	ID           uint32
	StringID     string
	Name         string
	ShortName    string
	Unit         Unit
	StepCount    int32
	DefaultValue float64 // normalized
	Flags        Flags
	GroupID      uint32
}

// Parameter is a single plugin parameter: a stable identity, a range
// mapper, a formatter, and a lock-free normalized value cell plus its
// smoother. The zero value is not usable; construct with New via Builder.
type Parameter struct {
	info    Info
	mapper  Mapper
	fmt     Formatter
	smooth  *Smoother
	value   uint64 // bit-punned float64, atomic
}

// New constructs a Parameter. stringID is hashed with FNV-1a-32 to produce
// the wire id; it is also the key state save/load uses, so it must be
// stable across plugin versions.
func New(stringID, name string, mapper Mapper, fmtr Formatter, defaultPlain float64, flags Flags) *Parameter {
	p := &Parameter{
		info: Info{
			ID:       hash.FNV1a32(stringID),
			StringID: stringID,
			Name:     name,
			ShortName: name,
			Flags:    flags,
		},
		mapper: mapper,
		fmt:    fmtr,
		smooth: NewSmoother(StyleNone, 0),
	}
	defNorm := mapper.PlainToNormalized(defaultPlain)
	p.info.DefaultValue = defNorm
	p.store(defNorm)
	p.smooth.Reset(defNorm)
	return p
}

// ID returns the parameter's stable FNV-1a-32 hash id.
func (p *Parameter) ID() uint32 { return p.info.ID }

// Info returns the parameter's host-facing description.
func (p *Parameter) Info() Info { return p.info }

// WithGroup assigns the parameter to a group id (0 is the root group).
// Intended for use during registration, not from the audio thread.
func (p *Parameter) WithGroup(groupID uint32) *Parameter {
	p.info.GroupID = groupID
	return p
}

// WithSmoothing attaches a smoothing style and time constant to the
// parameter, used by the processor to ramp toward newly set targets.
func (p *Parameter) WithSmoothing(style SmoothingStyle, timeConstant float64) *Parameter {
	p.smooth = NewSmoother(style, timeConstant)
	p.smooth.Reset(p.Normalized())
	return p
}

// Normalized reads the current value in [0,1]. Wait-free; safe on any thread.
func (p *Parameter) Normalized() float64 {
	return float64frombits(atomic.LoadUint64(&p.value))
}

// SetNormalized writes a new normalized value, clamped to [0,1], and
// retargets the smoother. Wait-free; safe on any thread.
func (p *Parameter) SetNormalized(n float64) {
	p.store(clamp01(n))
	p.smooth.SetTarget(p.Normalized())
}

// Plain returns the current value converted to natural units via the mapper.
func (p *Parameter) Plain() float64 {
	return p.mapper.NormalizedToPlain(p.Normalized())
}

// SetPlain converts plain into normalized space via the mapper and stores it.
func (p *Parameter) SetPlain(plain float64) {
	p.SetNormalized(p.mapper.PlainToNormalized(plain))
}

// NormalizedToPlain exposes the parameter's mapper for a caller-supplied
// normalized value without touching the stored value.
func (p *Parameter) NormalizedToPlain(n float64) float64 { return p.mapper.NormalizedToPlain(n) }

// PlainToNormalized exposes the parameter's mapper for a caller-supplied
// plain value without touching the stored value.
func (p *Parameter) PlainToNormalized(plain float64) float64 { return p.mapper.PlainToNormalized(plain) }

// DisplayNormalized formats a normalized value as the host sees it: the text
// and unit are returned separately, per spec, for the host/UI to concatenate.
func (p *Parameter) DisplayNormalized(n float64) (text, unit string) {
	plain := p.mapper.NormalizedToPlain(n)
	return p.fmt.Text(plain), p.fmt.Unit()
}

// Parse converts host-entered text back to a normalized value.
func (p *Parameter) Parse(text string) (float64, error) {
	plain, err := p.fmt.Parse(text)
	if err != nil {
		return 0, err
	}
	return p.mapper.PlainToNormalized(plain), nil
}

// Smoother exposes the parameter's smoother for the processor's render loop.
func (p *Parameter) Smoother() *Smoother { return p.smooth }

// ResetSmoothing snaps the smoother to the parameter's current value,
// discarding any in-flight ramp. Called after state load and after
// re-prepare, per spec.
func (p *Parameter) ResetSmoothing() { p.smooth.Reset(p.Normalized()) }

func (p *Parameter) store(n float64) {
	atomic.StoreUint64(&p.value, math.Float64bits(n))
}

func float64frombits(b uint64) float64 { return math.Float64frombits(b) }
