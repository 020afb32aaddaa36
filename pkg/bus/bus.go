// Package bus describes audio bus topology: the directional channel sets a
// plugin declares on its input and output sides, validated against the
// framework's hard channel/bus limits before any buffer is allocated.
package bus

import "errors"

// MaxChannels is the largest channel count a single bus may declare.
const MaxChannels = 64

// MaxBuses is the largest number of buses a single side (input or output)
// may declare.
const MaxBuses = 16

var (
	// ErrTooManyChannels is returned when a bus declares more than
	// MaxChannels channels.
	ErrTooManyChannels = errors.New("bus: channel count exceeds MaxChannels")
	// ErrTooManyBuses is returned when a side declares more than MaxBuses
	// buses.
	ErrTooManyBuses = errors.New("bus: bus count exceeds MaxBuses per side")
	// ErrNoMainBus is returned when a side with at least one bus has none
	// marked Main.
	ErrNoMainBus = errors.New("bus: a side with buses must have exactly one Main bus")
	// ErrMultipleMainBuses is returned when a side declares more than one
	// Main bus.
	ErrMultipleMainBuses = errors.New("bus: at most one Main bus is allowed per side")
)

// Kind distinguishes the primary I/O pair from sidechain/multi-out buses.
type Kind int

const (
	// Main is the primary input or output pair. By convention exactly one
	// exists per side.
	Main Kind = iota
	// Aux is any additional bus: sidechain input, extra output, etc.
	Aux
)

// Info describes a single bus.
type Info struct {
	Name          string
	Kind          Kind
	ChannelCount  int
	DefaultActive bool
}

// Side is an ordered list of buses for one direction (input or output).
type Side struct {
	Buses []Info
}

// Validate checks the side against MaxChannels/MaxBuses and the
// exactly-one-Main convention.
func (s Side) Validate() error {
	if len(s.Buses) > MaxBuses {
		return ErrTooManyBuses
	}
	mainCount := 0
	for _, b := range s.Buses {
		if b.ChannelCount > MaxChannels {
			return ErrTooManyChannels
		}
		if b.Kind == Main {
			mainCount++
		}
	}
	if len(s.Buses) > 0 {
		if mainCount == 0 {
			return ErrNoMainBus
		}
		if mainCount > 1 {
			return ErrMultipleMainBuses
		}
	}
	return nil
}

// MainChannelCount returns the channel count of the side's Main bus, or 0 if
// the side has no buses.
func (s Side) MainChannelCount() int {
	for _, b := range s.Buses {
		if b.Kind == Main {
			return b.ChannelCount
		}
	}
	return 0
}

// AuxBuses returns the side's non-Main buses in declaration order.
func (s Side) AuxBuses() []Info {
	var aux []Info
	for _, b := range s.Buses {
		if b.Kind == Aux {
			aux = append(aux, b)
		}
	}
	return aux
}

// Layout is a plugin's full declared bus topology: one Side per direction.
type Layout struct {
	Input  Side
	Output Side
}

// Validate validates both sides.
func (l Layout) Validate() error {
	if err := l.Input.Validate(); err != nil {
		return err
	}
	return l.Output.Validate()
}

// CachedConfig freezes a validated Layout into the lightweight record used
// for pointer-storage allocation: exact channel counts per bus, with no
// further validation needed at render time.
type CachedConfig struct {
	MainInChannels   int
	MainOutChannels  int
	AuxInChannels    []int
	AuxOutChannels   []int
	HasInputBuses    bool
	HasOutputBuses   bool
}

// Cache validates layout and freezes it into a CachedConfig.
func Cache(layout Layout) (CachedConfig, error) {
	if err := layout.Validate(); err != nil {
		return CachedConfig{}, err
	}
	cfg := CachedConfig{
		MainInChannels:  layout.Input.MainChannelCount(),
		MainOutChannels: layout.Output.MainChannelCount(),
		HasInputBuses:   len(layout.Input.Buses) > 0,
		HasOutputBuses:  len(layout.Output.Buses) > 0,
	}
	for _, b := range layout.Input.AuxBuses() {
		cfg.AuxInChannels = append(cfg.AuxInChannels, b.ChannelCount)
	}
	for _, b := range layout.Output.AuxBuses() {
		cfg.AuxOutChannels = append(cfg.AuxOutChannels, b.ChannelCount)
	}
	return cfg, nil
}

// NeedsInternalOutputBuffers reports whether the framework must allocate
// its own output scratch buffers because the plugin is an instrument
// (no input buses, at least one output bus) whose host may pass null
// output pointers.
func (c CachedConfig) NeedsInternalOutputBuffers() bool {
	return !c.HasInputBuses && c.HasOutputBuses
}
