package param

// Builder provides a fluent API for constructing a Parameter, generalizing
// the teacher framework's linear-only builder to arbitrary Mappers, units,
// and smoothing styles.
type Builder struct {
	stringID     string
	name         string
	shortName    string
	unit         Unit
	mapper       Mapper
	fmtr         Formatter
	defaultPlain float64
	stepCount    int32
	flags        Flags
	groupID      uint32
	smoothStyle  SmoothingStyle
	smoothTime   float64
	dBFloor      float64
	labels       []string
}

// NewBuilder starts a parameter definition keyed by its stable string id.
// The string id is what on-disk state keys on; the numeric id hosts see is
// derived from it automatically.
func NewBuilder(stringID, name string) *Builder {
	return &Builder{
		stringID: stringID,
		name:     name,
		flags:    CanAutomate,
		mapper:   LinearMapper{Min: 0, Max: 1},
		dBFloor:  -60,
	}
}

// ShortName sets the abbreviated display name.
func (b *Builder) ShortName(name string) *Builder { b.shortName = name; return b }

// Linear selects a linear range mapper.
func (b *Builder) Linear(min, max float64) *Builder {
	b.mapper = LinearMapper{Min: min, Max: max}
	return b
}

// Power selects a power-curve range mapper.
func (b *Builder) Power(min, max, k float64) *Builder {
	b.mapper = PowerMapper{Min: min, Max: max, K: k}
	return b
}

// Log selects a logarithmic range mapper; min must be > 0.
func (b *Builder) Log(min, max float64) *Builder {
	b.mapper = LogMapper{Min: min, Max: max}
	return b
}

// LogOffset selects an offset-logarithmic range mapper.
func (b *Builder) LogOffset(min, max, offset float64) *Builder {
	b.mapper = LogOffsetMapper{Min: min, Max: max, Offset: offset}
	return b
}

// Unit sets the unit hint, which also selects the default formatter unless
// Formatter is called afterward to override it.
func (b *Builder) Unit(u Unit) *Builder { b.unit = u; return b }

// DecibelFloor configures the floor used by the decibel formatter's -inf
// rendering; only meaningful together with Unit(UnitDecibels).
func (b *Builder) DecibelFloor(floor float64) *Builder { b.dBFloor = floor; return b }

// Labels configures an indexed formatter's display strings; implies
// Unit(UnitIndexed) and sets StepCount to len(labels)-1 if not already set.
func (b *Builder) Labels(labels ...string) *Builder {
	b.labels = labels
	b.unit = UnitIndexed
	if b.stepCount == 0 && len(labels) > 0 {
		b.stepCount = int32(len(labels) - 1)
	}
	return b
}

// Formatter overrides the unit-derived default formatter.
func (b *Builder) Formatter(f Formatter) *Builder { b.fmtr = f; return b }

// Default sets the default value in plain units.
func (b *Builder) Default(plain float64) *Builder { b.defaultPlain = plain; return b }

// Steps marks the parameter as discrete with the given step count (0 =
// continuous, 1 = toggle, n>1 = discrete).
func (b *Builder) Steps(n int32) *Builder { b.stepCount = n; return b }

// Toggle is shorthand for a boolean on/off parameter.
func (b *Builder) Toggle() *Builder {
	b.mapper = LinearMapper{Min: 0, Max: 1}
	b.unit = UnitBoolean
	b.stepCount = 1
	return b
}

// Flag ORs additional behavior flags onto the parameter.
func (b *Builder) Flag(f Flags) *Builder { b.flags |= f; return b }

// ReadOnly marks the parameter host-display-only and strips CanAutomate.
func (b *Builder) ReadOnly() *Builder {
	b.flags |= ReadOnly
	b.flags &^= CanAutomate
	return b
}

// Bypass marks this as the plugin's bypass parameter.
func (b *Builder) Bypass() *Builder { b.flags |= IsBypass; return b }

// Group assigns the parameter to a display group.
func (b *Builder) Group(groupID uint32) *Builder { b.groupID = groupID; return b }

// Smoothed attaches a smoothing style and time constant.
func (b *Builder) Smoothed(style SmoothingStyle, timeConstant float64) *Builder {
	b.smoothStyle = style
	b.smoothTime = timeConstant
	return b
}

// Build finalizes the Parameter.
func (b *Builder) Build() *Parameter {
	fmtr := b.fmtr
	if fmtr == nil {
		if b.unit == UnitIndexed && len(b.labels) > 0 {
			fmtr = NewIndexedFormatter(b.labels)
		} else if b.unit == UnitDecibels {
			fmtr = DefaultFormatter(b.unit, b.dBFloor)
		} else {
			fmtr = DefaultFormatter(b.unit, b.dBFloor)
		}
	}
	p := New(b.stringID, b.name, b.mapper, fmtr, b.defaultPlain, b.flags)
	if b.shortName != "" {
		p.info.ShortName = b.shortName
	}
	p.info.Unit = b.unit
	p.info.StepCount = b.stepCount
	p.info.GroupID = b.groupID
	if b.smoothStyle != StyleNone {
		p.WithSmoothing(b.smoothStyle, b.smoothTime)
	}
	return p
}
