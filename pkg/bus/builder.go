package bus

// Builder provides a fluent API for building a Layout, generalizing the
// teacher framework's single-audio-bus-list builder to the Main/Aux side
// model plugins declare under this framework.
type Builder struct {
	layout Layout
}

// NewBuilder starts an empty Layout.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithMainInput adds the side's Main input bus.
func (b *Builder) WithMainInput(name string, channels int) *Builder {
	b.layout.Input.Buses = append(b.layout.Input.Buses, Info{Name: name, Kind: Main, ChannelCount: channels, DefaultActive: true})
	return b
}

// WithMainOutput adds the side's Main output bus.
func (b *Builder) WithMainOutput(name string, channels int) *Builder {
	b.layout.Output.Buses = append(b.layout.Output.Buses, Info{Name: name, Kind: Main, ChannelCount: channels, DefaultActive: true})
	return b
}

// WithAuxInput adds an auxiliary (e.g. sidechain) input bus, inactive by
// default.
func (b *Builder) WithAuxInput(name string, channels int) *Builder {
	b.layout.Input.Buses = append(b.layout.Input.Buses, Info{Name: name, Kind: Aux, ChannelCount: channels})
	return b
}

// WithAuxOutput adds an auxiliary output bus, inactive by default.
func (b *Builder) WithAuxOutput(name string, channels int) *Builder {
	b.layout.Output.Buses = append(b.layout.Output.Buses, Info{Name: name, Kind: Aux, ChannelCount: channels})
	return b
}

// WithStereoInput/.../With5_1Output are convenience aliases for common
// channel counts.
func (b *Builder) WithStereoInput(name string) *Builder  { return b.WithMainInput(name, 2) }
func (b *Builder) WithStereoOutput(name string) *Builder { return b.WithMainOutput(name, 2) }
func (b *Builder) WithMonoInput(name string) *Builder    { return b.WithMainInput(name, 1) }
func (b *Builder) WithMonoOutput(name string) *Builder   { return b.WithMainOutput(name, 1) }
func (b *Builder) WithSidechain(name string) *Builder    { return b.WithAuxInput(name, 2) }
func (b *Builder) With5_1Output(name string) *Builder    { return b.WithMainOutput(name, 6) }
func (b *Builder) With7_1Output(name string) *Builder    { return b.WithMainOutput(name, 8) }

// Build validates and returns the Layout.
func (b *Builder) Build() (Layout, error) {
	if err := b.layout.Validate(); err != nil {
		return Layout{}, err
	}
	return b.layout, nil
}

// MustBuild returns the Layout or panics on validation failure. Intended
// for use in plugin init code, where an invalid topology is a programming
// error the author should see immediately.
func (b *Builder) MustBuild() Layout {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}
