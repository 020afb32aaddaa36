package bus

// Common bus layout templates, generalizing the teacher framework's
// per-plugin-shape template functions to the Main/Aux Layout model.

// EffectStereo is a standard stereo effect: one stereo in, one stereo out.
func EffectStereo() Layout {
	return NewBuilder().WithStereoInput("Stereo In").WithStereoOutput("Stereo Out").MustBuild()
}

// EffectMono is a mono effect: one mono in, one mono out.
func EffectMono() Layout {
	return NewBuilder().WithMonoInput("Mono In").WithMonoOutput("Mono Out").MustBuild()
}

// EffectStereoWithSidechain is a stereo effect with an auxiliary stereo
// sidechain input.
func EffectStereoWithSidechain() Layout {
	return NewBuilder().
		WithStereoInput("Stereo In").
		WithStereoOutput("Stereo Out").
		WithSidechain("Sidechain In").
		MustBuild()
}

// Instrument is a layout with no input buses and a single Main output —
// the shape that requires internal output-buffer substitution when the
// host passes null output pointers.
func Instrument(outputChannels int) Layout {
	return NewBuilder().WithMainOutput("Main Out", outputChannels).MustBuild()
}

// InstrumentMultiOut is an instrument with one stereo Main output plus n
// auxiliary stereo outputs (per-voice or per-drum routing).
func InstrumentMultiOut(auxOutputs int) Layout {
	b := NewBuilder().WithStereoOutput("Main Out")
	for i := 0; i < auxOutputs; i++ {
		b.WithAuxOutput("Aux Out", 2)
	}
	return b.MustBuild()
}

// Surround5_1 is a stereo-in, 5.1-out surround panner/upmixer shape.
func Surround5_1() Layout {
	return NewBuilder().WithStereoInput("Stereo In").With5_1Output("5.1 Out").MustBuild()
}
