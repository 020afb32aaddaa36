package process

import "github.com/soundbridge/soundbridge/pkg/param"

// Context is what a processor's render call receives: the main bus views,
// auxiliary bus views, transport, and a handle on the parameter registry for
// direct reads. It is valid only for the duration of one render call and
// must not be retained.
type Context[S ~float32 | ~float64] struct {
	Input      Buffer[S]
	Output     Buffer[S]
	AuxInput   AuxiliaryBuffers[S]
	AuxOutput  AuxiliaryBuffers[S]
	SampleRate float64
	Transport  Transport

	params param.Parameters
}

// NewContext assembles a Context for one render call from pre-materialized
// views. The caller (the adapter) owns the lifetime of every slice passed
// in.
func NewContext[S ~float32 | ~float64](
	input, output Buffer[S],
	auxIn, auxOut AuxiliaryBuffers[S],
	sampleRate float64,
	transport Transport,
	params param.Parameters,
) Context[S] {
	return Context[S]{
		Input:      input,
		Output:     output,
		AuxInput:   auxIn,
		AuxOutput:  auxOut,
		SampleRate: sampleRate,
		Transport:  transport,
		params:     params,
	}
}

// NumSamples returns the frame count for this render call, taken from
// whichever of input/output has channels.
func (c Context[S]) NumSamples() int {
	if n := c.Input.NumFrames(); n > 0 {
		return n
	}
	return c.Output.NumFrames()
}

// Param returns a parameter's current normalized value, or 0 if id is
// unknown.
func (c Context[S]) Param(id uint32) float64 {
	if p, ok := c.params.ByID(id); ok {
		return p.Normalized()
	}
	return 0
}

// ParamPlain returns a parameter's current plain value, or 0 if id is
// unknown.
func (c Context[S]) ParamPlain(id uint32) float64 {
	if p, ok := c.params.ByID(id); ok {
		return p.Plain()
	}
	return 0
}

// PassThrough copies input to output across the common channel count, for
// bypass.
func (c Context[S]) PassThrough() {
	c.Input.CopyTo(c.Output)
}

// ClearOutput zeros the main output buffer.
func (c Context[S]) ClearOutput() {
	c.Output.Clear()
}
