// Package process carries the render-time view types a processor sees on
// every call: musical transport state and the buffer/context pair the
// adapter assembles from host-provided pointer storage.
package process

// Transport is the musical timeline state for the current render call, as
// reported by the host.
type Transport struct {
	Playing        bool
	Tempo          float64 // beats per minute
	TimeSigNum     int
	TimeSigDenom   int
	BarPositionPPQ float64 // project-quarter-note position of the current bar
	BeatPositionPPQ float64
	FrameRate      float64 // video/SMPTE frame rate, 0 if not provided
	Looping        bool
	LoopStartPPQ   float64
	LoopEndPPQ     float64
}
