package au

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soundbridge/soundbridge/pkg/midi"
)

func TestEventFromMIDIBytesNoteOn(t *testing.T) {
	ev, ok := eventFromMIDIBytes(0x91, 60, 100, 5)
	assert.True(t, ok)
	assert.Equal(t, midi.KindNoteOn, ev.Kind)
	assert.Equal(t, byte(1), ev.Channel)
	assert.Equal(t, byte(60), ev.Note)
	assert.Equal(t, byte(100), ev.Velocity)
	assert.Equal(t, int32(5), ev.SampleOffset)
}

func TestEventFromMIDIBytesNoteOnZeroVelocityIsNoteOff(t *testing.T) {
	ev, ok := eventFromMIDIBytes(0x90, 60, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, midi.KindNoteOff, ev.Kind)
	assert.Equal(t, byte(0), ev.Velocity)
}

func TestEventFromMIDIBytesNoteOff(t *testing.T) {
	ev, ok := eventFromMIDIBytes(0x82, 64, 40, 0)
	assert.True(t, ok)
	assert.Equal(t, midi.KindNoteOff, ev.Kind)
	assert.Equal(t, byte(2), ev.Channel)
	assert.Equal(t, byte(64), ev.Note)
	assert.Equal(t, byte(40), ev.Velocity)
}

func TestEventFromMIDIBytesControlChange(t *testing.T) {
	ev, ok := eventFromMIDIBytes(0xb0, 7, 127, 0)
	assert.True(t, ok)
	assert.Equal(t, midi.KindControlChange, ev.Kind)
	assert.Equal(t, byte(7), ev.Controller)
	assert.Equal(t, byte(127), ev.Value)
}

func TestEventFromMIDIBytesPitchBendRoundTrip(t *testing.T) {
	for _, bend := range []int16{-8192, -1, 0, 1, 8191} {
		status, d1, d2, ok := encodeMIDIBytes(midi.Event{Kind: midi.KindPitchBend, Channel: 3, Bend: bend})
		assert.True(t, ok)

		ev, ok := eventFromMIDIBytes(status, d1, d2, 0)
		assert.True(t, ok)
		assert.Equal(t, midi.KindPitchBend, ev.Kind)
		assert.Equal(t, byte(3), ev.Channel)
		assert.Equal(t, bend, ev.Bend)
	}
}

func TestEventFromMIDIBytesUnknownStatusIsDropped(t *testing.T) {
	_, ok := eventFromMIDIBytes(0xf8, 0, 0, 0)
	assert.False(t, ok)
}

func TestEncodeMIDIBytesNoteOnOff(t *testing.T) {
	status, d1, d2, ok := encodeMIDIBytes(midi.Event{Kind: midi.KindNoteOn, Channel: 5, Note: 72, Velocity: 90})
	assert.True(t, ok)
	assert.Equal(t, byte(0x95), status)
	assert.Equal(t, byte(72), d1)
	assert.Equal(t, byte(90), d2)

	status, d1, d2, ok = encodeMIDIBytes(midi.Event{Kind: midi.KindNoteOff, Channel: 5, Note: 72, Velocity: 0})
	assert.True(t, ok)
	assert.Equal(t, byte(0x85), status)
	assert.Equal(t, byte(72), d1)
	assert.Equal(t, byte(0), d2)
}

func TestEncodeMIDIBytesUnsupportedKind(t *testing.T) {
	_, _, _, ok := encodeMIDIBytes(midi.Event{Kind: midi.KindSysEx})
	assert.False(t, ok)
}

func TestMIDIByteCodecRoundTripsAllEncodableKinds(t *testing.T) {
	events := []midi.Event{
		{Kind: midi.KindNoteOn, Channel: 0, Note: 60, Velocity: 127},
		{Kind: midi.KindNoteOff, Channel: 1, Note: 61, Velocity: 64},
		{Kind: midi.KindPolyPressure, Channel: 2, Note: 62, Pressure: 80},
		{Kind: midi.KindControlChange, Channel: 3, Controller: 1, Value: 63},
		{Kind: midi.KindProgramChange, Channel: 4, Program: 12},
		{Kind: midi.KindChannelPressure, Channel: 5, Pressure: 100},
	}
	for _, in := range events {
		status, d1, d2, ok := encodeMIDIBytes(in)
		assert.True(t, ok)

		out, ok := eventFromMIDIBytes(status, d1, d2, 0)
		assert.True(t, ok)
		assert.Equal(t, in.Kind, out.Kind)
		assert.Equal(t, in.Channel, out.Channel)
	}
}
