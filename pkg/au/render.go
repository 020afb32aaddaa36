package au

// #include <stdint.h>
//
// struct AUBusBuffer {
//     float** channels;
//     int32_t numChannels;
// };
//
// struct AUTransportInfo {
//     int32_t playing;
//     int32_t looping;
//     double tempo;
//     int32_t timeSigNum;
//     int32_t timeSigDenom;
//     double beatPositionPPQ;
//     double barPositionPPQ;
//     double loopStartPPQ;
//     double loopEndPPQ;
// };
//
// struct AUParameterEvent {
//     uint32_t id;
//     double value;
//     int32_t sampleOffset;
// };
//
// struct AUMidiEvent {
//     uint8_t status;
//     uint8_t data1;
//     uint8_t data2;
//     int32_t sampleOffset;
// };
import "C"
import (
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/adapter"
	"github.com/soundbridge/soundbridge/pkg/buffer"
	"github.com/soundbridge/soundbridge/pkg/midi"
	"github.com/soundbridge/soundbridge/pkg/process"
)

const auMaxChannels = 64

// mapAUBuses walks an array of AUBusBuffer entries (index 0 is always
// Main; any further entries are Aux, in declaration order) and invokes set
// for every channel pointer.
func mapAUBuses(buses *C.struct_AUBusBuffer, count int32, set func(busIdx, ch int, p unsafe.Pointer)) {
	if buses == nil || count == 0 {
		return
	}
	busSlice := (*[1 << 16]C.struct_AUBusBuffer)(unsafe.Pointer(buses))[:count:count]
	for busIdx, b := range busSlice {
		if b.channels == nil || b.numChannels == 0 {
			continue
		}
		n := int(b.numChannels)
		channels := (*[auMaxChannels]*C.float)(unsafe.Pointer(b.channels))[:n:n]
		for ch, p := range channels {
			set(busIdx, ch, unsafe.Pointer(p))
		}
	}
}

func scatterMainAndAux[S buffer.Sample](storage *buffer.PointerStorage[S], buses *C.struct_AUBusBuffer, count int32, input bool) {
	mapAUBuses(buses, count, func(busIdx, ch int, p unsafe.Pointer) {
		if busIdx == 0 {
			if input {
				storage.SetMainInChannel(ch, p)
			} else {
				storage.SetMainOutChannel(ch, p)
			}
			return
		}
		aux := busIdx - 1
		if input {
			storage.SetAuxInChannel(aux, ch, p)
		} else {
			storage.SetAuxOutChannel(aux, ch, p)
		}
	})
}

func transportFromAU(info *C.struct_AUTransportInfo) process.Transport {
	if info == nil {
		return process.Transport{}
	}
	return process.Transport{
		Playing:         info.playing != 0,
		Looping:         info.looping != 0,
		Tempo:           float64(info.tempo),
		TimeSigNum:      int(info.timeSigNum),
		TimeSigDenom:    int(info.timeSigDenom),
		BeatPositionPPQ: float64(info.beatPositionPPQ),
		BarPositionPPQ:  float64(info.barPositionPPQ),
		LoopStartPPQ:    float64(info.loopStartPPQ),
		LoopEndPPQ:      float64(info.loopEndPPQ),
	}
}

func collectAUParameterEvents(events *C.struct_AUParameterEvent, count int32) []adapter.ParameterEvent {
	if events == nil || count == 0 {
		return nil
	}
	raw := (*[1 << 16]C.struct_AUParameterEvent)(unsafe.Pointer(events))[:count:count]
	out := make([]adapter.ParameterEvent, len(raw))
	for i, ev := range raw {
		out[i] = adapter.ParameterEvent{
			ID:           uint32(ev.id),
			Value:        float64(ev.value),
			SampleOffset: int32(ev.sampleOffset),
		}
	}
	return out
}

// eventFromMIDIBytes decodes a raw MIDI 1.0 status/data1/data2 triple (as
// delivered by AU's MIDIEventListBlock) into an Event. Unrecognized status
// nibbles are dropped rather than forwarded as KindSysEx-shaped garbage.
func eventFromMIDIBytes(status, data1, data2 byte, sampleOffset int32) (midi.Event, bool) {
	channel := status & 0x0f
	switch status & 0xf0 {
	case 0x90:
		if data2 == 0 {
			return midi.Event{Kind: midi.KindNoteOff, Channel: channel, Note: data1, Velocity: 0, NoteID: -1, SampleOffset: sampleOffset}, true
		}
		return midi.Event{Kind: midi.KindNoteOn, Channel: channel, Note: data1, Velocity: data2, NoteID: -1, SampleOffset: sampleOffset}, true
	case 0x80:
		return midi.Event{Kind: midi.KindNoteOff, Channel: channel, Note: data1, Velocity: data2, NoteID: -1, SampleOffset: sampleOffset}, true
	case 0xa0:
		return midi.Event{Kind: midi.KindPolyPressure, Channel: channel, Note: data1, Value: data2, Pressure: data2, NoteID: -1, SampleOffset: sampleOffset}, true
	case 0xb0:
		return midi.Event{Kind: midi.KindControlChange, Channel: channel, Controller: data1, Value: data2, SampleOffset: sampleOffset}, true
	case 0xc0:
		return midi.Event{Kind: midi.KindProgramChange, Channel: channel, Program: data1, SampleOffset: sampleOffset}, true
	case 0xd0:
		return midi.Event{Kind: midi.KindChannelPressure, Channel: channel, Pressure: data1, Value: data1, SampleOffset: sampleOffset}, true
	case 0xe0:
		bend := int16(uint16(data1)|uint16(data2)<<7) - 8192
		return midi.Event{Kind: midi.KindPitchBend, Channel: channel, Bend: bend, SampleOffset: sampleOffset}, true
	default:
		return midi.Event{}, false
	}
}

// encodeMIDIBytes is eventFromMIDIBytes's inverse, used to hand a
// processor's output events back to the host as raw MIDI 1.0 bytes.
func encodeMIDIBytes(ev midi.Event) (status, data1, data2 byte, ok bool) {
	switch ev.Kind {
	case midi.KindNoteOn:
		return 0x90 | ev.Channel, ev.Note, ev.Velocity, true
	case midi.KindNoteOff:
		return 0x80 | ev.Channel, ev.Note, ev.Velocity, true
	case midi.KindPolyPressure:
		return 0xa0 | ev.Channel, ev.Note, ev.Pressure, true
	case midi.KindControlChange:
		return 0xb0 | ev.Channel, ev.Controller, ev.Value, true
	case midi.KindProgramChange:
		return 0xc0 | ev.Channel, ev.Program, 0, true
	case midi.KindChannelPressure:
		return 0xd0 | ev.Channel, ev.Pressure, 0, true
	case midi.KindPitchBend:
		biased := uint16(ev.Bend + 8192)
		return 0xe0 | ev.Channel, byte(biased & 0x7f), byte((biased >> 7) & 0x7f), true
	default:
		return 0, 0, 0, false
	}
}

func pushAUMidiEvents(buf *midi.Buffer, events *C.struct_AUMidiEvent, count int32) {
	if buf == nil || events == nil || count == 0 {
		return
	}
	raw := (*[1 << 16]C.struct_AUMidiEvent)(unsafe.Pointer(events))[:count:count]
	for _, ev := range raw {
		if decoded, ok := eventFromMIDIBytes(byte(ev.status), byte(ev.data1), byte(ev.data2), int32(ev.sampleOffset)); ok {
			buf.Push(decoded)
		}
	}
}

//export AURenderProcessF32
func AURenderProcessF32(
	handle unsafe.Pointer,
	numFrames C.int32_t,
	inputBuses *C.struct_AUBusBuffer, numInputBuses C.int32_t,
	outputBuses *C.struct_AUBusBuffer, numOutputBuses C.int32_t,
	paramEvents *C.struct_AUParameterEvent, numParamEvents C.int32_t,
	midiEvents *C.struct_AUMidiEvent, numMidiEvents C.int32_t,
	transport *C.struct_AUTransportInfo,
) C.int32_t {
	defer recoverPanic("AURenderProcessF32")
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	inst.mu.RLock()
	defer inst.mu.RUnlock()
	if !inst.processing || !inst.driver.IsPrepared() {
		return StatusFailure
	}

	inst.driver.ClearRenderBuffers()
	storage := inst.driver.Storage32()
	scatterMainAndAux(storage, inputBuses, int32(numInputBuses), true)
	scatterMainAndAux(storage, outputBuses, int32(numOutputBuses), false)

	if events := collectAUParameterEvents(paramEvents, int32(numParamEvents)); len(events) > 0 {
		inst.driver.ApplyParameterEvents(events)
	}

	pushAUMidiEvents(inst.driver.MIDIInput(), midiEvents, int32(numMidiEvents))
	if err := inst.driver.ProcessMIDI(); err != nil {
		return StatusFailure
	}

	if err := inst.driver.Process32(int(numFrames), transportFromAU(transport)); err != nil {
		return StatusFailure
	}
	return StatusOK
}

//export AURenderProcessF64
func AURenderProcessF64(
	handle unsafe.Pointer,
	numFrames C.int32_t,
	inputBuses *C.struct_AUBusBuffer, numInputBuses C.int32_t,
	outputBuses *C.struct_AUBusBuffer, numOutputBuses C.int32_t,
	paramEvents *C.struct_AUParameterEvent, numParamEvents C.int32_t,
	midiEvents *C.struct_AUMidiEvent, numMidiEvents C.int32_t,
	transport *C.struct_AUTransportInfo,
) C.int32_t {
	defer recoverPanic("AURenderProcessF64")
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	inst.mu.RLock()
	defer inst.mu.RUnlock()
	if !inst.processing || !inst.driver.IsPrepared() || !inst.doublePrec {
		return StatusFailure
	}

	inst.driver.ClearRenderBuffers()
	storage := inst.driver.Storage64()
	scatterMainAndAux(storage, inputBuses, int32(numInputBuses), true)
	scatterMainAndAux(storage, outputBuses, int32(numOutputBuses), false)

	if events := collectAUParameterEvents(paramEvents, int32(numParamEvents)); len(events) > 0 {
		inst.driver.ApplyParameterEvents(events)
	}

	pushAUMidiEvents(inst.driver.MIDIInput(), midiEvents, int32(numMidiEvents))
	if err := inst.driver.ProcessMIDI(); err != nil {
		return StatusFailure
	}

	if err := inst.driver.Process64(int(numFrames), transportFromAU(transport)); err != nil {
		return StatusFailure
	}
	return StatusOK
}

//export AURenderDrainMIDIOutput
func AURenderDrainMIDIOutput(handle unsafe.Pointer, out *C.struct_AUMidiEvent, capacity C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	midiOut := inst.driver.MIDIOutput()
	if midiOut == nil {
		return 0
	}
	events := midiOut.Events()
	n := len(events)
	if n > int(capacity) {
		n = int(capacity)
	}
	if n == 0 {
		return 0
	}
	dst := (*[1 << 16]C.struct_AUMidiEvent)(unsafe.Pointer(out))[:n:n]
	written := 0
	for i := 0; i < n; i++ {
		status, data1, data2, ok := encodeMIDIBytes(events[i])
		if !ok {
			continue
		}
		dst[written] = C.struct_AUMidiEvent{
			status:       C.uint8_t(status),
			data1:        C.uint8_t(data1),
			data2:        C.uint8_t(data2),
			sampleOffset: C.int32_t(events[i].SampleOffset),
		}
		written++
	}
	return C.int32_t(written)
}
