package vst3

// #include "../../include/vst3/vst3_c_api.h"
// #include "../../bridge/bridge.h"
// #include <string.h>
//
// static inline Steinberg_int32 eventList_getCount(struct Steinberg_Vst_IEventList* list) {
//     if (list && list->lpVtbl && list->lpVtbl->getEventCount) {
//         return list->lpVtbl->getEventCount(list);
//     }
//     return 0;
// }
//
// static inline Steinberg_tresult eventList_getEventInfo(
//     struct Steinberg_Vst_IEventList* list, Steinberg_int32 index,
//     Steinberg_uint16* outType, Steinberg_int32* outSampleOffset,
//     Steinberg_int16* outChannel, Steinberg_int16* outPitch, float* outValue,
//     Steinberg_int32* outNoteId, Steinberg_uint8* outCCNumber, Steinberg_int8* outCCValue) {
//     struct Steinberg_Vst_Event e;
//     if (!list || !list->lpVtbl || !list->lpVtbl->getEvent) {
//         return Steinberg_kResultFalse;
//     }
//     if (list->lpVtbl->getEvent(list, index, &e) != 0) {
//         return Steinberg_kResultFalse;
//     }
//     *outType = e.type;
//     *outSampleOffset = e.sampleOffset;
//     switch (e.type) {
//     case Steinberg_Vst_Event_EventTypes_kNoteOnEvent:
//         *outChannel = e.noteOn.channel;
//         *outPitch = e.noteOn.pitch;
//         *outValue = e.noteOn.velocity;
//         *outNoteId = e.noteOn.noteId;
//         break;
//     case Steinberg_Vst_Event_EventTypes_kNoteOffEvent:
//         *outChannel = e.noteOff.channel;
//         *outPitch = e.noteOff.pitch;
//         *outValue = e.noteOff.velocity;
//         *outNoteId = e.noteOff.noteId;
//         break;
//     case Steinberg_Vst_Event_EventTypes_kPolyPressureEvent:
//         *outChannel = e.polyPressure.channel;
//         *outPitch = e.polyPressure.pitch;
//         *outValue = e.polyPressure.pressure;
//         *outNoteId = e.polyPressure.noteId;
//         break;
//     case Steinberg_Vst_Event_EventTypes_kLegacyMIDICCOutEvent:
//         *outChannel = e.midiCCOut.channel;
//         *outCCNumber = e.midiCCOut.controlNumber;
//         *outCCValue = e.midiCCOut.value;
//         break;
//     default:
//         break;
//     }
//     return 0;
// }
//
// static inline Steinberg_tresult eventList_addNoteOn(
//     struct Steinberg_Vst_IEventList* list, Steinberg_int32 sampleOffset,
//     Steinberg_int16 channel, Steinberg_int16 pitch, float velocity, Steinberg_int32 noteId) {
//     struct Steinberg_Vst_Event e;
//     memset(&e, 0, sizeof(e));
//     e.type = Steinberg_Vst_Event_EventTypes_kNoteOnEvent;
//     e.sampleOffset = sampleOffset;
//     e.noteOn.channel = channel;
//     e.noteOn.pitch = pitch;
//     e.noteOn.velocity = velocity;
//     e.noteOn.noteId = noteId;
//     if (!list || !list->lpVtbl || !list->lpVtbl->addEvent) return Steinberg_kResultFalse;
//     return list->lpVtbl->addEvent(list, &e);
// }
//
// static inline Steinberg_tresult eventList_addNoteOff(
//     struct Steinberg_Vst_IEventList* list, Steinberg_int32 sampleOffset,
//     Steinberg_int16 channel, Steinberg_int16 pitch, float velocity, Steinberg_int32 noteId) {
//     struct Steinberg_Vst_Event e;
//     memset(&e, 0, sizeof(e));
//     e.type = Steinberg_Vst_Event_EventTypes_kNoteOffEvent;
//     e.sampleOffset = sampleOffset;
//     e.noteOff.channel = channel;
//     e.noteOff.pitch = pitch;
//     e.noteOff.velocity = velocity;
//     e.noteOff.noteId = noteId;
//     if (!list || !list->lpVtbl || !list->lpVtbl->addEvent) return Steinberg_kResultFalse;
//     return list->lpVtbl->addEvent(list, &e);
// }
//
// static inline Steinberg_tresult eventList_addLegacyMIDICCOut(
//     struct Steinberg_Vst_IEventList* list, Steinberg_int32 sampleOffset,
//     Steinberg_int8 channel, Steinberg_uint8 ccNumber, Steinberg_int8 value) {
//     struct Steinberg_Vst_Event e;
//     memset(&e, 0, sizeof(e));
//     e.type = Steinberg_Vst_Event_EventTypes_kLegacyMIDICCOutEvent;
//     e.sampleOffset = sampleOffset;
//     e.midiCCOut.channel = channel;
//     e.midiCCOut.controlNumber = ccNumber;
//     e.midiCCOut.value = value;
//     if (!list || !list->lpVtbl || !list->lpVtbl->addEvent) return Steinberg_kResultFalse;
//     return list->lpVtbl->addEvent(list, &e);
// }
import "C"

import (
	"github.com/soundbridge/soundbridge/pkg/midi"
)

// collectInputEvents drains a host's IEventList into buf, translating VST3
// Note On/Off, poly pressure, and legacy MIDI CC-out events into this
// package's own midi.Event shape. Event kinds this project has no Event
// representation for (note expression, chord, scale, raw data) are
// dropped, the same MIDI-1.0-only treatment pkg/au's eventFromMIDIBytes
// gives unrecognized status bytes.
func collectInputEvents(list *C.struct_Steinberg_Vst_IEventList, buf *midi.Buffer) {
	if list == nil || buf == nil {
		return
	}
	count := C.eventList_getCount(list)
	for i := C.Steinberg_int32(0); i < count; i++ {
		var evType C.Steinberg_uint16
		var sampleOffset C.Steinberg_int32
		var channel, pitch C.Steinberg_int16
		var value C.float
		var noteID C.Steinberg_int32
		var ccNumber C.Steinberg_uint8
		var ccValue C.Steinberg_int8
		if C.eventList_getEventInfo(list, i, &evType, &sampleOffset, &channel, &pitch, &value, &noteID, &ccNumber, &ccValue) != 0 {
			continue
		}
		if ev, ok := midiEventFromVST3(evType, int32(sampleOffset), channel, pitch, float32(value), int32(noteID), uint8(ccNumber), ccValue); ok {
			buf.Push(ev)
		}
	}
}

func midiEventFromVST3(evType C.Steinberg_uint16, sampleOffset int32, channel, pitch C.Steinberg_int16, value float32, noteID int32, ccNumber uint8, ccValue C.Steinberg_int8) (midi.Event, bool) {
	switch evType {
	case C.Steinberg_Vst_Event_EventTypes_kNoteOnEvent:
		return midi.Event{Kind: midi.KindNoteOn, Channel: uint8(channel), Note: uint8(pitch), Velocity: velocityToByte(value), NoteID: noteID, SampleOffset: sampleOffset}, true
	case C.Steinberg_Vst_Event_EventTypes_kNoteOffEvent:
		return midi.Event{Kind: midi.KindNoteOff, Channel: uint8(channel), Note: uint8(pitch), Velocity: velocityToByte(value), NoteID: noteID, SampleOffset: sampleOffset}, true
	case C.Steinberg_Vst_Event_EventTypes_kPolyPressureEvent:
		b := velocityToByte(value)
		return midi.Event{Kind: midi.KindPolyPressure, Channel: uint8(channel), Note: uint8(pitch), Value: b, Pressure: b, NoteID: noteID, SampleOffset: sampleOffset}, true
	case C.Steinberg_Vst_Event_EventTypes_kLegacyMIDICCOutEvent:
		return midi.Event{Kind: midi.KindControlChange, Channel: uint8(channel), Controller: ccNumber, Value: uint8(int8(ccValue)), SampleOffset: sampleOffset}, true
	default:
		return midi.Event{}, false
	}
}

// velocityToByte converts VST3's [0,1] float velocity/pressure to the
// 0-127 byte range this package's midi.Event carries.
func velocityToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 127
	}
	return uint8(v * 127)
}

// emitOutputEvents drains buf into the host's IEventList, the inverse of
// collectInputEvents for the event kinds this package can round-trip.
func emitOutputEvents(list *C.struct_Steinberg_Vst_IEventList, buf *midi.Buffer) {
	if list == nil || buf == nil {
		return
	}
	for _, ev := range buf.Events() {
		switch ev.Kind {
		case midi.KindNoteOn:
			C.eventList_addNoteOn(list, C.Steinberg_int32(ev.SampleOffset), C.Steinberg_int16(ev.Channel), C.Steinberg_int16(ev.Note), C.float(float32(ev.Velocity)/127.0), C.Steinberg_int32(ev.NoteID))
		case midi.KindNoteOff:
			C.eventList_addNoteOff(list, C.Steinberg_int32(ev.SampleOffset), C.Steinberg_int16(ev.Channel), C.Steinberg_int16(ev.Note), C.float(float32(ev.Velocity)/127.0), C.Steinberg_int32(ev.NoteID))
		case midi.KindControlChange:
			C.eventList_addLegacyMIDICCOut(list, C.Steinberg_int32(ev.SampleOffset), C.Steinberg_int8(ev.Channel), C.Steinberg_uint8(ev.Controller), C.Steinberg_int8(ev.Value))
		}
	}
}
