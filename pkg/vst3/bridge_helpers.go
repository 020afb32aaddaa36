package vst3

// #include "../../include/vst3/vst3_c_api.h"
// #include "../../bridge/bridge.h"
//
// static inline float** getChannelBuffers32(struct Steinberg_Vst_AudioBusBuffers* bus) {
//     return bus->Steinberg_Vst_AudioBusBuffers_channelBuffers32;
// }
import "C"
import (
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/adapter"
)

// mapChannels walks one AudioBusBuffers' channel pointer array and invokes
// set(channelIndex, pointer) for each, including nil pointers (a host may
// legitimately pass a null channel pointer, most commonly for an
// instrument's unconnected Main output).
func mapChannels(busBuffers *C.struct_Steinberg_Vst_AudioBusBuffers, set func(ch int, p unsafe.Pointer)) {
	if busBuffers == nil || busBuffers.numChannels == 0 {
		return
	}
	channelBuffers32 := C.getChannelBuffers32(busBuffers)
	if channelBuffers32 == nil {
		return
	}
	n := int(busBuffers.numChannels)
	channels := (*[vst3MaxChannels]*C.float)(unsafe.Pointer(channelBuffers32))[:n:n]
	for i, ch := range channels {
		set(i, unsafe.Pointer(ch))
	}
}

// vst3MaxChannels bounds the fixed-size array cast above; it only needs to
// exceed any channel count a real host arrangement will ever carry.
const vst3MaxChannels = 64

// collectParameterEvents drains a host's IParameterChanges queue into the
// adapter's event shape. Sample-accurate sub-block splitting is not
// performed here (see adapter.ParameterEvent's doc): every point's value is
// applied as a new normalized target and the parameter's own smoother
// interpolates toward it.
func collectParameterEvents(changes unsafe.Pointer) []adapter.ParameterEvent {
	paramCount := C.getParameterChangeCount(changes)
	if paramCount == 0 {
		return nil
	}
	var events []adapter.ParameterEvent
	for i := C.int32_t(0); i < paramCount; i++ {
		queue := C.getParameterData(changes, i)
		if queue == nil {
			continue
		}
		paramID := C.getParameterId(queue)
		pointCount := C.getPointCount(queue)
		for j := C.int32_t(0); j < pointCount; j++ {
			var sampleOffset C.int32_t
			var value C.double
			if C.getPoint(queue, j, &sampleOffset, &value) == 0 {
				events = append(events, adapter.ParameterEvent{
					ID:           uint32(paramID),
					Value:        float64(value),
					SampleOffset: int32(sampleOffset),
				})
			}
		}
	}
	return events
}

// copyStringToTChar copies a Go string into a VST3 TChar (UTF-16) buffer.
func copyStringToTChar(src string, dst *C.Steinberg_Vst_TChar, maxLen int) {
	runes := []rune(src)
	n := len(runes)
	if n > maxLen-1 {
		n = maxLen - 1
	}
	for i := 0; i < n; i++ {
		*(*C.Steinberg_char16)(unsafe.Pointer(
			uintptr(unsafe.Pointer(dst)) + uintptr(i*2))) = C.Steinberg_char16(runes[i])
	}
	*(*C.Steinberg_char16)(unsafe.Pointer(
		uintptr(unsafe.Pointer(dst)) + uintptr(n*2))) = 0
}

// stringFromTChar converts a VST3 TChar (UTF-16) buffer to a Go string.
func stringFromTChar(src *C.Steinberg_Vst_TChar) string {
	if src == nil {
		return ""
	}
	length := 0
	for {
		ch := *(*C.Steinberg_char16)(unsafe.Pointer(
			uintptr(unsafe.Pointer(src)) + uintptr(length*2)))
		if ch == 0 {
			break
		}
		length++
	}
	runes := make([]rune, length)
	for i := 0; i < length; i++ {
		runes[i] = rune(*(*C.Steinberg_char16)(unsafe.Pointer(
			uintptr(unsafe.Pointer(src)) + uintptr(i*2))))
	}
	return string(runes)
}
