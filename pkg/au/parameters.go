package au

// #include <stdint.h>
//
// struct AUParameterInfo {
//     uint32_t id;
//     int32_t stepCount;
//     double defaultValue;
//     char name[256];
//     char unit[32];
// };
import "C"
import (
	"unsafe"
)

//export AUGetParameterCount
func AUGetParameterCount(handle unsafe.Pointer) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	return C.int32_t(inst.descriptor.Parameters().Count())
}

//export AUGetParameterInfo
func AUGetParameterInfo(handle unsafe.Pointer, index C.int32_t, out *C.struct_AUParameterInfo) C.int32_t {
	inst := getInstance(handle)
	if inst == nil || out == nil {
		return StatusFailure
	}
	p, ok := inst.descriptor.Parameters().ByIndex(int(index))
	if !ok {
		return StatusFailure
	}
	info := p.Info()
	out.id = C.uint32_t(p.ID())
	out.stepCount = C.int32_t(info.StepCount)
	out.defaultValue = C.double(info.DefaultValue)
	writeCString(info.Name, &out.name[0], len(out.name))
	writeCString(info.Unit.String(), &out.unit[0], len(out.unit))
	return StatusOK
}

//export AUGetParameterNormalized
func AUGetParameterNormalized(handle unsafe.Pointer, id C.uint32_t) C.double {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	if p, ok := inst.descriptor.Parameters().ByID(uint32(id)); ok {
		return C.double(p.Normalized())
	}
	return 0
}

//export AUSetParameterNormalized
func AUSetParameterNormalized(handle unsafe.Pointer, id C.uint32_t, value C.double) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	p, ok := inst.descriptor.Parameters().ByID(uint32(id))
	if !ok {
		return StatusFailure
	}
	p.SetNormalized(float64(value))
	return StatusOK
}

//export AUGetParameterValueString
func AUGetParameterValueString(handle unsafe.Pointer, id C.uint32_t, value C.double, out *C.char, outLen C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil || out == nil {
		return StatusFailure
	}
	p, ok := inst.descriptor.Parameters().ByID(uint32(id))
	if !ok {
		return StatusFailure
	}
	text, unit := p.DisplayNormalized(float64(value))
	if unit != "" {
		text = text + " " + unit
	}
	writeCString(text, out, int(outLen))
	return StatusOK
}

// writeCString copies s into dst (a C char buffer of the given capacity),
// NUL-terminating and truncating as needed.
func writeCString(s string, dst *C.char, capacity int) {
	if capacity == 0 {
		return
	}
	b := []byte(s)
	n := len(b)
	if n > capacity-1 {
		n = capacity - 1
	}
	out := (*[1 << 16]C.char)(unsafe.Pointer(dst))[:capacity:capacity]
	for i := 0; i < n; i++ {
		out[i] = C.char(b[i])
	}
	out[n] = 0
}
