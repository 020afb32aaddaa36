package au

// #include <stdint.h>
import "C"
import (
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/bus"
)

// BusDirection mirrors VST3's input/output split for the side() lookup
// shared between the VST3 and AU wrappers' bus queries.
const (
	BusDirectionInput  = 0
	BusDirectionOutput = 1
)

func (inst *instance) side(direction int32) bus.Side {
	layout := inst.descriptor.Buses()
	if direction == BusDirectionOutput {
		return layout.Output
	}
	return layout.Input
}

//export AUGetBusCount
func AUGetBusCount(handle unsafe.Pointer, direction C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	return C.int32_t(len(inst.side(int32(direction)).Buses))
}

//export AUGetBusChannelCount
func AUGetBusChannelCount(handle unsafe.Pointer, direction, index C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	side := inst.side(int32(direction))
	if index < 0 || int(index) >= len(side.Buses) {
		return 0
	}
	return C.int32_t(side.Buses[index].ChannelCount)
}

//export AUAllocateRenderResources
func AUAllocateRenderResources(handle unsafe.Pointer, sampleRate C.double, maxFrames C.int32_t) C.int32_t {
	defer recoverPanic("AUAllocateRenderResources")
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.sampleRate = float64(sampleRate)
	inst.maxFrames = int(maxFrames)
	if err := inst.driver.Allocate(inst.sampleRate, inst.maxFrames); err != nil {
		return StatusFailure
	}
	inst.doublePrec = inst.descriptor.SupportsDoublePrecision()
	return StatusOK
}

//export AUDeallocateRenderResources
func AUDeallocateRenderResources(handle unsafe.Pointer) {
	inst := getInstance(handle)
	if inst == nil {
		return
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.driver.Deallocate()
}

//export AUSetProcessing
func AUSetProcessing(handle unsafe.Pointer, processing C.int32_t) {
	inst := getInstance(handle)
	if inst == nil {
		return
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.processing = processing != 0
}

//export AUIsPrepared
func AUIsPrepared(handle unsafe.Pointer) C.int32_t {
	inst := getInstance(handle)
	if inst == nil || !inst.driver.IsPrepared() {
		return 0
	}
	return 1
}

//export AUGetLatencySamples
func AUGetLatencySamples(handle unsafe.Pointer) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	return C.int32_t(inst.driver.LatencySamples())
}

//export AUGetTailSamples
func AUGetTailSamples(handle unsafe.Pointer) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return 0
	}
	return C.int32_t(inst.driver.TailSamples())
}

//export AUSetState
func AUSetState(handle unsafe.Pointer, data *C.char, length C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	buf := C.GoBytes(unsafe.Pointer(data), length)
	if err := inst.driver.LoadState(buf); err != nil {
		return StatusFailure
	}
	return StatusOK
}

//export AUGetState
func AUGetState(handle unsafe.Pointer, outData **C.char, outLength *C.int32_t) C.int32_t {
	inst := getInstance(handle)
	if inst == nil {
		return StatusFailure
	}
	data, err := inst.driver.SaveState()
	if err != nil {
		return StatusFailure
	}
	*outData = (*C.char)(C.CBytes(data))
	*outLength = C.int32_t(len(data))
	return StatusOK
}
