package vst3

// #cgo CFLAGS: -I../../include
// #include "../../include/vst3/vst3_c_api.h"
// #include "../../bridge/bridge.h"
// #include "../../bridge/component.h"
// #include <stdlib.h>
// #include <string.h>
//
// static inline Steinberg_tresult componentHandler_beginEdit(struct Steinberg_Vst_IComponentHandler* handler, Steinberg_Vst_ParamID id) {
//     if (handler && handler->lpVtbl && handler->lpVtbl->beginEdit) {
//         return handler->lpVtbl->beginEdit(handler, id);
//     }
//     return Steinberg_kResultFalse;
// }
//
// static inline Steinberg_tresult componentHandler_performEdit(struct Steinberg_Vst_IComponentHandler* handler, Steinberg_Vst_ParamID id, Steinberg_Vst_ParamValue value) {
//     if (handler && handler->lpVtbl && handler->lpVtbl->performEdit) {
//         return handler->lpVtbl->performEdit(handler, id, value);
//     }
//     return Steinberg_kResultFalse;
// }
//
// static inline Steinberg_tresult componentHandler_endEdit(struct Steinberg_Vst_IComponentHandler* handler, Steinberg_Vst_ParamID id) {
//     if (handler && handler->lpVtbl && handler->lpVtbl->endEdit) {
//         return handler->lpVtbl->endEdit(handler, id);
//     }
//     return Steinberg_kResultFalse;
// }
import "C"
import (
	"sync"
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/plugin"
)

// Component is the full set of VST3 interfaces componentImpl satisfies.
type Component interface {
	IComponent
	IAudioProcessor
	IEditController
}

// componentWrapper pairs a live Component with the opaque handle the C side
// uses to find it again and the host's IComponentHandler, set once the host
// calls setComponentHandler.
type componentWrapper struct {
	component        Component
	handle           unsafe.Pointer
	id               uintptr
	componentHandler unsafe.Pointer
	handlerMu        sync.RWMutex
}

var (
	components   = make(map[uintptr]*componentWrapper)
	componentsMu sync.RWMutex
	nextID       uintptr = 1
)

// globalDescriptor is the single plugin.Descriptor this build was compiled
// for — a VST3 module exports exactly one plugin per shared library.
var globalDescriptor plugin.Descriptor

// FactoryInfo is the vendor metadata the host reads from GetFactoryInfo.
type FactoryInfo struct {
	Vendor string
	URL    string
	Email  string
}

var globalFactoryInfo = FactoryInfo{
	Vendor: "SoundBridge",
	URL:    "https://soundbridge.dev",
	Email:  "support@soundbridge.dev",
}

// Register sets the descriptor this module's factory will instantiate.
// Called once from the plugin's main/init before the host loads the module.
func Register(d plugin.Descriptor) {
	globalDescriptor = d
}

// SetFactoryInfo overrides the default vendor metadata.
func SetFactoryInfo(info FactoryInfo) {
	globalFactoryInfo = info
}

func recoverPanic(_ string) {
	if r := recover(); r != nil {
		_ = r // a panic crossing the cgo boundary takes the host down with it
	}
}

func registerComponent(wrapper *componentWrapper) uintptr {
	componentsMu.Lock()
	defer componentsMu.Unlock()
	id := nextID
	nextID++
	wrapper.id = id
	components[id] = wrapper
	return id
}

func unregisterComponent(id uintptr) {
	componentsMu.Lock()
	defer componentsMu.Unlock()
	delete(components, id)
}

func getComponent(id uintptr) *componentWrapper {
	componentsMu.RLock()
	defer componentsMu.RUnlock()
	if id == 0 {
		return nil
	}
	wrapper, exists := components[id]
	if !exists {
		return nil
	}
	return wrapper
}

func (w *componentWrapper) notifyParamBeginEdit(paramID uint32) {
	w.handlerMu.RLock()
	handler := w.componentHandler
	w.handlerMu.RUnlock()
	if handler == nil {
		return
	}
	C.componentHandler_beginEdit((*C.Steinberg_Vst_IComponentHandler)(handler), C.Steinberg_Vst_ParamID(paramID))
}

func (w *componentWrapper) notifyParamPerformEdit(paramID uint32, valueNormalized float64) {
	w.handlerMu.RLock()
	handler := w.componentHandler
	w.handlerMu.RUnlock()
	if handler == nil {
		return
	}
	C.componentHandler_performEdit((*C.Steinberg_Vst_IComponentHandler)(handler), C.Steinberg_Vst_ParamID(paramID), C.Steinberg_Vst_ParamValue(valueNormalized))
}

func (w *componentWrapper) notifyParamEndEdit(paramID uint32) {
	w.handlerMu.RLock()
	handler := w.componentHandler
	w.handlerMu.RUnlock()
	if handler == nil {
		return
	}
	C.componentHandler_endEdit((*C.Steinberg_Vst_IComponentHandler)(handler), C.Steinberg_Vst_ParamID(paramID))
}

//export GoGetFactoryInfo
func GoGetFactoryInfo(vendor, url, email *C.char, flags *C.int32_t) {
	C.strcpy(vendor, C.CString(globalFactoryInfo.Vendor))
	C.strcpy(url, C.CString(globalFactoryInfo.URL))
	C.strcpy(email, C.CString(globalFactoryInfo.Email))
	*flags = C.Steinberg_PFactoryInfo_FactoryFlags_kUnicode
}

//export GoCountClasses
func GoCountClasses() C.int32_t {
	if globalDescriptor == nil {
		return 0
	}
	return 1
}

//export GoGetClassInfo
func GoGetClassInfo(index C.int32_t, cid *C.char, cardinality *C.int32_t, category, name *C.char) {
	if globalDescriptor == nil || index != 0 {
		return
	}
	info := globalDescriptor.Info()
	uid := info.ClassID()
	C.memcpy(unsafe.Pointer(cid), unsafe.Pointer(&uid[0]), 16)
	*cardinality = C.Steinberg_PClassInfo_ClassCardinality_kManyInstances
	C.strcpy(category, C.CString(CategoryAudioEffect))
	C.strcpy(name, C.CString(info.Name))
}

//export GoCreateInstance
func GoCreateInstance(cid *C.char, _ *C.char) unsafe.Pointer {
	defer recoverPanic("GoCreateInstance")

	if globalDescriptor == nil {
		return nil
	}

	var requestedCID [16]byte
	C.memcpy(unsafe.Pointer(&requestedCID[0]), unsafe.Pointer(cid), 16)

	if requestedCID != globalDescriptor.Info().ClassID() {
		return nil
	}

	component := newComponent(globalDescriptor)
	wrapper := &componentWrapper{component: component}
	component.wrapper = wrapper

	id := registerComponent(wrapper)

	cComponent := C.createComponent(unsafe.Pointer(id))
	if cComponent == nil {
		unregisterComponent(id)
		return nil
	}
	wrapper.handle = cComponent
	return cComponent
}

//export GoReleaseComponent
func GoReleaseComponent(componentPtr unsafe.Pointer) {
	id := uintptr(componentPtr)
	if id == 0 {
		return
	}
	unregisterComponent(id)
}

//export GoComponentInitialize
func GoComponentInitialize(componentPtr unsafe.Pointer, context unsafe.Pointer) C.Steinberg_tresult {
	defer recoverPanic("GoComponentInitialize")
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.Initialize(context); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentTerminate
func GoComponentTerminate(componentPtr unsafe.Pointer) C.Steinberg_tresult {
	defer recoverPanic("GoComponentTerminate")
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.Terminate(); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentGetControllerClassId
func GoComponentGetControllerClassId(componentPtr unsafe.Pointer, classId *C.char) {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return
	}
	uid := wrapper.component.GetControllerClassID()
	C.memcpy(unsafe.Pointer(classId), unsafe.Pointer(&uid[0]), 16)
}

//export GoComponentSetIoMode
func GoComponentSetIoMode(componentPtr unsafe.Pointer, mode C.int32_t) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.SetIOMode(int32(mode)); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentGetBusCount
func GoComponentGetBusCount(componentPtr unsafe.Pointer, mediaType, dir C.int32_t) C.int32_t {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return 0
	}
	return C.int32_t(wrapper.component.GetBusCount(int32(mediaType), int32(dir)))
}

//export GoComponentGetBusInfo
func GoComponentGetBusInfo(componentPtr unsafe.Pointer, mediaType, dir, index C.int32_t, busPtr unsafe.Pointer) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	info, err := wrapper.component.GetBusInfo(int32(mediaType), int32(dir), int32(index))
	if err != nil || info == nil {
		return C.Steinberg_tresult(ResultFalse)
	}

	cBus := (*C.struct_Steinberg_Vst_BusInfo)(busPtr)
	cBus.mediaType = C.Steinberg_Vst_MediaType(info.MediaType)
	cBus.direction = C.Steinberg_Vst_BusDirection(info.Direction)
	cBus.channelCount = C.Steinberg_int32(info.ChannelCount)

	nameBytes := []byte(info.Name)
	if len(nameBytes) > 127 {
		nameBytes = nameBytes[:127]
	}
	for i, b := range nameBytes {
		cBus.name[i] = C.Steinberg_char16(b)
	}
	cBus.name[len(nameBytes)] = 0

	cBus.busType = C.Steinberg_Vst_BusType(info.BusType)
	cBus.flags = C.Steinberg_uint32(info.Flags)

	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentActivateBus
func GoComponentActivateBus(componentPtr unsafe.Pointer, mediaType, dir, index, state C.int32_t) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.ActivateBus(int32(mediaType), int32(dir), int32(index), state != 0); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentSetActive
func GoComponentSetActive(componentPtr unsafe.Pointer, state C.int32_t) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.SetActive(state != 0); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentSetState
func GoComponentSetState(componentPtr unsafe.Pointer, state unsafe.Pointer) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	streamWrapper := NewStreamWrapper(state)
	if streamWrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	stateData, err := streamWrapper.ReadAll()
	if err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.SetState(stateData); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoComponentGetState
func GoComponentGetState(componentPtr unsafe.Pointer, state unsafe.Pointer) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	stateData, err := wrapper.component.GetState()
	if err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	streamWrapper := NewStreamWrapper(state)
	if streamWrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if _, err := streamWrapper.Write(stateData); err != nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	return C.Steinberg_tresult(ResultOK)
}
