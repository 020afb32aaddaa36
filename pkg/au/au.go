package au

// #include <stdint.h>
import "C"
import (
	"sync"
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/adapter"
	"github.com/soundbridge/soundbridge/pkg/plugin"
)

// OSStatus-shaped result codes returned across the C-ABI boundary. Real
// AU hosts interpret 0 as success and any nonzero value as failure; unlike
// VST3's enumerated kResultOk/kResultFalse, AU conventionally reserves
// specific negative values per Core Audio error (paramErr, fileNotFoundErr
// etc). A thin native wrapper is responsible for translating Failure into
// whatever OSStatus its own call site expects.
const (
	StatusOK      C.int32_t = 0
	StatusFailure C.int32_t = -1
)

// instance pairs one adapter.Adapter with the native-side opaque handle
// that identifies it across calls. One instance exists per
// AUCreateInstance call; an AUv3 extension process hosts exactly one.
type instance struct {
	descriptor plugin.Descriptor
	driver     *adapter.Adapter

	mu           sync.RWMutex
	sampleRate   float64
	maxFrames    int
	processing   bool
	doublePrec   bool

	id uintptr
}

func newInstance(descriptor plugin.Descriptor) *instance {
	return &instance{
		descriptor: descriptor,
		driver:     adapter.New(descriptor),
		sampleRate: 48000.0,
		maxFrames:  4096,
	}
}

var (
	instances   = make(map[uintptr]*instance)
	instancesMu sync.RWMutex
	nextID      uintptr = 1

	globalDescriptor plugin.Descriptor
	globalConfig     Config
)

// Register sets the descriptor and AU identity this module's factory will
// instantiate. Called once from the plugin's main/init before the host
// loads the component or extension.
func Register(d plugin.Descriptor, cfg Config) {
	globalDescriptor = d
	globalConfig = cfg
}

func recoverPanic(_ string) {
	if r := recover(); r != nil {
		_ = r // a panic crossing the cgo boundary takes the host down with it
	}
}

func registerInstance(inst *instance) uintptr {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	id := nextID
	nextID++
	inst.id = id
	instances[id] = inst
	return id
}

func unregisterInstance(id uintptr) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, id)
}

func getInstance(handle unsafe.Pointer) *instance {
	id := uintptr(handle)
	if id == 0 {
		return nil
	}
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return instances[id]
}

//export AUCreateInstance
func AUCreateInstance() unsafe.Pointer {
	defer recoverPanic("AUCreateInstance")
	if globalDescriptor == nil {
		return nil
	}
	inst := newInstance(globalDescriptor)
	id := registerInstance(inst)
	return unsafe.Pointer(id)
}

//export AUDestroyInstance
func AUDestroyInstance(handle unsafe.Pointer) {
	inst := getInstance(handle)
	if inst == nil {
		return
	}
	inst.driver.Deallocate()
	unregisterInstance(inst.id)
}

//export AUGetManufacturerCode
func AUGetManufacturerCode() C.uint32_t {
	return C.uint32_t(globalConfig.Manufacturer.AsUint32())
}

//export AUGetSubtypeCode
func AUGetSubtypeCode() C.uint32_t {
	return C.uint32_t(globalConfig.Subtype.AsUint32())
}

//export AUGetComponentTypeCode
func AUGetComponentTypeCode() C.uint32_t {
	return C.uint32_t(globalConfig.ComponentType.AsUint32())
}
