package vst3

// #include "../../include/vst3/vst3_c_api.h"
// #include "../../bridge/bridge.h"
import "C"
import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/soundbridge/soundbridge/pkg/adapter"
	"github.com/soundbridge/soundbridge/pkg/bus"
	"github.com/soundbridge/soundbridge/pkg/param"
	"github.com/soundbridge/soundbridge/pkg/plugin"
	"github.com/soundbridge/soundbridge/pkg/process"
)

const defaultSampleRate = 48000.0
const defaultMaxBlockSize = int32(8192)

// componentImpl implements IComponent/IAudioProcessor/IEditController over a
// single plugin.Descriptor, dispatching every render/parameter/state call
// through an adapter.Adapter rather than touching a processor directly. One
// instance is created per GoCreateInstance call.
type componentImpl struct {
	descriptor plugin.Descriptor
	driver     *adapter.Adapter

	sampleRate   float64
	maxBlockSize int32
	processing   bool
	mu           sync.RWMutex

	wrapper *componentWrapper
}

func newComponent(descriptor plugin.Descriptor) *componentImpl {
	return &componentImpl{
		descriptor:   descriptor,
		driver:       adapter.New(descriptor),
		sampleRate:   defaultSampleRate,
		maxBlockSize: defaultMaxBlockSize,
	}
}

// IPluginBase / IComponent

func (c *componentImpl) Initialize(_ interface{}) error {
	return nil
}

func (c *componentImpl) Terminate() error {
	c.driver.Deallocate()
	return nil
}

func (c *componentImpl) GetControllerClassID() [16]byte {
	return c.descriptor.Info().ControllerClassID()
}

func (c *componentImpl) SetIOMode(_ int32) error { return nil }

func (c *componentImpl) GetBusCount(mediaType, direction int32) int32 {
	if mediaType != MediaTypeAudio {
		return 0
	}
	return int32(len(c.side(direction).Buses))
}

func (c *componentImpl) GetBusInfo(mediaType, direction, index int32) (*BusInfo, error) {
	if mediaType != MediaTypeAudio {
		return nil, ErrNotImplemented
	}
	side := c.side(direction)
	if index < 0 || int(index) >= len(side.Buses) {
		return nil, ErrNotImplemented
	}
	info := side.Buses[index]
	busType := int32(BusTypeMain)
	if info.Kind == bus.Aux {
		busType = int32(BusTypeAux)
	}
	flags := uint32(0)
	if info.DefaultActive {
		flags = 1
	}
	return &BusInfo{
		MediaType:    mediaType,
		Direction:    direction,
		ChannelCount: int32(info.ChannelCount),
		Name:         info.Name,
		BusType:      busType,
		Flags:        flags,
	}, nil
}

func (c *componentImpl) side(direction int32) bus.Side {
	layout := c.descriptor.Buses()
	if direction == BusDirectionOutput {
		return layout.Output
	}
	return layout.Input
}

func (c *componentImpl) GetRoutingInfo(_, _ interface{}) error { return ErrNotImplemented }

func (c *componentImpl) ActivateBus(_, _, _ int32, _ bool) error { return nil }

func (c *componentImpl) SetActive(active bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.driver.IsPrepared() {
		if err := c.driver.Allocate(c.sampleRate, int(c.maxBlockSize)); err != nil {
			return err
		}
		return nil
	}
	return c.driver.SetProcessorActive(active)
}

func (c *componentImpl) SetState(stateData []byte) error {
	return c.driver.LoadState(stateData)
}

func (c *componentImpl) GetState() ([]byte, error) {
	return c.driver.SaveState()
}

// IAudioProcessor

func (c *componentImpl) SetBusArrangements(_, _ []int64) error { return nil }

func (c *componentImpl) GetBusArrangement(direction, _ int32) (int64, error) {
	ch := c.side(direction).MainChannelCount()
	if ch <= 0 {
		ch = 2
	}
	return speakerArrangementForChannelCount(ch), nil
}

func (c *componentImpl) CanProcessSampleSize(symbolicSampleSize int32) error {
	if symbolicSampleSize == 0 { // kSample32
		return nil
	}
	if symbolicSampleSize == 1 && c.descriptor.SupportsDoublePrecision() { // kSample64
		return nil
	}
	return ErrNotImplemented
}

func (c *componentImpl) GetLatencySamples() uint32 {
	return uint32(c.driver.LatencySamples())
}

func (c *componentImpl) SetupProcessing(setup *ProcessSetup) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sampleRate = setup.SampleRate
	if setup.MaxSamplesPerBlock > 0 {
		c.maxBlockSize = setup.MaxSamplesPerBlock
	}
	return c.driver.Allocate(c.sampleRate, int(c.maxBlockSize))
}

func (c *componentImpl) SetProcessing(state bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processing = state
	return nil
}

func (c *componentImpl) Process(data unsafe.Pointer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.processing || !c.driver.IsPrepared() {
		return nil
	}

	processData := (*C.struct_Steinberg_Vst_ProcessData)(data)
	numSamples := int(processData.numSamples)

	c.driver.ClearRenderBuffers()
	storage := c.driver.Storage32()

	if processData.numInputs > 0 && processData.inputs != nil {
		inputBuses := (*[1]C.struct_Steinberg_Vst_AudioBusBuffers)(unsafe.Pointer(processData.inputs))[:processData.numInputs:processData.numInputs]
		if len(inputBuses) > 0 {
			mapChannels(&inputBuses[0], func(ch int, p unsafe.Pointer) { storage.SetMainInChannel(ch, p) })
		}
		for busIdx := 1; busIdx < len(inputBuses); busIdx++ {
			idx := busIdx - 1
			mapChannels(&inputBuses[busIdx], func(ch int, p unsafe.Pointer) { storage.SetAuxInChannel(idx, ch, p) })
		}
	}

	if processData.numOutputs > 0 && processData.outputs != nil {
		outputBuses := (*[1]C.struct_Steinberg_Vst_AudioBusBuffers)(unsafe.Pointer(processData.outputs))[:processData.numOutputs:processData.numOutputs]
		if len(outputBuses) > 0 {
			mapChannels(&outputBuses[0], func(ch int, p unsafe.Pointer) { storage.SetMainOutChannel(ch, p) })
		}
		for busIdx := 1; busIdx < len(outputBuses); busIdx++ {
			idx := busIdx - 1
			mapChannels(&outputBuses[busIdx], func(ch int, p unsafe.Pointer) { storage.SetAuxOutChannel(idx, ch, p) })
		}
	}

	if processData.inputParameterChanges != nil {
		events := collectParameterEvents(unsafe.Pointer(processData.inputParameterChanges))
		if len(events) > 0 {
			c.driver.ApplyParameterEvents(events)
		}
	}

	collectInputEvents(processData.inputEvents, c.driver.MIDIInput())
	if err := c.driver.ProcessMIDI(); err != nil {
		return err
	}

	transport := transportFromProcessContext(processData.processContext)
	if err := c.driver.Process32(numSamples, transport); err != nil {
		return err
	}
	emitOutputEvents(processData.outputEvents, c.driver.MIDIOutput())
	return nil
}

func (c *componentImpl) GetTailSamples() uint32 {
	return uint32(c.driver.TailSamples())
}

// IEditController

func (c *componentImpl) SetComponentState(_ []byte) error { return nil }

func (c *componentImpl) GetParameterCount() int32 {
	return int32(c.descriptor.Parameters().Count())
}

func (c *componentImpl) GetParameterInfo(index int32) (*ParameterInfo, error) {
	p, ok := c.descriptor.Parameters().ByIndex(int(index))
	if !ok {
		return nil, ErrInvalidArgument
	}
	info := p.Info()
	var flags int32
	if info.Flags.Has(param.IsBypass) {
		flags |= ParameterIsBypass
	}
	if info.Flags.Has(param.CanAutomate) {
		flags |= ParameterCanAutomate
	}
	return &ParameterInfo{
		ID:           p.ID(),
		Title:        info.Name,
		ShortTitle:   info.ShortName,
		Units:        info.Unit.String(),
		StepCount:    info.StepCount,
		DefaultValue: info.DefaultValue,
		UnitID:       0,
		Flags:        flags,
	}, nil
}

func (c *componentImpl) GetParamStringByValue(id uint32, value float64) (string, error) {
	p, ok := c.descriptor.Parameters().ByID(id)
	if !ok {
		return "", ErrInvalidArgument
	}
	text, unit := p.DisplayNormalized(value)
	if unit != "" {
		return fmt.Sprintf("%s %s", text, unit), nil
	}
	return text, nil
}

func (c *componentImpl) GetParamValueByString(id uint32, str string) (float64, error) {
	p, ok := c.descriptor.Parameters().ByID(id)
	if !ok {
		return 0, ErrInvalidArgument
	}
	plain, err := p.Parse(str)
	if err != nil {
		return 0, err
	}
	return p.PlainToNormalized(plain), nil
}

func (c *componentImpl) NormalizedParamToPlain(id uint32, normalized float64) float64 {
	if p, ok := c.descriptor.Parameters().ByID(id); ok {
		return p.NormalizedToPlain(normalized)
	}
	return normalized
}

func (c *componentImpl) PlainParamToNormalized(id uint32, plain float64) float64 {
	if p, ok := c.descriptor.Parameters().ByID(id); ok {
		return p.PlainToNormalized(plain)
	}
	return plain
}

func (c *componentImpl) GetParamNormalized(id uint32) float64 {
	if p, ok := c.descriptor.Parameters().ByID(id); ok {
		return p.Normalized()
	}
	return 0
}

func (c *componentImpl) SetParamNormalized(id uint32, value float64) error {
	p, ok := c.descriptor.Parameters().ByID(id)
	if !ok {
		return ErrInvalidArgument
	}
	p.SetNormalized(value)
	return nil
}

func (c *componentImpl) SetComponentHandler(handler interface{}) error {
	return nil
}

func (c *componentImpl) CreateView(_ string) (interface{}, error) {
	return nil, ErrNotImplemented
}

// SetParamNormalizedWithNotification sets a value and tells the host via the
// IComponentHandler begin/perform/endEdit triple, for plugin-internal
// parameter changes (e.g. a GUI control) the host must be told about.
func (c *componentImpl) SetParamNormalizedWithNotification(id uint32, value float64) error {
	p, ok := c.descriptor.Parameters().ByID(id)
	if !ok {
		return ErrInvalidArgument
	}
	if c.wrapper != nil {
		c.wrapper.notifyParamBeginEdit(id)
		p.SetNormalized(value)
		c.wrapper.notifyParamPerformEdit(id, value)
		c.wrapper.notifyParamEndEdit(id)
	} else {
		p.SetNormalized(value)
	}
	return nil
}

func speakerArrangementForChannelCount(channels int) int64 {
	switch channels {
	case 1:
		return 1 // kMono
	default:
		return 3 // kStereo (L+R)
	}
}

func transportFromProcessContext(ctx *C.struct_Steinberg_Vst_ProcessContext) process.Transport {
	if ctx == nil {
		return process.Transport{}
	}
	t := process.Transport{
		Playing: (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kPlaying) != 0,
		Looping: (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kCycleActive) != 0,
	}
	if (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kTempoValid) != 0 {
		t.Tempo = float64(ctx.tempo)
	}
	if (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kTimeSigValid) != 0 {
		t.TimeSigNum = int(ctx.timeSigNumerator)
		t.TimeSigDenom = int(ctx.timeSigDenominator)
	}
	if (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kProjectTimeMusicValid) != 0 {
		t.BeatPositionPPQ = float64(ctx.projectTimeMusic)
	}
	if (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kBarPositionValid) != 0 {
		t.BarPositionPPQ = float64(ctx.barPositionMusic)
	}
	if (ctx.state & C.Steinberg_Vst_ProcessContext_StatesAndFlags_kCycleValid) != 0 {
		t.LoopStartPPQ = float64(ctx.cycleStartMusic)
		t.LoopEndPPQ = float64(ctx.cycleEndMusic)
	}
	return t
}
