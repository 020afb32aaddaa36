package midi

// ccKey packs a MIDI channel and controller number into a map key.
type ccKey struct {
	channel    uint8
	controller uint8
}

// ccMapping describes one CC→parameter binding.
type ccMapping struct {
	paramID uint32
	scale   float64 // multiplies the 0..1 normalized CC value before the parameter set
}

// CCTable maps (channel, controller) pairs to parameter ids, consulted
// during event ingestion when a plugin opts into MIDI-CC → parameter
// mapping. Omni bindings (any channel) are stored under channel 0xff.
type CCTable struct {
	bindings map[ccKey]ccMapping
}

// OmniChannel is the channel value used to bind a controller across all
// MIDI channels.
const OmniChannel uint8 = 0xff

// NewCCTable creates an empty table.
func NewCCTable() *CCTable {
	return &CCTable{bindings: make(map[ccKey]ccMapping)}
}

// Bind maps (channel, controller) to paramID with the given scale applied
// to the normalized 0..1 CC value before it reaches the parameter. Pass
// OmniChannel to bind across every channel.
func (t *CCTable) Bind(channel, controller uint8, paramID uint32, scale float64) {
	if scale == 0 {
		scale = 1
	}
	t.bindings[ccKey{channel, controller}] = ccMapping{paramID: paramID, scale: scale}
}

// Unbind removes a binding.
func (t *CCTable) Unbind(channel, controller uint8) {
	delete(t.bindings, ccKey{channel, controller})
}

// Lookup resolves a (channel, controller) pair to a parameter id and scaled
// normalized value. Channel-specific bindings take precedence over omni.
func (t *CCTable) Lookup(channel, controller, ccValue uint8) (paramID uint32, normalized float64, ok bool) {
	if m, found := t.bindings[ccKey{channel, controller}]; found {
		return m.paramID, clamp01(float64(ccValue) / 127.0 * m.scale), true
	}
	if m, found := t.bindings[ccKey{OmniChannel, controller}]; found {
		return m.paramID, clamp01(float64(ccValue) / 127.0 * m.scale), true
	}
	return 0, 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
