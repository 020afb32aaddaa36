package au

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFourCharCodeValid(t *testing.T) {
	code, err := NewFourCharCode("aufx")
	require.NoError(t, err)
	assert.Equal(t, "aufx", code.String())
}

func TestNewFourCharCodeWrongLength(t *testing.T) {
	_, err := NewFourCharCode("au")
	assert.Error(t, err)

	_, err = NewFourCharCode("toolong")
	assert.Error(t, err)
}

func TestNewFourCharCodeNonASCII(t *testing.T) {
	_, err := NewFourCharCode(string([]byte{'a', 0x81, 'f', 'x'}))
	assert.Error(t, err)
}

func TestMustFourCharCodePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustFourCharCode("x") })
}

func TestFourCharCodeAsUint32(t *testing.T) {
	code := MustFourCharCode("aufx")
	var want uint32
	for _, b := range []byte("aufx") {
		want = want<<8 | uint32(b)
	}
	assert.Equal(t, want, code.AsUint32())
}

func TestEffectAndInstrumentComponentTypesAreDistinct(t *testing.T) {
	assert.NotEqual(t, EffectComponentType, InstrumentComponentType)
	assert.Equal(t, "aufx", EffectComponentType.String())
	assert.Equal(t, "aumu", InstrumentComponentType.String())
}
