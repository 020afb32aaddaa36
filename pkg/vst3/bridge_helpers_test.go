package vst3

// #include "../../include/vst3/vst3_c_api.h"
import "C"
import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestCopyStringToTCharRoundTrip(t *testing.T) {
	var buf [32]C.Steinberg_Vst_TChar
	copyStringToTChar("Gain", &buf[0], len(buf))
	assert.Equal(t, "Gain", stringFromTChar(&buf[0]))
}

func TestCopyStringToTCharTruncatesToCapacity(t *testing.T) {
	var buf [4]C.Steinberg_Vst_TChar
	copyStringToTChar("Simple Synth", &buf[0], len(buf))
	assert.Equal(t, "Sim", stringFromTChar(&buf[0]))
}

func TestCopyStringToTCharEmptyString(t *testing.T) {
	var buf [8]C.Steinberg_Vst_TChar
	copyStringToTChar("", &buf[0], len(buf))
	assert.Equal(t, "", stringFromTChar(&buf[0]))
}

func TestStringFromTCharNilPointer(t *testing.T) {
	assert.Equal(t, "", stringFromTChar(nil))
}

func TestStringFromTCharStopsAtNul(t *testing.T) {
	var buf [8]C.Steinberg_Vst_TChar
	copyStringToTChar("ab", &buf[0], len(buf))
	// Poison the rest of the buffer; stringFromTChar must still stop at the
	// NUL terminator copyStringToTChar wrote after "ab".
	for i := 3; i < len(buf); i++ {
		*(*C.Steinberg_char16)(unsafe.Pointer(uintptr(unsafe.Pointer(&buf[0])) + uintptr(i*2))) = C.Steinberg_char16('x')
	}
	assert.Equal(t, "ab", stringFromTChar(&buf[0]))
}
