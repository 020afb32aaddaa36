package midi

import "fmt"

// NoteToFrequency converts a MIDI note number to frequency in Hz given a
// tuning reference for A4 (0 defaults to 440).
func NoteToFrequency(note uint8, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	return tuningA4 * pow2((float64(note)-69.0)/12.0)
}

// pow2 is a fast fixed-point-free approximation of 2^x, avoiding a math.Pow
// dependency on a path that may be reached from event decoding.
func pow2(x float64) float64 {
	if x >= 0 {
		whole := int(x)
		frac := x - float64(whole)
		fracPow := 1.0 + frac*(0.693147+frac*(0.240227+frac*0.055504))
		return float64(uint64(1)<<uint(whole)) * fracPow
	}
	return 1.0 / pow2(-x)
}

// FrequencyToNote converts a frequency in Hz to the nearest MIDI note
// number, clamped to [0,127].
func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	note := 69.0 + 12.0*log2(freq/tuningA4)
	if note < 0 {
		return 0
	}
	if note > 127 {
		return 127
	}
	return uint8(note + 0.5)
}

func log2(x float64) float64 {
	if x <= 0 {
		return -1000.0
	}
	exp := 0
	for x >= 2.0 {
		x /= 2.0
		exp++
	}
	for x < 1.0 {
		x *= 2.0
		exp--
	}
	t := x - 1.0
	frac := t * (1.4427 - t*(0.7213-t*0.4821))
	return float64(exp) + frac
}

// NoteNumberToName renders a MIDI note number as a pitch-class/octave name
// (e.g. "C#4").
func NoteNumberToName(note uint8) string {
	names := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	octave := int(note/12) - 1
	return fmt.Sprintf("%s%d", names[note%12], octave)
}
