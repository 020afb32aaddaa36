package param

import "math"

// SmoothingStyle selects the per-sample interpolation a Smoother performs
// between the value last reached and a newly set target.
type SmoothingStyle int

const (
	// StyleNone performs no smoothing; Next immediately returns the target.
	StyleNone SmoothingStyle = iota
	// StyleLinear ramps linearly over a fixed number of samples.
	StyleLinear
	// StyleExponential applies a one-pole filter toward the target.
	StyleExponential
)

// Smoother advances a single parameter's normalized value one sample at a
// time toward a target, configured once at parameter construction. It is
// driven by the processor's render loop, never from the parameter's own
// setter directly.
type Smoother struct {
	style     SmoothingStyle
	current   float64
	target    float64
	coeff     float64 // exponential: one-pole coefficient
	step      float64 // linear: per-sample delta
	remaining int     // linear: samples left
	rampLen   int     // linear: configured ramp length in samples
}

const smoothingEpsilon = 1e-7

// NewSmoother constructs a Smoother. timeConstant means ramp length in
// samples for StyleLinear, and the one-pole coefficient in (0,1) for
// StyleExponential; it is ignored for StyleNone.
func NewSmoother(style SmoothingStyle, timeConstant float64) *Smoother {
	s := &Smoother{style: style}
	switch style {
	case StyleLinear:
		n := int(timeConstant)
		if n < 1 {
			n = 1
		}
		s.rampLen = n
	case StyleExponential:
		c := timeConstant
		if c <= 0 || c >= 1 {
			c = 0.999
		}
		s.coeff = c
	}
	return s
}

// SetTarget retargets the smoother. If the parameter has no smoothing style,
// the new value takes effect immediately on the next Next call.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
	switch s.style {
	case StyleLinear:
		if s.rampLen > 0 {
			s.step = (target - s.current) / float64(s.rampLen)
			s.remaining = s.rampLen
		}
	case StyleExponential, StyleNone:
		// handled per-sample in Next
	}
}

// Next advances the smoother by one sample and returns the new current value.
func (s *Smoother) Next() float64 {
	switch s.style {
	case StyleNone:
		s.current = s.target
	case StyleLinear:
		if s.remaining > 0 {
			s.current += s.step
			s.remaining--
			if s.remaining == 0 {
				s.current = s.target
			}
		}
	case StyleExponential:
		s.current += (s.target - s.current) * (1 - s.coeff)
		if math.Abs(s.current-s.target) < smoothingEpsilon {
			s.current = s.target
		}
	}
	return s.current
}

// Current returns the smoother's value without advancing it.
func (s *Smoother) Current() float64 { return s.current }

// IsSmoothing reports whether the smoother has not yet reached its target.
func (s *Smoother) IsSmoothing() bool { return s.current != s.target }

// Reset snaps both current and target to value, discarding any in-flight ramp.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.remaining = 0
}
