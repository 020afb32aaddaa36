package param

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearMapperRoundTrip(t *testing.T) {
	m := LinearMapper{Min: -24, Max: 24}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		n := rng.Float64()
		got := m.PlainToNormalized(m.NormalizedToPlain(n))
		assert.InDelta(t, n, got, 1e-9)
	}
}

func TestPowerMapperRoundTrip(t *testing.T) {
	m := PowerMapper{Min: 0, Max: 1000, K: 2}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		n := rng.Float64()
		got := m.PlainToNormalized(m.NormalizedToPlain(n))
		assert.InDelta(t, n, got, 1e-6)
	}
}

func TestLogMapperRoundTrip(t *testing.T) {
	m := LogMapper{Min: 20, Max: 20000}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		n := rng.Float64()
		got := m.PlainToNormalized(m.NormalizedToPlain(n))
		assert.InDelta(t, n, got, 1e-6)
	}
}

func TestLogOffsetMapperRoundTrip(t *testing.T) {
	m := LogOffsetMapper{Min: -60, Max: 6, Offset: 61}
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		n := rng.Float64()
		got := m.PlainToNormalized(m.NormalizedToPlain(n))
		assert.InDelta(t, n, got, 1e-6)
	}
}

func TestDecibelFormatterFloorRoundTrip(t *testing.T) {
	f := DefaultFormatter(UnitDecibels, -60)
	assert.Equal(t, "-inf", f.Text(-60))
	got, err := f.Parse("-inf")
	require.NoError(t, err)
	assert.Equal(t, -60.0, got)
}

func TestFormatterParseRoundTrip(t *testing.T) {
	cases := []struct {
		unit  Unit
		plain float64
	}{
		{UnitDecibels, -6},
		{UnitHertz, 440},
		{UnitHertz, 12000},
		{UnitMilliseconds, 5},
		{UnitMilliseconds, 1500},
		{UnitPercent, 75},
		{UnitSemitones, -7},
	}
	for _, c := range cases {
		f := DefaultFormatter(c.unit, -60)
		text := f.Text(c.plain)
		got, err := f.Parse(text)
		require.NoErrorf(t, err, "unit=%v text=%q", c.unit, text)
		assert.InDeltaf(t, c.plain, got, 0.6, "unit=%v text=%q", c.unit, text)
	}
}

func TestPanFormatter(t *testing.T) {
	f := DefaultFormatter(UnitPan, 0)
	assert.Equal(t, "C", f.Text(0))
	assert.Equal(t, "L50", f.Text(-0.5))
	assert.Equal(t, "R50", f.Text(0.5))
}

func TestRatioFormatterInfinity(t *testing.T) {
	f := ratioFormatter{ceiling: 20}
	assert.Equal(t, "∞:1", f.Text(20))
	assert.Equal(t, "10.0:1", f.Text(10))
}

func TestBooleanFormatter(t *testing.T) {
	f := DefaultFormatter(UnitBoolean, 0)
	assert.Equal(t, "On", f.Text(1))
	assert.Equal(t, "Off", f.Text(0))
}

func TestStepCountOneRendersBinary(t *testing.T) {
	p := NewBuilder("bypass", "Bypass").Toggle().Build()
	for _, n := range []float64{0, 0.2, 0.49, 0.5, 0.8, 1} {
		p.SetNormalized(n)
		plain := p.Plain()
		assert.Truef(t, plain == 0 || plain == 1, "toggle plain=%v for n=%v", plain, n)
	}
}

func TestParameterIDIsFNVOfStringID(t *testing.T) {
	p := NewBuilder("gain", "Gain").Build()
	assert.NotZero(t, p.ID())
	other := NewBuilder("gain", "Gain (renamed display name)").Build()
	assert.Equal(t, p.ID(), other.ID(), "numeric id is derived from the string id, not the display name")
}

func TestAtMostOneBypassPerRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(NewBuilder("bypass1", "Bypass1").Bypass().Build()))
	err := r.Add(NewBuilder("bypass2", "Bypass2").Bypass().Build())
	assert.ErrorIs(t, err, ErrMultipleBypass)
}

func TestDuplicateParameterIDRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(NewBuilder("gain", "Gain").Build()))
	err := r.Add(NewBuilder("gain", "Gain Again").Build())
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUnknownGroupRejected(t *testing.T) {
	r := NewRegistry()
	err := r.Add(NewBuilder("gain", "Gain").Group(42).Build())
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestGroupTreeRootIsImplicit(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddGroup(1, "Filter", RootGroup))
	require.NoError(t, r.Add(NewBuilder("cutoff", "Cutoff").Group(1).Build()))
	assert.Equal(t, 1, r.GroupCount())
}

func TestSmootherExponentialConverges(t *testing.T) {
	s := NewSmoother(StyleExponential, 0.9)
	s.Reset(0)
	s.SetTarget(1)
	var last float64
	for i := 0; i < 1000; i++ {
		last = s.Next()
	}
	assert.InDelta(t, 1.0, last, 1e-6)
}

func TestSmootherLinearReachesTargetExactlyAtRampEnd(t *testing.T) {
	s := NewSmoother(StyleLinear, 10)
	s.Reset(0)
	s.SetTarget(1)
	var v float64
	for i := 0; i < 10; i++ {
		v = s.Next()
	}
	assert.Equal(t, 1.0, v)
	assert.False(t, s.IsSmoothing())
}

func TestResetSmoothingSnapsToCurrentTarget(t *testing.T) {
	p := NewBuilder("gain", "Gain").Linear(0, 1).Smoothed(StyleLinear, 100).Build()
	p.SetNormalized(1)
	p.ResetSmoothing()
	assert.Equal(t, 1.0, p.Smoother().Current())
	assert.False(t, p.Smoother().IsSmoothing())
}

func TestParameterSetNormalizedClamps(t *testing.T) {
	p := NewBuilder("x", "X").Build()
	p.SetNormalized(-5)
	assert.Equal(t, 0.0, p.Normalized())
	p.SetNormalized(5)
	assert.Equal(t, 1.0, p.Normalized())
}

func TestNoAllocationShapeOfHotPath(t *testing.T) {
	// Not a real allocation-counting test (no allocator hook available to a
	// package test), but guards that repeated Normalized/SetNormalized/Next
	// calls don't panic across a large iteration count, matching the shape
	// of the render-time hot path.
	p := NewBuilder("gain", "Gain").Smoothed(StyleExponential, 0.99).Build()
	for i := 0; i < 100000; i++ {
		p.SetNormalized(math.Mod(float64(i)*0.00001, 1))
		_ = p.Smoother().Next()
	}
}
