package preset

import (
	"testing"

	"github.com/soundbridge/soundbridge/pkg/param"
)

func newTestParams(t *testing.T) *param.Registry {
	t.Helper()
	reg := param.NewRegistry()
	gain := param.New("gain", "Gain", param.LinearMapper{Min: -60, Max: 12}, param.DefaultFormatter(param.UnitDecibels, -60), 0, 0)
	mix := param.New("mix", "Mix", param.LinearMapper{Min: 0, Max: 1}, param.DefaultFormatter(param.UnitPercent, -60), 1, 0)
	if err := reg.Add(gain, mix); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return reg
}

func gainID() uint32 { return param.New("gain", "Gain", param.LinearMapper{Min: -60, Max: 12}, nil, 0, 0).ID() }
func mixID() uint32  { return param.New("mix", "Mix", param.LinearMapper{Min: 0, Max: 1}, nil, 1, 0).ID() }

func TestApplySetsOnlyListedParameters(t *testing.T) {
	reg := newTestParams(t)
	mixP, _ := reg.ByID(mixID())
	mixP.SetNormalized(0.5)

	list := NewList([]Preset{
		{Info: Info{Name: "Full Mix"}, Values: []Value{
			{ID: gainID(), PlainValue: 0},
			{ID: mixID(), PlainValue: 1},
		}},
		{Info: Info{Name: "Silent"}, Values: []Value{
			{ID: gainID(), PlainValue: -60},
		}},
	})

	if !list.Apply(1, reg) {
		t.Fatal("apply should succeed for a valid index")
	}

	gainP, _ := reg.ByID(gainID())
	if got := gainP.Plain(); got != -60 {
		t.Fatalf("got gain plain %v, want -60", got)
	}
	if got := mixP.Normalized(); got != 0.5 {
		t.Fatalf("mix should be untouched by the sparse preset, got %v want 0.5", got)
	}
}

func TestApplyIgnoresUnknownParameterIDs(t *testing.T) {
	reg := newTestParams(t)
	list := NewList([]Preset{
		{Info: Info{Name: "Odd"}, Values: []Value{
			{ID: gainID(), PlainValue: 6},
			{ID: 0xdeadbeef, PlainValue: 99},
		}},
	})

	if !list.Apply(0, reg) {
		t.Fatal("apply should succeed even with an unknown id present")
	}
	gainP, _ := reg.ByID(gainID())
	if got := gainP.Plain(); got != 6 {
		t.Fatalf("got %v, want 6", got)
	}
}

func TestApplyOutOfRangeReturnsFalseAndLeavesStateUntouched(t *testing.T) {
	reg := newTestParams(t)
	gainP, _ := reg.ByID(gainID())
	gainP.SetPlain(3)

	list := NewList([]Preset{{Info: Info{Name: "Only"}, Values: []Value{{ID: gainID(), PlainValue: -6}}}})
	if list.Apply(5, reg) {
		t.Fatal("out-of-range index should return false")
	}
	if got := gainP.Plain(); got != 3 {
		t.Fatalf("state should be untouched, got %v want 3", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	reg := newTestParams(t)
	list := NewList([]Preset{{Info: Info{Name: "Boost"}, Values: []Value{{ID: gainID(), PlainValue: 6}}}})

	list.Apply(0, reg)
	gainP, _ := reg.ByID(gainID())
	first := gainP.Normalized()

	list.Apply(0, reg)
	second := gainP.Normalized()

	if first != second {
		t.Fatalf("re-applying the same preset changed state: %v != %v", first, second)
	}
}

func TestNilListBehavesAsEmpty(t *testing.T) {
	var list *List
	if list.Count() != 0 {
		t.Fatal("nil list should report zero count")
	}
	if _, ok := list.Info(0); ok {
		t.Fatal("nil list Info should report not-ok")
	}
	reg := newTestParams(t)
	if list.Apply(0, reg) {
		t.Fatal("nil list Apply should return false")
	}
}
