// Package preset provides factory preset collections: named, sparse sets of
// parameter values a plugin ships with and a host can enumerate and select.
package preset

import "github.com/soundbridge/soundbridge/pkg/param"

// Info describes a single factory preset's display name.
type Info struct {
	Name string
}

// Value is one parameter's plain-unit value within a preset. id is the
// same FNV-1a hashed id param.Parameter.ID returns, so a preset table can be
// built independently of parameter construction order.
type Value struct {
	ID         uint32
	PlainValue float64
}

// Preset is one named, sparse collection of parameter values.
type Preset struct {
	Info   Info
	Values []Value
}

// List is an immutable, ordered collection of factory presets.
type List struct {
	presets []Preset
}

// NewList builds a List from presets in display order. The slice is not
// copied defensively beyond what's needed for immutability of the header;
// callers should treat it as owned by the List afterward.
func NewList(presets []Preset) *List {
	return &List{presets: presets}
}

// Count returns the number of presets.
func (l *List) Count() int {
	if l == nil {
		return 0
	}
	return len(l.presets)
}

// Info returns display info for index, or false if out of range.
func (l *List) Info(index int) (Info, bool) {
	if l == nil || index < 0 || index >= len(l.presets) {
		return Info{}, false
	}
	return l.presets[index].Info, true
}

// Values returns the sparse value list for index, or nil if out of range.
func (l *List) Values(index int) []Value {
	if l == nil || index < 0 || index >= len(l.presets) {
		return nil
	}
	return l.presets[index].Values
}

// Apply sets only the parameters named in preset index, converting each
// plain value to normalized via that parameter's own mapper. Parameter ids
// in the preset with no match in parameters are silently skipped. Applying
// the same preset twice in a row is idempotent: every write lands on the
// same normalized value both times. Returns false if index is out of
// range; parameters are left untouched in that case.
func (l *List) Apply(index int, parameters param.Parameters) bool {
	if l == nil || index < 0 || index >= len(l.presets) {
		return false
	}
	for _, v := range l.presets[index].Values {
		p, ok := parameters.ByID(v.ID)
		if !ok {
			continue
		}
		p.SetPlain(v.PlainValue)
	}
	return true
}
