package param

// Parameters is the contract a plugin's parameter collection exposes to the
// adapter and wrappers: count, ordered iteration, and id-keyed lookup. A
// derive-style helper (NewRegistry + Add) generates the common
// implementation; plugins with unusual needs may implement it directly.
type Parameters interface {
	Count() int
	All() []*Parameter
	ByID(id uint32) (*Parameter, bool)
}

// ParameterGroups is the contract a plugin's group tree exposes for
// host-side hierarchical display.
type ParameterGroups interface {
	GroupCount() int
	GroupInfo(i int) (Group, bool)
}

// Registry is the default Parameters/ParameterGroups implementation: an
// insertion-ordered, id-keyed table built once at plugin construction and
// read (never mutated) from the audio thread thereafter.
type Registry struct {
	order      []uint32
	byID       map[uint32]*Parameter
	groups     *GroupTree
	hasBypass  bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uint32]*Parameter),
		groups: NewGroupTree(),
	}
}

// Add registers one or more parameters. It rejects hash collisions between
// string ids, a second bypass-flagged parameter, and a GroupID that does
// not reference the root or a group already added via AddGroup — all are
// ConfigurationError conditions meant to be caught at plugin init, not at
// runtime.
func (r *Registry) Add(params ...*Parameter) error {
	for _, p := range params {
		if _, exists := r.byID[p.ID()]; exists {
			return ErrDuplicateID
		}
		if p.info.Flags.Has(IsBypass) {
			if r.hasBypass {
				return ErrMultipleBypass
			}
			r.hasBypass = true
		}
		if p.info.GroupID != RootGroup {
			if _, ok := r.groups.ByID(p.info.GroupID); !ok {
				return ErrUnknownGroup
			}
		}
		r.byID[p.ID()] = p
		r.order = append(r.order, p.ID())
	}
	return nil
}

// AddGroup registers a display group; must be called before any parameter
// referencing it is added.
func (r *Registry) AddGroup(id uint32, name string, parentID uint32) error {
	return r.groups.Add(id, name, parentID)
}

// Count implements Parameters.
func (r *Registry) Count() int { return len(r.order) }

// All implements Parameters, returning parameters in registration order.
func (r *Registry) All() []*Parameter {
	out := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out
}

// ByID implements Parameters.
func (r *Registry) ByID(id uint32) (*Parameter, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// BypassParameter returns the registry's bypass-flagged parameter, or false
// if the plugin declared none. At most one exists per registry (Add rejects
// a second).
func (r *Registry) BypassParameter() (*Parameter, bool) {
	if !r.hasBypass {
		return nil, false
	}
	for _, id := range r.order {
		if p := r.byID[id]; p.info.Flags.Has(IsBypass) {
			return p, true
		}
	}
	return nil, false
}

// ByIndex returns the parameter at a host-facing index, or false if out of
// range.
func (r *Registry) ByIndex(index int) (*Parameter, bool) {
	if index < 0 || index >= len(r.order) {
		return nil, false
	}
	return r.byID[r.order[index]], true
}

// GroupCount implements ParameterGroups.
func (r *Registry) GroupCount() int { return r.groups.Count() }

// GroupInfo implements ParameterGroups.
func (r *Registry) GroupInfo(i int) (Group, bool) { return r.groups.Info(i) }
