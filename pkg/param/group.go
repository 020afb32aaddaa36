package param

// RootGroup is the id of the implicit root of the group tree; every
// parameter whose GroupID is RootGroup is displayed at the top level.
const RootGroup uint32 = 0

// Group is a node in the parameter group tree, used only for host-side
// hierarchical display; it carries no runtime/processing semantics.
type Group struct {
	ID       uint32
	Name     string
	ParentID uint32
}

// GroupTree is a flat table of Group records, addressed by ID so that
// parameter-to-group and group-to-parent references never need an owned
// pointer cycle.
type GroupTree struct {
	groups []Group
	byID   map[uint32]int
}

// NewGroupTree constructs an empty group tree (root group id 0 always exists
// implicitly and needs no entry).
func NewGroupTree() *GroupTree {
	return &GroupTree{byID: make(map[uint32]int)}
}

// Add registers a group. parentID must reference RootGroup or a
// previously-added group.
func (t *GroupTree) Add(id uint32, name string, parentID uint32) error {
	if id == RootGroup {
		return errGroupIsRoot
	}
	if parentID != RootGroup {
		if _, ok := t.byID[parentID]; !ok {
			return errUnknownParentGroup
		}
	}
	if _, exists := t.byID[id]; exists {
		return errDuplicateGroup
	}
	t.byID[id] = len(t.groups)
	t.groups = append(t.groups, Group{ID: id, Name: name, ParentID: parentID})
	return nil
}

// Count returns the number of non-root groups.
func (t *GroupTree) Count() int { return len(t.groups) }

// Info returns the group at index i in insertion order.
func (t *GroupTree) Info(i int) (Group, bool) {
	if i < 0 || i >= len(t.groups) {
		return Group{}, false
	}
	return t.groups[i], true
}

// ByID looks a group up by id.
func (t *GroupTree) ByID(id uint32) (Group, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Group{}, false
	}
	return t.groups[idx], true
}
