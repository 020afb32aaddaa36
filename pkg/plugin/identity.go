package plugin

import "github.com/google/uuid"

// classIDNamespace is a fixed namespace UUID used to derive stable,
// deterministic VST3 class ids from a plugin's string Info.ID via UUIDv5.
// Every build of the same plugin ID produces the same 16-byte class id,
// which VST3 hosts require to remain stable across versions.
var classIDNamespace = uuid.MustParse("6f1f9c9e-6b2c-4a9a-9b8e-2f6f8f8f9a10")

// ClassID derives a stable 16-byte VST3 class identifier from Info.ID.
func (i Info) ClassID() [16]byte {
	u := uuid.NewSHA1(classIDNamespace, []byte(i.ID))
	var out [16]byte
	copy(out[:], u[:])
	return out
}

// ControllerClassID derives the companion edit-controller class id, offset
// from the component class id by appending a fixed suffix before hashing so
// the two ids are stable, distinct, and both deterministic from Info.ID.
func (i Info) ControllerClassID() [16]byte {
	u := uuid.NewSHA1(classIDNamespace, []byte(i.ID+".controller"))
	var out [16]byte
	copy(out[:], u[:])
	return out
}
