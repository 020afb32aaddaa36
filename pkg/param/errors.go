package param

import "errors"

var (
	errGroupIsRoot        = errors.New("param: group id 0 is reserved for the root")
	errUnknownParentGroup = errors.New("param: parent group id does not exist")
	errDuplicateGroup     = errors.New("param: group id already registered")

	// ErrDuplicateID is returned by Registry.Add when two parameters hash
	// to the same id. Per spec this is a build-time ConfigurationError;
	// callers that build registries at init() should panic on it rather
	// than let a plugin register with colliding parameter ids.
	ErrDuplicateID = errors.New("param: duplicate parameter id (string id hash collision)")

	// ErrMultipleBypass is returned when a second parameter with the
	// IsBypass flag is added to a registry that already has one.
	ErrMultipleBypass = errors.New("param: at most one parameter may carry the bypass flag")

	// ErrUnknownGroup is returned when a parameter's GroupID does not
	// reference RootGroup or a registered group.
	ErrUnknownGroup = errors.New("param: group id does not reference the root or a registered group")
)
