// Package errs defines the error taxonomy shared by every wrapper and
// adapter path: InitializationFailed, ProcessingError, StateError, and
// ConfigurationError carry a reason string; OverflowCondition is signaled
// via an atomic flag elsewhere (see pkg/midi.SysExOutputPool), not an error
// value, since it is non-fatal and observed off the audio thread.
package errs

import "fmt"

// InitializationFailed reports that prepare could not build a processor:
// bad setup, an over-limit bus config, or a plugin-reported failure. The
// wrapper maps this to the host's init-failed code; the adapter's lifecycle
// state remains Unprepared.
type InitializationFailed struct {
	Reason string
}

func (e *InitializationFailed) Error() string {
	return fmt.Sprintf("initialization failed: %s", e.Reason)
}

// ProcessingError reports an operation invoked in a lifecycle state that
// forbids it (process while Unprepared, any call while Transitioning). The
// wrapper maps this to the host's invalid-state code.
type ProcessingError struct {
	Reason string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error: %s", e.Reason)
}

// StateError reports that load_state could not deserialize a blob; current
// parameters are left unchanged when this is returned.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error: %s", e.Reason)
}

// ConfigurationError reports an invalid manufacturer/plugin code, duplicate
// parameter ids, or a bus topology exceeding system limits. Surfaced at
// build/init time, never at runtime.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}
