// Package progress carries the per-file diagnostic stream the drivers emit
// and the command-line front-ends render.
package progress

// Level classifies an event for display filtering.
type Level int

const (
	// LevelVerbose events are shown only when verbose output is enabled.
	LevelVerbose Level = iota

	// LevelInfo events are always shown.
	LevelInfo

	// LevelSuccess marks a completed operation.
	LevelSuccess

	// LevelWarning marks a degraded but non-fatal outcome.
	LevelWarning

	// LevelError marks a per-file failure.
	LevelError
)

// Event is one diagnostic line.
type Event struct {
	Level   Level
	Message string
}

// Func receives events as they occur. A nil Func is valid and discards them.
type Func func(Event)

// Emit calls f if it is non-nil.
func (f Func) Emit(level Level, message string) {
	if f != nil {
		f(Event{Level: level, Message: message})
	}
}
