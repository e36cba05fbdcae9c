// Package progress defines the event type both pipelines report through.
//
// Pipelines emit events to a callback supplied by the caller; CLI and TUI
// decide how (and whether) to render them. Verbose events are per-item
// noise, Info events are milestones and summaries.
package progress

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents a single pipeline progress update.
type Event struct {
	Message string
	Level   Level
}

// Func receives events; a nil Func is allowed everywhere and means the
// caller doesn't want them.
type Func func(Event)

// Emit calls f with the event if f is non-nil.
func (f Func) Emit(event Event) {
	if f != nil {
		f(event)
	}
}
