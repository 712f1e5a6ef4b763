// Package input defines the playback control events and their source.
package input

// Event identifies a playback control action.
type Event string

const (
	EventPauseToggle   Event = "pause_toggle"
	EventPreviewToggle Event = "preview_toggle"
	EventRestart       Event = "restart"
	EventQuit          Event = "quit"
)

// Source delivers control events to the playback loop. Poll must not block;
// it returns at most one event per call and false when none is pending.
type Source interface {
	Poll() (Event, bool)
}
