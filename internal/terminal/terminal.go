// Package terminal adapts the tcell screen to the application's key events.
package terminal

import (
	"errors"

	"github.com/fucaluca/torrentui/internal/input/key"
)

// ErrClosed is returned by PollEvent once the terminal has been shut down.
var ErrClosed = errors.New("terminal closed")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventPaste:
		return "paste"
	case EventFocus:
		return "focus"
	default:
		return "none"
	}
}

// KeyKind distinguishes presses from releases and auto-repeats on
// terminals that report them.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
	KeyRepeat
)

// Event represents a raw terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  key.Event
	Kind KeyKind

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool
}

// IsKeyPress reports whether the event is a key press.
func (e Event) IsKeyPress() bool {
	return e.Type == EventKey && e.Kind == KeyPress
}

// KeyEvent wraps a key press.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev, Kind: KeyPress}
}
