package event

import (
	"time"

	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/terminal"
)

// Type identifies the kind of multiplexed event.
type Type int

const (
	// TypeKey is a key press.
	TypeKey Type = iota
	// TypeTick is a periodic timer tick.
	TypeTick
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeKey:
		return "key"
	case TypeTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is a single item in the multiplexed stream.
type Event struct {
	Type Type

	// Key is set for TypeKey.
	Key key.Event

	// Time is when the event was produced.
	Time time.Time
}

// Source supplies raw terminal events. PollEvent blocks until an event
// is available and returns an error once the source can no longer be read.
type Source interface {
	PollEvent() (terminal.Event, error)
}
