// Package action defines the closed set of high-level actions that key
// bindings resolve to.
package action

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when parsing a name that is not an action.
var ErrUnknownAction = errors.New("unknown action")

// Action is a high-level application command.
// The zero value is NoOp.
type Action uint8

const (
	// NoOp does nothing. Bindings that only group a prefix use it.
	NoOp Action = iota
	// Quit stops the application.
	Quit
	// AddTorrent opens the add-torrent flow.
	AddTorrent
	// Cancel leaves the current flow and returns to the torrent list.
	Cancel
)

var names = [...]string{
	NoOp:       "NoOp",
	Quit:       "Quit",
	AddTorrent: "AddTorrent",
	Cancel:     "Cancel",
}

// All returns every action in declaration order.
func All() []Action {
	return []Action{NoOp, Quit, AddTorrent, Cancel}
}

// String returns the action's configuration name.
func (a Action) String() string {
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Parse returns the action with the given name. Names are matched exactly.
func Parse(name string) (Action, error) {
	for i, n := range names {
		if n == name {
			return Action(i), nil
		}
	}
	return NoOp, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
