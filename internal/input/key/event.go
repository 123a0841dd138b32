package key

import "time"

// Event is one key press as reported by the terminal.
type Event struct {
	Key       Key
	Rune      rune // for KeyRune
	Modifiers Modifier
	Timestamp time.Time
}

// NewRuneEvent returns a press of the character r.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewSpecialEvent returns a press of a named key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Timestamp: time.Now()}
}

// Chord normalizes the press for binding lookup. Two events bound to the
// same grammar segment always have equal chords.
func (e Event) Chord() Chord {
	return NewChord(e.Key, e.Rune, e.Modifiers)
}

// String renders the press in binding notation, e.g. "<Ctrl-a>".
func (e Event) String() string {
	return e.Chord().String()
}
