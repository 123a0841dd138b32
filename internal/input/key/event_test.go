package key

import "testing"

func TestNewRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	if e.Key != KeyRune {
		t.Errorf("NewRuneEvent key = %v, want KeyRune", e.Key)
	}
	if e.Rune != 'a' {
		t.Errorf("NewRuneEvent rune = %q, want 'a'", e.Rune)
	}
	if e.Timestamp.IsZero() {
		t.Error("NewRuneEvent timestamp should be set")
	}
}

func TestNewSpecialEvent(t *testing.T) {
	e := NewSpecialEvent(KeyEscape, ModNone)
	if e.Key != KeyEscape {
		t.Errorf("NewSpecialEvent key = %v, want KeyEscape", e.Key)
	}
	if e.Rune != 0 {
		t.Errorf("NewSpecialEvent rune = %q, want 0", e.Rune)
	}
}

func TestEventChord(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Chord
	}{
		{"plain rune", NewRuneEvent('q', ModNone), Chord{Key: KeyRune, Rune: 'q'}},
		{"upper rune implies shift", NewRuneEvent('Q', ModNone), Chord{Key: KeyRune, Rune: 'Q', Modifiers: ModShift}},
		{"shift upper-cases rune", NewRuneEvent('q', ModShift), Chord{Key: KeyRune, Rune: 'Q', Modifiers: ModShift}},
		{"special drops rune", Event{Key: KeyEnter, Rune: '\r'}, Chord{Key: KeyEnter}},
		{"backtab carries shift", NewSpecialEvent(KeyBacktab, ModNone), Chord{Key: KeyBacktab, Modifiers: ModShift}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Chord(); got != tt.want {
				t.Errorf("Chord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEventMatchesParsedChord(t *testing.T) {
	seq := MustParseSequence("<Ctrl-a><Q><backtab>")
	events := []Event{
		NewRuneEvent('a', ModCtrl),
		NewRuneEvent('q', ModShift),
		NewSpecialEvent(KeyBacktab, ModNone),
	}

	for i, e := range events {
		if e.Chord() != seq[i] {
			t.Errorf("event %d chord = %v, want %v", i, e.Chord(), seq[i])
		}
	}
}
