package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/fucaluca/torrentui/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "<q>"},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), "<Q>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<Alt-x>"},
		{"meta folds to alt", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModMeta), "<Alt-b>"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "<Ctrl-a>"},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), "<Ctrl-z>"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "<BackTab>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<Enter>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "<PageDown>"},
		{"shift f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModShift), "<Shift-F5>"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<Backspace>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKey(tt.ev)
			if s := got.String(); s != tt.want {
				t.Errorf("convertKey() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestConvertKeyMatchesParsedChord(t *testing.T) {
	seq := key.MustParseSequence("<Ctrl-a><t>")
	events := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone),
	}
	for i, ev := range events {
		if got := convertKey(ev).Chord(); got != seq[i] {
			t.Errorf("event %d chord = %v, want %v", i, got, seq[i])
		}
	}
}

func TestConvertEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventResize(80, 24))
	if ev.Type != EventResize || ev.Width != 80 || ev.Height != 24 {
		t.Errorf("resize = %+v", ev)
	}

	ev = convertEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if !ev.IsKeyPress() {
		t.Errorf("key event = %+v, want key press", ev)
	}

	ev = convertEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if ev.Type != EventMouse || ev.IsKeyPress() {
		t.Errorf("mouse = %+v", ev)
	}
}
