package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Shutdown)
	return s, sim
}

func TestScreenPollKey(t *testing.T) {
	s, sim := newSimScreen(t)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	for {
		ev, err := s.PollEvent()
		if err != nil {
			t.Fatalf("PollEvent: %v", err)
		}
		if ev.Type != EventKey {
			continue
		}
		if got := ev.Key.String(); got != "<q>" {
			t.Errorf("key = %s, want <q>", got)
		}
		return
	}
}

func TestScreenShutdownUnblocksPoll(t *testing.T) {
	s, _ := newSimScreen(t)

	s.Shutdown()
	s.Shutdown()

	for {
		_, err := s.PollEvent()
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrClosed) {
			t.Errorf("PollEvent after Shutdown = %v, want ErrClosed", err)
		}
		return
	}
}

func TestScreenDraw(t *testing.T) {
	s, sim := newSimScreen(t)
	sim.SetSize(10, 2)

	s.Draw([]string{"hello", "world", "clipped"})

	if r, _, _, _ := sim.GetContent(1, 0); r != 'e' {
		t.Errorf("cell (1,0) = %q, want 'e'", r)
	}
	if r, _, _, _ := sim.GetContent(4, 1); r != 'd' {
		t.Errorf("cell (4,1) = %q, want 'd'", r)
	}
}
