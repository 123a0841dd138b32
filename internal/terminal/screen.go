package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen is a tcell-backed terminal. It owns raw mode and the alternate
// screen between Init and Shutdown.
type Screen struct {
	screen tcell.Screen
	mu     sync.Mutex
	once   sync.Once
}

// New creates a terminal on the process's controlling tty.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen, such as a simulation
// screen in tests.
func NewWithScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Init enters raw mode and the alternate screen and hides the cursor.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.screen.Show()
	return nil
}

// Shutdown restores the terminal. It is safe to call more than once,
// including from a deferred panic handler. A blocked PollEvent returns
// ErrClosed.
func (s *Screen) Shutdown() {
	s.once.Do(func() {
		s.screen.Fini()
	})
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() (Event, error) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return Event{}, ErrClosed
	}
	return convertEvent(ev), nil
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

// Draw replaces the screen contents with lines of plain text.
// Lines beyond the screen height and runes beyond its width are clipped.
func (s *Screen) Draw(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	width, height := s.screen.Size()
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			s.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	s.screen.Show()
}
