package terminal

import (
	"sync"

	"github.com/fucaluca/torrentui/internal/input/key"
)

// NullTerminal is an in-memory terminal for testing.
// Events posted to it are returned by PollEvent in order.
type NullTerminal struct {
	events chan Event
	fail   chan error
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	lines []string
	polls int
}

// NewNullTerminal creates a null terminal whose queue holds buffer events.
func NewNullTerminal(buffer int) *NullTerminal {
	return &NullTerminal{
		events: make(chan Event, buffer),
		fail:   make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Init is a no-op.
func (n *NullTerminal) Init() error { return nil }

// Shutdown closes the terminal. Blocked PollEvent and PostEvent calls
// return.
func (n *NullTerminal) Shutdown() {
	n.once.Do(func() { close(n.done) })
}

// PollEvent returns the next posted event, the error passed to Fail, or
// ErrClosed after Shutdown.
func (n *NullTerminal) PollEvent() (Event, error) {
	n.mu.Lock()
	n.polls++
	n.mu.Unlock()

	select {
	case ev := <-n.events:
		return ev, nil
	case err := <-n.fail:
		return Event{}, err
	case <-n.done:
		return Event{}, ErrClosed
	}
}

// PostEvent queues an event, blocking while the queue is full.
// It returns false if the terminal was shut down first.
func (n *NullTerminal) PostEvent(ev Event) bool {
	select {
	case n.events <- ev:
		return true
	case <-n.done:
		return false
	}
}

// PostKey queues a key press.
func (n *NullTerminal) PostKey(ev key.Event) bool {
	return n.PostEvent(KeyEvent(ev))
}

// Fail makes the next PollEvent return err.
func (n *NullTerminal) Fail(err error) {
	select {
	case n.fail <- err:
	default:
	}
}

// Draw records the lines for inspection.
func (n *NullTerminal) Draw(lines []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lines = append(n.lines[:0], lines...)
}

// Lines returns the most recently drawn lines.
func (n *NullTerminal) Lines() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.lines))
	copy(out, n.lines)
	return out
}

// Polls returns how many times PollEvent has been called.
func (n *NullTerminal) Polls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.polls
}
