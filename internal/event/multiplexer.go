package event

import (
	"context"
	"sync"
	"time"

	"github.com/fucaluca/torrentui/internal/logging"
	"github.com/fucaluca/torrentui/internal/terminal"
)

// Multiplexer merges terminal input, ticks and cancellation into a bounded
// queue read by one consumer.
type Multiplexer struct {
	src    Source
	cfg    config
	logger *logging.Logger

	queue   chan Event
	done    chan struct{} // closed by Cancel
	stopped chan struct{} // closed when the producer exits

	startOnce  sync.Once
	cancelOnce sync.Once

	mu  sync.Mutex
	err error
}

// New creates a multiplexer reading from src. Call Start to begin.
func New(src Source, opts ...Option) *Multiplexer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Multiplexer{
		src:     src,
		cfg:     cfg,
		logger:  cfg.logger.WithComponent("event"),
		queue:   make(chan Event, cfg.capacity),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the producer. Later calls, and calls after Cancel, do
// nothing. The producer stops when ctx is done, Cancel is called or the
// source fails.
func (m *Multiplexer) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		raw := make(chan terminal.Event)
		readErr := make(chan error, 1)
		go m.read(raw, readErr)
		go m.run(ctx, raw, readErr)
	})
}

// Next blocks for the next event. It returns ErrClosed once the
// multiplexer is cancelled or its producer has stopped and the queue is
// empty, and ctx.Err() if ctx ends first.
func (m *Multiplexer) Next(ctx context.Context) (Event, error) {
	if m.cancelled() {
		return Event{}, ErrClosed
	}

	select {
	case ev, ok := <-m.queue:
		if !ok || m.cancelled() {
			return Event{}, ErrClosed
		}
		return ev, nil
	case <-m.done:
		return Event{}, ErrClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Events returns the queue. It is closed when the producer exits.
// Prefer Next, which never yields an event after Cancel.
func (m *Multiplexer) Events() <-chan Event {
	return m.queue
}

// Cancel stops the producer. It is safe to call more than once and from
// any goroutine.
func (m *Multiplexer) Cancel() {
	m.cancelOnce.Do(func() {
		close(m.done)
	})
	// Never started: nothing else will close the queue.
	m.startOnce.Do(func() {
		close(m.queue)
		close(m.stopped)
	})
}

// Done is closed once the producer has exited.
func (m *Multiplexer) Done() <-chan struct{} {
	return m.stopped
}

// Err returns the input error that stopped the producer, or nil if it
// stopped because of cancellation.
func (m *Multiplexer) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Multiplexer) cancelled() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// read forwards raw events until the source fails or the producer exits.
// A blocked PollEvent holds this goroutine until the source is shut down.
func (m *Multiplexer) read(raw chan<- terminal.Event, errc chan<- error) {
	for {
		ev, err := m.src.PollEvent()
		if err != nil {
			errc <- err
			return
		}
		select {
		case raw <- ev:
		case <-m.stopped:
			return
		}
	}
}

func (m *Multiplexer) run(ctx context.Context, raw <-chan terminal.Event, errc <-chan error) {
	defer close(m.stopped)
	defer m.closeQueue()

	var tick <-chan time.Time
	if m.cfg.tickInterval > 0 {
		ticker := time.NewTicker(m.cfg.tickInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	m.logger.Debug("producer started")
	for {
		if m.cancelled() || ctx.Err() != nil {
			m.logger.Debug("producer stopped")
			return
		}

		select {
		case <-m.done:
			m.logger.Debug("producer cancelled")
			return

		case <-ctx.Done():
			m.logger.Debug("producer context done: %v", ctx.Err())
			return

		case now := <-tick:
			if !m.enqueue(ctx, Event{Type: TypeTick, Time: now}) {
				return
			}

		case ev := <-raw:
			if !ev.IsKeyPress() {
				m.logger.Debug("dropped %s event", ev.Type)
				continue
			}
			if !m.enqueue(ctx, Event{Type: TypeKey, Key: ev.Key, Time: time.Now()}) {
				return
			}

		case err := <-errc:
			m.mu.Lock()
			m.err = err
			m.mu.Unlock()
			m.logger.Warn("input read failed: %v", err)
			return
		}
	}
}

// enqueue blocks while the queue is full but gives up on cancellation.
func (m *Multiplexer) enqueue(ctx context.Context, ev Event) bool {
	select {
	case m.queue <- ev:
		return true
	case <-m.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// closeQueue discards buffered events if cancelled, then closes the queue.
func (m *Multiplexer) closeQueue() {
	if m.cancelled() {
	drain:
		for {
			select {
			case <-m.queue:
			default:
				break drain
			}
		}
	}
	close(m.queue)
}
