package config

import (
	"context"
	"time"

	"github.com/fucaluca/torrentui/internal/config/watcher"
	"github.com/fucaluca/torrentui/internal/logging"
)

// Reloader reloads Settings when the config file changes.
//
// Reloads happen on the goroutine that calls Run. Successfully loaded
// settings are published on Updates; a newer result replaces one the
// consumer has not yet received. Failed reloads are logged and the
// previous settings stay in effect.
type Reloader struct {
	opts    Options
	watcher *watcher.Watcher
	updates chan *Settings
	logger  *logging.Logger
}

// NewReloader watches opts.Path. The file need not exist yet.
func NewReloader(opts Options, debounce time.Duration, logger *logging.Logger) (*Reloader, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.WithComponent("reload")

	w, err := watcher.New(watcher.WithDebounce(debounce), watcher.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(opts.Path); err != nil {
		w.Close()
		return nil, err
	}

	r := &Reloader{
		opts:    opts,
		watcher: w,
		updates: make(chan *Settings, 1),
		logger:  logger,
	}
	w.OnChange(r.handle)
	return r, nil
}

// Updates returns the channel of reloaded settings.
func (r *Reloader) Updates() <-chan *Settings {
	return r.updates
}

// Run watches for changes until ctx is done, then releases the watcher.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()
	return r.watcher.Run(ctx)
}

func (r *Reloader) handle(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		r.logger.Info("config %s removed, keeping current settings", ev.Path)
		return
	}

	s, err := Load(r.opts)
	if err != nil {
		r.logger.Error("reload failed: %v", err)
		return
	}
	r.logger.Info("reloaded %s", ev.Path)
	r.publish(s)
}

func (r *Reloader) publish(s *Settings) {
	for {
		select {
		case r.updates <- s:
			return
		default:
		}
		select {
		case <-r.updates:
		default:
		}
	}
}
