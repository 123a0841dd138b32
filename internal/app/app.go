// Package app wires configuration, terminal input and the key binding
// matcher together and runs the application's event loop.
package app

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fucaluca/torrentui/internal/config"
	"github.com/fucaluca/torrentui/internal/event"
	"github.com/fucaluca/torrentui/internal/input"
	"github.com/fucaluca/torrentui/internal/input/mode"
	"github.com/fucaluca/torrentui/internal/logging"
)

// DefaultReloadDebounce is how long the config file must be quiet before
// it is reloaded.
const DefaultReloadDebounce = 200 * time.Millisecond

// Terminal is the screen the application reads keys from and draws to.
type Terminal interface {
	event.Source
	Init() error
	// Shutdown restores the terminal and releases a blocked PollEvent.
	// It may be called more than once.
	Shutdown()
	Draw(lines []string)
}

// Options configures the application.
type Options struct {
	// Config controls where settings are loaded from.
	Config config.Options

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Mode is the initial key mode. Empty means mode.Default.
	Mode string

	// Watch reloads the config file when it changes.
	// It has no effect when Config.Path is empty.
	Watch bool

	// ReloadDebounce defaults to DefaultReloadDebounce.
	ReloadDebounce time.Duration

	// Logger receives application logs. Defaults to a no-op logger.
	Logger *logging.Logger
}

// Application owns the matcher and runs the event loop.
type Application struct {
	opts     Options
	term     Terminal
	settings *config.Settings
	matcher  *input.Matcher
	reloader *config.Reloader
	stats    *Stats
	logger   *logging.Logger

	sessionID    string
	tickInterval time.Duration
	status       string

	running  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// New loads settings and prepares the application. The terminal is not
// touched until Run.
func New(opts Options, term Terminal) (*Application, error) {
	if opts.ReloadDebounce <= 0 {
		opts.ReloadDebounce = DefaultReloadDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	settings, err := config.Load(opts.Config)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	level := settings.LogLevel
	if opts.LogLevel != "" {
		if level, err = logging.ParseLevel(opts.LogLevel); err != nil {
			return nil, &InitError{Component: "logging", Err: err}
		}
	}
	logger.SetLevel(level)

	initial := mode.Default
	if opts.Mode != "" {
		if initial, err = mode.Parse(opts.Mode); err != nil {
			return nil, &InitError{Component: "mode", Err: err}
		}
	}

	matcher, err := input.NewMatcher(settings.Table, initial)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	app := &Application{
		opts:         opts,
		term:         term,
		settings:     settings,
		matcher:      matcher,
		stats:        NewStats(),
		sessionID:    uuid.NewString(),
		tickInterval: settings.TickInterval(),
		stop:         make(chan struct{}),
	}
	app.logger = logger.WithField("session", app.sessionID)

	if opts.Watch && opts.Config.Path != "" {
		r, err := config.NewReloader(opts.Config, opts.ReloadDebounce, app.logger)
		if err != nil {
			// Live reload is optional.
			app.logger.Warn("config watch disabled: %v", err)
		} else {
			app.reloader = r
		}
	}

	if settings.Path != "" {
		app.logger.Info("loaded config %s", settings.Path)
	} else {
		app.logger.Info("using default config")
	}
	return app, nil
}

// Run initializes the terminal and processes events until a Quit action,
// ctx cancellation or an input failure. The terminal is restored before
// Run returns, including when the loop panics.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.term.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.term.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("%v", &PanicError{Value: r, Stack: debug.Stack()})
			panic(r)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info("started in mode %s, tick every %s", app.matcher.Mode(), app.tickInterval)

	mux := event.New(app.term,
		event.WithTickInterval(app.tickInterval),
		event.WithLogger(app.logger),
	)
	mux.Start(ctx)
	defer mux.Cancel()

	g, gctx := errgroup.WithContext(ctx)

	events := make(chan event.Event)
	g.Go(func() error {
		pump(gctx, mux, events)
		return nil
	})

	var updates <-chan *config.Settings
	if app.reloader != nil {
		updates = app.reloader.Updates()
		g.Go(func() error {
			if err := app.reloader.Run(gctx); err != nil {
				return &RunError{Component: "config watcher", Err: err}
			}
			return nil
		})
	}

	// The loop stays on this goroutine so a panic in it reaches the
	// recover above.
	err = app.loop(gctx, mux, events, updates)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}

	app.logger.WithFields(app.stats.Snapshot().Fields()).Info("stopped")
	return err
}

// Stop asks a running application to exit. It is safe to call more than
// once and from any goroutine.
func (app *Application) Stop() {
	app.stopOnce.Do(func() { close(app.stop) })
}

// IsRunning reports whether Run is in progress.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Settings returns the settings in effect.
// It must not be called while Run is in progress.
func (app *Application) Settings() *config.Settings {
	return app.settings
}

// Mode returns the active key mode.
// It must not be called while Run is in progress.
func (app *Application) Mode() mode.Mode {
	return app.matcher.Mode()
}

// Stats returns the run loop counters.
func (app *Application) Stats() StatsSnapshot {
	return app.stats.Snapshot()
}

// SessionID identifies this run in the log.
func (app *Application) SessionID() string {
	return app.sessionID
}
