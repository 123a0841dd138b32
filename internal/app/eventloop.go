package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fucaluca/torrentui/internal/config"
	"github.com/fucaluca/torrentui/internal/event"
	"github.com/fucaluca/torrentui/internal/input"
	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/mode"
	"github.com/fucaluca/torrentui/internal/terminal"
)

// pump forwards events from mux.Next to out and closes out once Next
// fails or ctx ends.
func pump(ctx context.Context, mux *event.Multiplexer, out chan<- event.Event) {
	defer close(out)
	for {
		ev, err := mux.Next(ctx)
		if err != nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop is the main application loop. It reads events pumped from mux and
// returns nil on a normal exit.
func (app *Application) loop(ctx context.Context, mux *event.Multiplexer, events <-chan event.Event, updates <-chan *config.Settings) error {
	app.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-app.stop:
			return nil

		case s := <-updates:
			app.applySettings(s)

		case ev, ok := <-events:
			if !ok {
				return inputError(mux.Err())
			}
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("quit")
					return nil
				}
				return err
			}
		}

		app.render()
	}
}

// inputError converts the multiplexer's stop reason into the loop's
// result. A closed terminal is a normal exit.
func inputError(err error) error {
	if err == nil || errors.Is(err, terminal.ErrClosed) {
		return nil
	}
	return &RunError{Component: "input", Err: err}
}

// handleEvent processes one multiplexed event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev event.Event) error {
	switch ev.Type {
	case event.TypeTick:
		app.stats.RecordTick()
		// Torrent list refresh hooks in here.
		app.logger.Debug("tick %d", app.stats.Snapshot().Ticks)
		return nil
	case event.TypeKey:
		return app.handleKey(ev.Key)
	default:
		return nil
	}
}

// handleKey feeds a key press to the matcher and dispatches what fires.
func (app *Application) handleKey(ev key.Event) error {
	res := app.matcher.Step(ev)
	app.stats.RecordKey(res.Kind == input.Fired, res.Kind == input.NoMatch)

	switch res.Kind {
	case input.Pending:
		app.status = ""
		app.logger.Debug("pending %s", res.Keys)
		return nil
	case input.NoMatch:
		app.status = fmt.Sprintf("%s is not bound", res.Keys)
		app.logger.Debug("no binding for %s in %s", res.Keys, app.matcher.Mode())
		return nil
	}

	app.status = ""
	app.logger.Debug("%s fired %s", res.Keys, res.Action)
	return app.dispatch(res.Action)
}

// dispatch performs an action.
func (app *Application) dispatch(a action.Action) error {
	switch a {
	case action.Quit:
		return ErrQuit
	case action.AddTorrent:
		app.switchMode(mode.AddTorrent)
	case action.Cancel:
		app.switchMode(mode.TorrentList)
	case action.NoOp:
	}
	return nil
}

// switchMode changes the key mode. A mode without bindings is reported
// and the current mode kept.
func (app *Application) switchMode(m mode.Mode) {
	if err := app.matcher.SetMode(m); err != nil {
		app.status = err.Error()
		app.logger.Warn("switch mode: %v", err)
		return
	}
	app.logger.Info("mode %s", m)
}

// applySettings adopts reloaded settings. The tick interval is fixed for
// the lifetime of the run.
func (app *Application) applySettings(s *config.Settings) {
	if err := app.matcher.Replace(s.Table); err != nil {
		app.status = "reload rejected: " + err.Error()
		app.logger.Error("reload rejected: %v", err)
		return
	}
	if s.TickInterval() != app.tickInterval {
		app.logger.Info("tick interval %s takes effect after restart", s.TickInterval())
	}
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(s.LogLevel)
	}

	app.settings = s
	app.stats.RecordReload()
	app.status = "config reloaded"
	app.logger.Info("keybindings replaced, mode %s", app.matcher.Mode())
}

// render draws the status line, pending keys and available bindings.
func (app *Application) render() {
	snap := app.stats.Snapshot()
	lines := []string{
		fmt.Sprintf("torrentui  mode: %s  ticks: %d", app.matcher.Mode(), snap.Ticks),
	}

	if pending := app.matcher.Pending(); len(pending) > 0 {
		lines = append(lines, "keys: "+pending.String())
	}

	for _, h := range app.matcher.Hints() {
		lines = append(lines, formatHint(h))
	}

	if app.status != "" {
		lines = append(lines, app.status)
	}
	app.term.Draw(lines)
}

func formatHint(h input.Hint) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(h.Chord.String())
	if h.Description != "" {
		b.WriteString("  ")
		b.WriteString(h.Description)
	}
	if h.Action != action.NoOp {
		fmt.Fprintf(&b, " (%s)", h.Action)
	}
	if h.Prefix {
		b.WriteString(" ...")
	}
	return b.String()
}
