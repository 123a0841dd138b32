// Package watcher reports changes to configuration files.
//
// The directory containing each file is watched rather than the file, so a
// file that is replaced by rename, or created after Watch, is still seen.
// Changes are delivered once all watched files have been quiet for the
// debounce period.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fucaluca/torrentui/internal/logging"
)

// DefaultDebounce is used when no WithDebounce option is given.
const DefaultDebounce = 100 * time.Millisecond

var (
	// ErrNoDirectory is returned by Watch when the file's directory is missing.
	ErrNoDirectory = errors.New("config directory does not exist")
	// ErrClosed is returned by Watch after Close.
	ErrClosed = errors.New("watcher closed")
)

// Op is the kind of change.
type Op int

const (
	OpWrite Op = iota
	OpCreate
	OpRemove
	OpRename
)

var opNames = [...]string{OpWrite: "write", OpCreate: "create", OpRemove: "remove", OpRename: "rename"}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Event is a debounced change to one watched file.
type Event struct {
	Path string // absolute
	Op   Op
	Time time.Time // of the last raw notification
}

// Handler receives change events on the goroutine running Run.
type Handler func(Event)

// Watcher watches a set of files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *logging.Logger

	mu       sync.Mutex
	files    map[string]struct{}
	dirs     map[string]struct{}
	handlers []Handler
	closed   bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Negative values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher with nothing watched.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
		logger:   logging.Nop(),
		files:    map[string]struct{}{},
		dirs:     map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithComponent("watcher")
	return w, nil
}

// Watch adds path. The file need not exist, but its directory must.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	if _, ok := w.dirs[dir]; !ok {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return ErrNoDirectory
		}
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = struct{}{}
	}
	w.files[abs] = struct{}{}
	return nil
}

// Files returns the watched paths in sorted order.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// OnChange registers h. Handlers are called in registration order.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Run delivers events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	// Armed on the first notification.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var quiet <-chan time.Time
	pending := map[string]Event{}

	for {
		select {
		case <-ctx.Done():
			return nil

		case raw, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			ev, ok := w.translate(raw, time.Now())
			if !ok {
				continue
			}
			if prev, seen := pending[ev.Path]; seen {
				ev.Op = coalesce(prev.Op, ev.Op)
			}
			pending[ev.Path] = ev
			timer.Reset(w.debounce)
			quiet = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error: %v", err)

		case <-quiet:
			quiet = nil
			w.flush(pending)
			pending = map[string]Event{}
		}
	}
}

// Close stops watching. Run returns once its event channels close.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	return w.fsw.Close()
}

// translate keeps notifications for watched files only.
func (w *Watcher) translate(raw fsnotify.Event, now time.Time) (Event, bool) {
	path := filepath.Clean(raw.Name)

	w.mu.Lock()
	_, watched := w.files[path]
	w.mu.Unlock()
	if !watched {
		return Event{}, false
	}

	var op Op
	switch {
	case raw.Op.Has(fsnotify.Remove):
		op = OpRemove
	case raw.Op.Has(fsnotify.Rename):
		op = OpRename
	case raw.Op.Has(fsnotify.Create):
		op = OpCreate
	case raw.Op.Has(fsnotify.Write):
		op = OpWrite
	default:
		return Event{}, false
	}
	w.logger.Debug("%s %s", op, path)
	return Event{Path: path, Op: op, Time: now}, true
}

// coalesce folds two notifications for the same file. A write following a
// create is still a create; otherwise the latest wins.
func coalesce(prev, next Op) Op {
	if prev == OpCreate && next == OpWrite {
		return OpCreate
	}
	return next
}

// flush delivers pending events ordered by path.
func (w *Watcher) flush(pending map[string]Event) {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	w.mu.Lock()
	handlers := append([]Handler(nil), w.handlers...)
	w.mu.Unlock()

	for _, p := range paths {
		for _, h := range handlers {
			w.call(h, pending[p])
		}
	}
}

func (w *Watcher) call(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("change handler panicked on %s: %v", ev.Path, r)
		}
	}()
	h(ev)
}
