package config

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fucaluca/torrentui/internal/config/loader"
	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/keymap"
	"github.com/fucaluca/torrentui/internal/input/mode"
	"github.com/fucaluca/torrentui/internal/logging"
)

//go:embed default.toml
var defaultConfig []byte

// Setting keys.
const (
	keyInterval    = "update_torrent_list_interval"
	keyLogLevel    = "log_level"
	keyKeybindings = "keybindings"
)

// Settings is the decoded application configuration.
type Settings struct {
	// UpdateTorrentListInterval is the tick period in seconds.
	// Zero disables ticks.
	UpdateTorrentListInterval uint8

	// LogLevel is the minimum level written to the log file.
	LogLevel logging.Level

	// Keybindings holds the raw bindings per mode.
	Keybindings keymap.Raw

	// Table is Keybindings parsed into binding trees.
	Table *keymap.Table

	// Path is the user config file that was read, or empty if none was.
	Path string
}

// TickInterval returns UpdateTorrentListInterval as a duration.
func (s *Settings) TickInterval() time.Duration {
	return time.Duration(s.UpdateTorrentListInterval) * time.Second
}

// Options controls where Load reads from.
type Options struct {
	// Path is the user config file. Empty means defaults only.
	Path string

	// FS reads Path. Defaults to the OS file system.
	FS loader.FileSystem

	// Env supplies environment overrides. Defaults to loader.NewEnv().
	Env loader.Loader
}

// Load reads defaults, the user file and environment overrides and
// decodes the result.
func Load(opts Options) (*Settings, error) {
	if opts.Env == nil {
		opts.Env = loader.NewEnv()
	}

	defaults, err := loader.Decode(loader.FormatTOML, "default.toml", defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	var user map[string]any
	if opts.Path != "" {
		if user, err = loader.NewFile(opts.FS, opts.Path).Load(); err != nil {
			return nil, err
		}
	}

	env, err := opts.Env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var path string
	if user != nil {
		path = opts.Path
	}

	s, err := decode(loader.Merge(withoutModes(defaults, user), user, env))
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	s.Path = path
	return s, nil
}

// withoutModes returns defaults minus the keybinding tables of every mode
// the user layer configures. A user table replaces the default table of
// its mode; modes the user leaves out keep their defaults.
func withoutModes(defaults, user map[string]any) map[string]any {
	userModes, ok := user[keyKeybindings].(map[string]any)
	if !ok {
		return defaults
	}
	defaultModes, ok := defaults[keyKeybindings].(map[string]any)
	if !ok {
		return defaults
	}

	kept := make(map[string]any, len(defaultModes))
	for name, bindings := range defaultModes {
		if _, replaced := userModes[name]; !replaced {
			kept[name] = bindings
		}
	}

	out := make(map[string]any, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	out[keyKeybindings] = kept
	return out
}

func decode(m map[string]any) (*Settings, error) {
	s := &Settings{}

	interval, err := decodeInterval(m[keyInterval])
	if err != nil {
		return nil, err
	}
	s.UpdateTorrentListInterval = interval

	if v, ok := m[keyLogLevel]; ok {
		str, ok := v.(string)
		if !ok {
			return nil, &FieldError{Path: keyLogLevel, Value: v, Err: ErrTypeMismatch}
		}
		level, err := logging.ParseLevel(str)
		if err != nil {
			return nil, &FieldError{Path: keyLogLevel, Value: v, Err: fmt.Errorf("%w: %v", ErrValidationFailed, err)}
		}
		s.LogLevel = level
	}

	raw, err := decodeKeybindings(m[keyKeybindings])
	if err != nil {
		return nil, err
	}
	s.Keybindings = raw

	table, err := keymap.Build(raw)
	if err != nil {
		return nil, err
	}
	s.Table = table
	return s, nil
}

func decodeInterval(v any) (uint8, error) {
	if v == nil {
		return 0, &FieldError{Path: keyInterval, Err: ErrValidationFailed}
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, &FieldError{Path: keyInterval, Value: v, Err: ErrTypeMismatch}
	}
	if n < 0 || n > math.MaxUint8 {
		return 0, &FieldError{
			Path:  keyInterval,
			Value: v,
			Err:   fmt.Errorf("%w: %d is outside 0..%d", ErrValidationFailed, n, math.MaxUint8),
		}
	}
	return uint8(n), nil
}

// toInt64 accepts the integer types produced by the TOML, YAML and env
// loaders, and whole floats.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func decodeKeybindings(v any) (keymap.Raw, error) {
	raw := keymap.Raw{}
	if v == nil {
		return raw, nil
	}

	modes, ok := v.(map[string]any)
	if !ok {
		return nil, &FieldError{Path: keyKeybindings, Value: v, Err: ErrTypeMismatch}
	}

	// Sorted so the first error reported is stable.
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := keyKeybindings + "." + name
		md, err := mode.Parse(name)
		if err != nil {
			return nil, &FieldError{Path: path, Value: name, Err: err}
		}

		entries, ok := modes[name].(map[string]any)
		if !ok {
			return nil, &FieldError{Path: path, Value: modes[name], Err: ErrTypeMismatch}
		}

		bindings := make(map[string]keymap.Value, len(entries))
		for keys, entry := range entries {
			val, err := decodeBinding(entry)
			if err != nil {
				return nil, &FieldError{Path: fmt.Sprintf("%s.%q", path, keys), Value: entry, Err: err}
			}
			bindings[keys] = val
		}
		raw[md] = bindings
	}
	return raw, nil
}

// decodeBinding accepts either an action name or a table with optional
// action and description.
func decodeBinding(v any) (keymap.Value, error) {
	switch b := v.(type) {
	case string:
		a, err := action.Parse(b)
		if err != nil {
			return keymap.Value{}, err
		}
		return keymap.Value{Action: a}, nil

	case map[string]any:
		var val keymap.Value
		if av, ok := b["action"]; ok {
			name, ok := av.(string)
			if !ok {
				return keymap.Value{}, fmt.Errorf("action: %w", ErrTypeMismatch)
			}
			a, err := action.Parse(name)
			if err != nil {
				return keymap.Value{}, err
			}
			val.Action = a
		}
		if dv, ok := b["description"]; ok {
			desc, ok := dv.(string)
			if !ok {
				return keymap.Value{}, fmt.Errorf("description: %w", ErrTypeMismatch)
			}
			val.Description = desc
		}
		return val, nil

	default:
		return keymap.Value{}, ErrTypeMismatch
	}
}
