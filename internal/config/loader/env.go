package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnv maps environment variables to dotted setting paths.
var DefaultEnv = map[string]string{
	"TORRENTUI_LOG_LEVEL":                    "log_level",
	"TORRENTUI_UPDATE_TORRENT_LIST_INTERVAL": "update_torrent_list_interval",
}

// Env loads settings from environment variables.
type Env struct {
	vars map[string]string
}

// NewEnv reads the variables in DefaultEnv.
func NewEnv() *Env {
	return NewEnvWithMapping(DefaultEnv)
}

// NewEnvWithMapping reads the given variables; each maps to a dotted
// setting path such as "log_level".
func NewEnvWithMapping(vars map[string]string) *Env {
	return &Env{vars: vars}
}

// Load returns the variables that are set, even to the empty string.
func (e *Env) Load() (map[string]any, error) {
	out := map[string]any{}
	for name, path := range e.vars {
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		assign(out, strings.Split(path, "."), envValue(raw))
	}
	return out, nil
}

// envValue types a variable the way a config file would: integers first,
// then booleans, otherwise the string itself.
func envValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func assign(m map[string]any, path []string, v any) {
	if len(path) == 1 {
		m[path[0]] = v
		return
	}
	child, ok := m[path[0]].(map[string]any)
	if !ok {
		child = map[string]any{}
		m[path[0]] = child
	}
	assign(child, path[1:], v)
}
