// Package config loads application settings and key bindings.
//
// Settings are assembled from three layers, higher overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← TORRENTUI_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. User Config File        │  ← $XDG_CONFIG_HOME/torrentui/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← embedded default.toml
//	└─────────────────────────────┘
//
// Tables are merged recursively, so a user file that binds one extra key
// keeps the default bindings. The user file may be TOML or YAML; the
// format follows the file extension.
//
// # Key Bindings
//
//	[keybindings.TorrentList]
//	"<q>" = "Quit"
//	"<Ctrl-a>" = { description = "Add" }
//	"<Ctrl-a><t>" = { action = "AddTorrent", description = "Torrent" }
//
// A binding value is either an action name or a table with optional
// action (default NoOp) and description fields. Unknown modes, unknown
// actions and malformed key sequences fail the load.
//
// # Live Reload
//
// Reloader watches the user file and publishes freshly loaded Settings.
// A reload that fails to load is logged and the previous settings stay in
// effect.
package config
