package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the application's config, state and log locations.
const AppName = "torrentui"

var configNames = []string{"config.toml", "config.yaml", "config.yml"}

// DefaultPath returns the first existing config file in the XDG config
// directories, or the TOML path under XDG_CONFIG_HOME if none exists.
func DefaultPath() string {
	for _, name := range configNames {
		if p, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return p
		}
	}
	return filepath.Join(xdg.ConfigHome, AppName, configNames[0])
}

// LogPath returns the log file path under XDG_STATE_HOME, creating its
// directory.
func LogPath() (string, error) {
	return xdg.StateFile(filepath.Join(AppName, AppName+".log"))
}
