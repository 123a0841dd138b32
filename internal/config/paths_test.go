package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if !strings.Contains(p, AppName) {
		t.Errorf("DefaultPath() = %q, want it under %q", p, AppName)
	}
	switch filepath.Ext(p) {
	case ".toml", ".yaml", ".yml":
	default:
		t.Errorf("DefaultPath() = %q has unexpected extension", p)
	}
}
