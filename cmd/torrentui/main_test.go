package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/mode"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKeysCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[keybindings.AddTorrent]\n\"<Ctrl-o>\" = { description = \"Open file\" }\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "keys", "--config", path)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}

	for _, want := range []string{
		"# " + path,
		"[TorrentList]",
		"[AddTorrent]",
		"<Ctrl-a><t>",
		"AddTorrent",
		"<Ctrl-o>",
		"Open file",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKeysCommandMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	out, err := execute(t, "keys", "-c", path, "--mode", "AddTorrent")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !strings.Contains(out, "# defaults") {
		t.Errorf("expected defaults header:\n%s", out)
	}
	if strings.Contains(out, "[TorrentList]") {
		t.Errorf("unexpected TorrentList section:\n%s", out)
	}
	if !strings.Contains(out, "<Esc>") {
		t.Errorf("expected escape binding:\n%s", out)
	}
}

func TestKeysCommandErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[keybindings.TorrentList]\n\"<q\" = \"Quit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "keys", "--config", path); !errors.Is(err, key.ErrUnclosed) {
		t.Errorf("bad config: error = %v, want ErrUnclosed", err)
	}
	if _, err := execute(t, "keys", "--mode", "Nope", "--config", filepath.Join(t.TempDir(), "x.toml")); !errors.Is(err, mode.ErrUnknownMode) {
		t.Errorf("bad mode: error = %v, want ErrUnknownMode", err)
	}
}

func TestKeysCommandSequence(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	user := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(user, []byte("[keybindings.TorrentList]\n\"<Ctrl-a>\" = \"Quit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		config string
		seq    string
		want   map[string]string
	}{
		{
			name:   "leaf",
			config: missing,
			seq:    "<ctrl-A><T>",
			want: map[string]string{
				"TorrentList": "<Ctrl-A><T>  AddTorrent  Torrent",
				"AddTorrent":  "not bound",
			},
		},
		{
			name:   "prefix",
			config: missing,
			seq:    "<Ctrl-a>",
			want:   map[string]string{"TorrentList": "<Ctrl-a>  prefix  Add"},
		},
		{
			name:   "user table replaces defaults",
			config: user,
			seq:    "<Ctrl-a>",
			want:   map[string]string{"TorrentList": "<Ctrl-a>  Quit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "keys", "--config", tt.config, tt.seq)
			if err != nil {
				t.Fatalf("keys %s: %v", tt.seq, err)
			}
			lines := strings.Split(out, "\n")
			for m, want := range tt.want {
				found := false
				for _, line := range lines {
					if strings.HasPrefix(line, m+" ") && strings.Contains(line, want) {
						found = true
					}
				}
				if !found {
					t.Errorf("no %s line containing %q:\n%s", m, want, out)
				}
			}
		})
	}

	if _, err := execute(t, "keys", "--config", missing, "<q"); !errors.Is(err, key.ErrUnclosed) {
		t.Errorf("bad sequence: error = %v, want ErrUnclosed", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output %q does not contain %q", out, version)
	}
}
