package keymap

import (
	"errors"
	"testing"

	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/mode"
)

func TestBuild(t *testing.T) {
	raw := Raw{
		mode.TorrentList: {
			"<q>":         {Action: action.Quit},
			"<Ctrl-a>":    {Description: "Add"},
			"<Ctrl-a><t>": {Action: action.AddTorrent, Description: "Torrent"},
		},
		mode.AddTorrent: {
			"<esc>": {Action: action.Cancel},
		},
	}

	table, err := Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := table.Modes(); len(got) != 2 || got[0] != mode.TorrentList || got[1] != mode.AddTorrent {
		t.Errorf("Modes() = %v", got)
	}

	tree, ok := table.Tree(mode.TorrentList)
	if !ok {
		t.Fatal("missing TorrentList tree")
	}
	id, ok := tree.Lookup(key.MustParseSequence("<Ctrl-a><t>"))
	if !ok || tree.Value(id).Action != action.AddTorrent {
		t.Errorf("<Ctrl-a><t> not bound to AddTorrent")
	}

	addTree, _ := table.Tree(mode.AddTorrent)
	if _, ok := addTree.Lookup(key.MustParseSequence("<q>")); ok {
		t.Error("modes should have independent trees")
	}
}

func TestBuildDeterministicOverwrite(t *testing.T) {
	// Equivalent spellings collapse to one node; the lexically later key wins.
	tests := []struct {
		first, second string
		lookup        string
		want          action.Action
	}{
		{"<Shift-q>", "<Q>", "<Q>", action.Quit},
		{"<Ctrl-c>", "<CTRL-c>", "<Ctrl-c>", action.Quit},
		{"<Ctrl-c>", "<ctrl-c>", "<Ctrl-c>", action.Cancel},
		{"<Alt-Ctrl-x>", "<Ctrl-Alt-x>", "<Ctrl-Alt-x>", action.Cancel},
	}

	for _, tt := range tests {
		raw := Raw{
			mode.TorrentList: {
				tt.first:  {Action: action.Quit},
				tt.second: {Action: action.Cancel},
			},
		}
		for i := 0; i < 20; i++ {
			table, err := Build(raw)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			tree, _ := table.Tree(mode.TorrentList)
			if got := len(tree.nodes); got != 2 {
				t.Fatalf("%s and %s: %d nodes, want 2", tt.first, tt.second, got)
			}
			id, _ := tree.Lookup(key.MustParseSequence(tt.lookup))
			if got := tree.Value(id).Action; got != tt.want {
				t.Fatalf("%s and %s, iteration %d: %s = %v, want %v", tt.first, tt.second, i, tt.lookup, got, tt.want)
			}
		}
	}
}

func TestBuildEmptyMode(t *testing.T) {
	table, err := Build(Raw{mode.AddTorrent: {}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := table.Tree(mode.AddTorrent); !ok {
		t.Error("empty mode should still get a tree")
	}
	if _, ok := table.Tree(mode.TorrentList); ok {
		t.Error("absent mode should have no tree")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		keys    string
		wantErr error
	}{
		{"grammar", "<nope>", key.ErrUnknownKey},
		{"unclosed", "<q", key.ErrUnclosed},
		{"empty", "", ErrEmptySequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(Raw{mode.AddTorrent: {tt.keys: {Action: action.Quit}}})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build error = %v, want %v", err, tt.wantErr)
			}
			var be *BindingError
			if !errors.As(err, &be) {
				t.Fatalf("error is %T, want *BindingError", err)
			}
			if be.Mode != mode.AddTorrent || be.Keys != tt.keys {
				t.Errorf("BindingError = %+v", be)
			}
		})
	}
}
