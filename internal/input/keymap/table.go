package keymap

import (
	"fmt"
	"sort"

	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/mode"
)

// Raw holds unparsed bindings: mode to key-sequence text to value.
type Raw map[mode.Mode]map[string]Value

// BindingError reports a binding that could not be added to a table.
type BindingError struct {
	Mode mode.Mode
	Keys string
	Err  error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("keybinding %s %q: %v", e.Mode, e.Keys, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() error {
	return e.Err
}

// Table maps each mode to its binding tree. It is read-only once built.
type Table struct {
	trees map[mode.Mode]*Tree
}

// Build parses raw bindings into a table.
//
// Keys within a mode are inserted in lexical order of their text, so the
// result does not depend on map iteration order. A mode present in raw
// gets a tree even when it has no bindings.
func Build(raw Raw) (*Table, error) {
	t := &Table{trees: make(map[mode.Mode]*Tree, len(raw))}

	for _, m := range sortedModes(raw) {
		bindings := raw[m]
		keys := make([]string, 0, len(bindings))
		for k := range bindings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		tree := NewTree()
		for _, k := range keys {
			seq, err := key.ParseSequence(k)
			if err != nil {
				return nil, &BindingError{Mode: m, Keys: k, Err: err}
			}
			if err := tree.Insert(seq, bindings[k]); err != nil {
				return nil, &BindingError{Mode: m, Keys: k, Err: err}
			}
		}
		t.trees[m] = tree
	}
	return t, nil
}

// Tree returns the tree for m.
func (t *Table) Tree(m mode.Mode) (*Tree, bool) {
	tree, ok := t.trees[m]
	return tree, ok
}

// Modes returns the modes present in the table in declaration order.
func (t *Table) Modes() []mode.Mode {
	modes := make([]mode.Mode, 0, len(t.trees))
	for m := range t.trees {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

func sortedModes(raw Raw) []mode.Mode {
	modes := make([]mode.Mode, 0, len(raw))
	for m := range raw {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
