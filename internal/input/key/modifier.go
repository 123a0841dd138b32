package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt // also Meta and Option
)

// modifierNames lists modifiers in display order, with the grammar
// prefix each one is written as.
var modifierNames = []struct {
	mod    Modifier
	name   string
	prefix string
}{
	{ModCtrl, "Ctrl", "ctrl-"},
	{ModAlt, "Alt", "alt-"},
	{ModShift, "Shift", "shift-"},
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With adds mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without removes mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String joins the held modifiers as "Ctrl-Alt-Shift", always in that
// order. ModNone is the empty string.
func (m Modifier) String() string {
	parts := make([]string, 0, len(modifierNames))
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "-")
}

// stripModifiers removes leading "ctrl-", "alt-" and "shift-" prefixes,
// in any order and case, and returns what is left with the modifiers seen.
func stripModifiers(s string) (string, Modifier) {
	var mods Modifier
outer:
	for {
		for _, n := range modifierNames {
			if len(s) >= len(n.prefix) && strings.EqualFold(s[:len(n.prefix)], n.prefix) {
				mods |= n.mod
				s = s[len(n.prefix):]
				continue outer
			}
		}
		return s, mods
	}
}
