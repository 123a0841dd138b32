package key

import (
	"strings"
	"unicode"
)

// Chord is the normalized identity of one key press: key code, rune and
// modifier set. Chords are comparable and are used as map keys.
type Chord struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewChord builds a canonical chord.
//
// For rune keys Shift upper-cases the rune and an upper-case rune implies
// Shift, so <Shift-q> and <Q> are the same chord. BackTab always carries
// Shift. Non-rune keys never carry a rune.
func NewChord(k Key, r rune, mods Modifier) Chord {
	switch k {
	case KeyRune:
		if mods.Has(ModShift) {
			r = unicode.ToUpper(r)
		}
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
	case KeyBacktab:
		r = 0
		mods = mods.With(ModShift)
	default:
		r = 0
	}
	return Chord{Key: k, Rune: r, Modifiers: mods}
}

// RuneChord is shorthand for NewChord(KeyRune, r, mods).
func RuneChord(r rune, mods Modifier) Chord {
	return NewChord(KeyRune, r, mods)
}

// String renders the chord as a single grammar segment such as "<Ctrl-a>",
// "<Q>" or "<BackTab>". Shift is implied, and omitted, for upper-case
// runes and for BackTab.
func (c Chord) String() string {
	mods := c.Modifiers
	var name string
	switch c.Key {
	case KeyRune:
		if unicode.IsUpper(c.Rune) {
			mods = mods.Without(ModShift)
		}
		name = runeName(c.Rune)
	case KeyBacktab:
		mods = mods.Without(ModShift)
		name = c.Key.String()
	default:
		name = c.Key.String()
	}

	var b strings.Builder
	b.WriteByte('<')
	if s := mods.String(); s != "" {
		b.WriteString(s)
		b.WriteByte('-')
	}
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

func runeName(r rune) string {
	switch r {
	case ' ':
		return "Space"
	case '-':
		return "Minus"
	default:
		return string(r)
	}
}
