package key

import "strings"

// Sequence is an ordered list of chords that together trigger one binding.
type Sequence []Chord

// String renders the sequence in canonical grammar form, e.g. "<Ctrl-a><t>".
func (s Sequence) String() string {
	return FormatSequence(s)
}

// FormatSequence renders chords in canonical grammar form. The result
// parses back to the same chords.
func FormatSequence(chords []Chord) string {
	var b strings.Builder
	for _, c := range chords {
		b.WriteString(c.String())
	}
	return b.String()
}
