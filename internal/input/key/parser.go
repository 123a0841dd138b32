package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrMissingOpen = errors.New("expected '<' at start of key segment")
	ErrUnclosed    = errors.New("unclosed '<'")
	ErrUnknownKey  = errors.New("unknown key")
)

// ParseError describes a key sequence that could not be parsed.
type ParseError struct {
	// Raw is the full sequence text as written.
	Raw string
	// Segment is the offending segment, when one could be isolated.
	Segment string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("parse key sequence %q: %v %q", e.Raw, e.Err, e.Segment)
	}
	return fmt.Sprintf("parse key sequence %q: %v", e.Raw, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseSequence parses a chord sequence such as "<Ctrl-a><t>".
//
// Each segment holds zero or more of the prefixes "ctrl-", "alt-" and
// "shift-" (any order, case-insensitive) followed by a key name or a
// single printable character. An empty string yields an empty sequence.
func ParseSequence(raw string) (Sequence, error) {
	var seq Sequence
	rest := raw
	for rest != "" {
		if rest[0] != '<' {
			return nil, &ParseError{Raw: raw, Err: ErrMissingOpen}
		}
		end := strings.IndexByte(rest[1:], '>')
		if end < 0 {
			return nil, &ParseError{Raw: raw, Err: ErrUnclosed}
		}
		segment := rest[1 : end+1]
		c, err := ParseChord(segment)
		if err != nil {
			return nil, &ParseError{Raw: raw, Segment: segment, Err: err}
		}
		seq = append(seq, c)
		rest = rest[end+2:]
	}
	return seq, nil
}

// ParseChord parses the inside of a single segment, without brackets.
func ParseChord(segment string) (Chord, error) {
	name, mods := stripModifiers(segment)

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			return Chord{}, ErrUnknownKey
		}
		return RuneChord(r, mods), nil
	}

	k, r, ok := lookupName(name)
	if !ok {
		return Chord{}, ErrUnknownKey
	}
	return NewChord(k, r, mods), nil
}

// MustParseSequence parses a sequence and panics on error.
// Use only for known-valid sequences, e.g. in tests or defaults.
func MustParseSequence(raw string) Sequence {
	seq, err := ParseSequence(raw)
	if err != nil {
		panic(err)
	}
	return seq
}
