// Package key provides key event types and chord parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press as reported by the terminal
//   - Chord: The canonical identity of a key press, used for binding lookup
//   - Sequence: An ordered list of chords that together trigger one action
//
// # Chord Grammar
//
// Key sequences in configuration are written as a concatenation of
// bracketed segments:
//
//	<q>             - plain q
//	<Ctrl-a><t>     - Ctrl+A followed by t
//	<alt-ctrl-x>    - modifiers in any order, case-insensitive
//	<Shift-q>, <Q>  - the same chord
//	<backtab>       - Shift+Tab
//
// Canonicalization makes modifier order and letter case irrelevant to a
// chord's identity, so parsed chords and runtime key events compare equal
// with ==.
package key
