// Package input resolves key presses into actions.
//
// The Matcher walks the active mode's binding tree one chord at a time.
// Each step either fires an action (a leaf was reached), leaves a
// sequence pending (an inner node was reached) or misses. Both firing
// and missing return to the root, so the next key starts a new sequence.
//
// There is no timeout: a node that has children never fires when it is
// reached, even if it carries an action. Its action and description are
// still reported through Hints.
//
// # Usage
//
//	table, err := keymap.Build(raw)
//	m, err := input.NewMatcher(table, mode.Default)
//	if act, ok := m.HandleKey(ev); ok {
//		// dispatch act
//	}
//
// A Matcher is owned by a single goroutine and is not safe for
// concurrent use.
package input
