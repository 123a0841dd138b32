package input

import (
	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/keymap"
	"github.com/fucaluca/torrentui/internal/input/mode"
)

// ResultKind classifies the outcome of a single Step.
type ResultKind uint8

const (
	// NoMatch means the chord has no edge from the current position.
	NoMatch ResultKind = iota
	// Pending means the chord led to a node with further bindings.
	Pending
	// Fired means the chord completed a binding.
	Fired
)

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case Pending:
		return "Pending"
	case Fired:
		return "Fired"
	default:
		return "Unknown"
	}
}

// Result is the outcome of feeding one key event to a Matcher.
type Result struct {
	Kind ResultKind

	// Action is set when Kind is Fired. A leaf bound to NoOp fires NoOp.
	Action action.Action

	// Description of the fired binding, if any.
	Description string

	// Keys is the sequence consumed so far, including this chord.
	Keys key.Sequence
}

// Hint describes one chord available from the current position.
type Hint struct {
	Chord       key.Chord
	Action      action.Action
	Description string

	// Prefix is true when the chord leads to further bindings.
	Prefix bool
}

// Matcher tracks a position in the active mode's binding tree.
type Matcher struct {
	table   *keymap.Table
	mode    mode.Mode
	tree    *keymap.Tree
	current keymap.NodeID
	pending key.Sequence
}

// NewMatcher creates a matcher positioned at the root of initial's tree.
func NewMatcher(table *keymap.Table, initial mode.Mode) (*Matcher, error) {
	tree, ok := table.Tree(initial)
	if !ok {
		return nil, &ModeNotFoundError{Requested: initial, Available: table.Modes()}
	}
	return &Matcher{
		table:   table,
		mode:    initial,
		tree:    tree,
		current: keymap.Root,
	}, nil
}

// Step advances the matcher by one key event.
func (m *Matcher) Step(ev key.Event) Result {
	c := ev.Chord()

	next, ok := m.tree.Child(m.current, c)
	if !ok {
		keys := m.consumed(c)
		m.Reset()
		return Result{Kind: NoMatch, Keys: keys}
	}

	if m.tree.IsLeaf(next) {
		v := m.tree.Value(next)
		keys := m.consumed(c)
		m.Reset()
		return Result{
			Kind:        Fired,
			Action:      v.Action,
			Description: v.Description,
			Keys:        keys,
		}
	}

	m.current = next
	m.pending = append(m.pending, c)
	return Result{Kind: Pending, Keys: m.Pending()}
}

// HandleKey feeds ev to the matcher and returns the fired action, if any.
// Pending and unmatched keys return false.
func (m *Matcher) HandleKey(ev key.Event) (action.Action, bool) {
	r := m.Step(ev)
	if r.Kind != Fired {
		return action.NoOp, false
	}
	return r.Action, true
}

// SetMode switches to the tree for md and resets the position.
// On error the matcher is left unchanged.
func (m *Matcher) SetMode(md mode.Mode) error {
	tree, ok := m.table.Tree(md)
	if !ok {
		return &ModeNotFoundError{Requested: md, Available: m.table.Modes()}
	}
	m.mode = md
	m.tree = tree
	m.Reset()
	return nil
}

// Mode returns the active mode.
func (m *Matcher) Mode() mode.Mode {
	return m.mode
}

// AtRoot reports whether no sequence is in progress.
func (m *Matcher) AtRoot() bool {
	return m.current == keymap.Root
}

// Pending returns a copy of the chords consumed by the sequence in progress.
func (m *Matcher) Pending() key.Sequence {
	if len(m.pending) == 0 {
		return nil
	}
	out := make(key.Sequence, len(m.pending))
	copy(out, m.pending)
	return out
}

// Reset abandons any sequence in progress.
func (m *Matcher) Reset() {
	m.current = keymap.Root
	m.pending = m.pending[:0]
}

// Hints lists the chords available from the current position.
func (m *Matcher) Hints() []Hint {
	edges := m.tree.Edges(m.current)
	hints := make([]Hint, len(edges))
	for i, e := range edges {
		v := m.tree.Value(e.To)
		hints[i] = Hint{
			Chord:       e.Chord,
			Action:      v.Action,
			Description: v.Description,
			Prefix:      !m.tree.IsLeaf(e.To),
		}
	}
	return hints
}

// Replace adopts a new binding table, for example after a config reload.
// The active mode is kept if the new table has it, otherwise the matcher
// falls back to mode.Default. The position is reset either way.
func (m *Matcher) Replace(table *keymap.Table) error {
	md := m.mode
	tree, ok := table.Tree(md)
	if !ok {
		md = mode.Default
		if tree, ok = table.Tree(md); !ok {
			return &ModeNotFoundError{Requested: m.mode, Available: table.Modes()}
		}
	}
	m.table = table
	m.mode = md
	m.tree = tree
	m.Reset()
	return nil
}

func (m *Matcher) consumed(c key.Chord) key.Sequence {
	keys := make(key.Sequence, 0, len(m.pending)+1)
	keys = append(keys, m.pending...)
	return append(keys, c)
}
