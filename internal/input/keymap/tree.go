package keymap

import (
	"errors"
	"sort"

	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/key"
)

// ErrEmptySequence is returned when inserting a binding with no chords.
var ErrEmptySequence = errors.New("empty key sequence")

// NodeID addresses a node within a Tree.
type NodeID int

// Root is the ID of every tree's root node.
const Root NodeID = 0

// Value is what a binding resolves to.
type Value struct {
	// Action defaults to action.NoOp.
	Action action.Action

	// Description is optional help text.
	Description string
}

// Node is a single position in a Tree.
type Node struct {
	Value    Value
	children map[key.Chord]NodeID
}

// Edge is an outgoing transition from a node.
type Edge struct {
	Chord key.Chord
	To    NodeID
}

// Tree is an arena-allocated prefix tree of bindings.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree containing only the root node.
func NewTree() *Tree {
	return &Tree{nodes: []Node{{}}}
}

// Insert adds a binding for seq.
//
// Intermediate nodes are created as needed and keep whatever value they
// already have. The final node's value is overwritten, but its children
// are kept.
func (t *Tree) Insert(seq key.Sequence, v Value) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}

	id := Root
	for _, c := range seq {
		id = t.childOrCreate(id, c)
	}
	t.nodes[id].Value = v
	return nil
}

func (t *Tree) childOrCreate(id NodeID, c key.Chord) NodeID {
	if next, ok := t.nodes[id].children[c]; ok {
		return next
	}
	next := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{})
	if t.nodes[id].children == nil {
		t.nodes[id].children = make(map[key.Chord]NodeID)
	}
	t.nodes[id].children[c] = next
	return next
}

// Child returns the node reached from id by chord c.
func (t *Tree) Child(id NodeID, c key.Chord) (NodeID, bool) {
	next, ok := t.nodes[id].children[c]
	return next, ok
}

// Value returns the value stored at id.
func (t *Tree) Value(id NodeID) Value {
	return t.nodes[id].Value
}

// IsLeaf reports whether id has no outgoing edges.
func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}

// Lookup follows seq from the root.
func (t *Tree) Lookup(seq key.Sequence) (NodeID, bool) {
	id := Root
	for _, c := range seq {
		next, ok := t.Child(id, c)
		if !ok {
			return Root, false
		}
		id = next
	}
	return id, true
}

// Edges returns the outgoing edges of id ordered by chord text.
func (t *Tree) Edges(id NodeID) []Edge {
	children := t.nodes[id].children
	edges := make([]Edge, 0, len(children))
	for c, to := range children {
		edges = append(edges, Edge{Chord: c, To: to})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Chord.String() < edges[j].Chord.String()
	})
	return edges
}

// Binding is a full sequence and the value at its end.
type Binding struct {
	Keys  key.Sequence
	Value Value
}

// Bindings lists every node that carries a non-NoOp action or a
// description, in depth-first order with edges ordered by chord text.
func (t *Tree) Bindings() []Binding {
	var out []Binding
	var walk func(id NodeID, prefix key.Sequence)
	walk = func(id NodeID, prefix key.Sequence) {
		v := t.nodes[id].Value
		if id != Root && (v.Action != action.NoOp || v.Description != "") {
			keys := make(key.Sequence, len(prefix))
			copy(keys, prefix)
			out = append(out, Binding{Keys: keys, Value: v})
		}
		for _, e := range t.Edges(id) {
			walk(e.To, append(prefix, e.Chord))
		}
	}
	walk(Root, nil)
	return out
}
