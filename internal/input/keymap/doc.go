// Package keymap stores key bindings as per-mode prefix trees.
//
// A Tree is an arena of nodes addressed by NodeID; node 0 is the root.
// Each node carries a Value (action and optional description) and an
// outgoing edge per Chord. Sequences that share a prefix share nodes.
//
// A Table maps each Mode to its Tree. Tables are built once from raw
// configuration and never mutated afterwards; reloading configuration
// produces a new Table.
package keymap
