// Package mcts implements the tree-growth half of the search: a flat,
// append-only node arena addressed by index, incremental expansion,
// and UCB1/RAVE selection with backpropagation of simulated Go
// outcomes. The engine is single-threaded by design: one Engine owns
// exclusive access to its arena and to the live Board it mutates
// during a Search call.
package mcts

import "github.com/traveller42/ishi/board"

// Node is one element of the search arena. Parent == -1 marks the
// root. Children are indices into the same arena, never pointers, so
// the arena can grow (reallocate) without invalidating references
// held elsewhere.
type Node struct {
	Move     board.Move
	Parent   int
	Children []int

	// JustPlayed is the color that plays Move from this node's parent
	// — i.e. the mover credited with this node's outcome in backprop.
	JustPlayed board.Color

	Visits int
	Wins   int

	RaveVisits int
	RaveWins   int

	PriorVisits int
	PriorWins   int
}
