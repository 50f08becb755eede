package mcts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traveller42/ishi/board"
	"github.com/traveller42/ishi/mcts"
)

func TestSearchIsDeterministicUnderSeed(t *testing.T) {
	root := board.New(5, 6.5)

	e1 := mcts.New(42)
	e2 := mcts.New(42)

	m1 := e1.Search(root, 200)
	m2 := e2.Search(root, 200)

	require.Equal(t, m1, m2)
}

func TestSearchDoesNotMutateCaller(t *testing.T) {
	root := board.New(5, 6.5)
	before := root.Dump(true)
	beforeHash := root.Hash()

	e := mcts.New(7)
	e.Search(root, 50)

	require.Equal(t, before, root.Dump(true))
	require.Equal(t, beforeHash, root.Hash())
}

// colIndex maps a column letter (A, B, ... skipping I) to a 0-based x.
func colIndex(col string) int {
	c := col[0]
	x := int(c - 'A')
	if c > 'I' {
		x--
	}
	return x
}

func move(b *board.Board, col string, row int) board.Move {
	x := colIndex(col)
	y := row - 1
	v := (y+1)*b.Stride() + (x + 1)
	return board.Move{V: v}
}

// TestSearchOnExhaustedPositionReturnsPass builds a genuinely exhausted
// position for Black: a 3x3 board where Black has filled every vertex
// except the center, and the center is Black's own true eye (all four
// orthogonal neighbours Black, no opposing diagonal). GenPseudoLegalMoves
// then yields zero candidates for Black, so Search must fall back to Pass
// rather than ever finding a root child.
func TestSearchOnExhaustedPositionReturnsPass(t *testing.T) {
	root := board.New(3, 0)
	B := func(col string, row int) board.Move { return move(root, col, row) }

	// Edge-middles first: each keeps a liberty at the empty center
	// while Black builds the ring, so none of these placements suicide.
	edgeMiddles := []board.Move{B("B", 1), B("C", 2), B("B", 3), B("A", 2)}
	corners := []board.Move{B("A", 1), B("C", 1), B("C", 3), B("A", 3)}

	for _, m := range edgeMiddles {
		require.True(t, root.Move(m))
		require.True(t, root.Move(board.Pass()))
	}
	for _, m := range corners {
		require.True(t, root.Move(m))
		require.True(t, root.Move(board.Pass()))
	}

	require.Equal(t, board.Black, root.ToPlay())
	center := B("B", 2)
	require.Equal(t, board.Empty, root.At(center.V))
	c, ok := root.IsEye(center.V)
	require.True(t, ok)
	require.Equal(t, board.Black, c)

	var candidates []board.Move
	root.GenPseudoLegalMoves(&candidates)
	require.Empty(t, candidates)

	e := mcts.New(1)
	m := e.Search(root, 10)
	require.True(t, m.IsPass())
}

func TestSearchReturnsEmptyVertexOrPass(t *testing.T) {
	root := board.New(5, 6.5)
	e := mcts.New(3, mcts.WithUCB1(1.41421356))
	m := e.Search(root, 150)

	if !m.IsPass() {
		require.Equal(t, board.Empty, root.At(m.V))
	}
}

func TestSearchWithRAVEAndUCB1AgreeOnLegality(t *testing.T) {
	root := board.New(5, 6.5)

	rave := mcts.New(11, mcts.WithRAVE())
	ucb1 := mcts.New(11, mcts.WithUCB1(1.41421356))

	mr := rave.Search(root, 150)
	mu := ucb1.Search(root, 150)

	for _, m := range []board.Move{mr, mu} {
		if !m.IsPass() {
			require.Equal(t, board.Empty, root.At(m.V))
		}
	}
}

func TestSearchTerminatesOnSmallBoard(t *testing.T) {
	root := board.New(3, 0.5)
	e := mcts.New(99)
	m := e.Search(root, 300)
	if !m.IsPass() {
		require.Equal(t, board.Empty, root.At(m.V))
	}
}
