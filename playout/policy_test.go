package playout_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traveller42/ishi/board"
	"github.com/traveller42/ishi/playout"
)

func TestPlayHeuristicMoveAlwaysLegal(t *testing.T) {
	b := board.New(9, 6.5)
	r := rand.New(rand.NewSource(1))
	buf := playout.NewBuffers()

	for i := 0; i < 200; i++ {
		toPlay := b.ToPlay()
		m := playout.PlayHeuristicMove(b, r, buf)
		if m.IsPass() {
			continue
		}
		require.Equal(t, toPlay.Opp(), b.ToPlay(), "move must have been accepted and flipped ToPlay")
	}
}

func TestPlayHeuristicMoveTerminatesWithPassesOnExhaustedBoard(t *testing.T) {
	b := board.New(2, 0)
	r := rand.New(rand.NewSource(1))
	buf := playout.NewBuffers()

	passes := 0
	for i := 0; i < 20 && passes < 2; i++ {
		m := playout.PlayHeuristicMove(b, r, buf)
		if m.IsPass() {
			passes++
		} else {
			passes = 0
		}
	}
	require.GreaterOrEqual(t, passes, 1)
}
