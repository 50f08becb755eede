// Package playout implements the heuristic random-move policy used
// during MCTS rollouts: ko-recapture and capture candidates are tried
// with a bounded probability ahead of the full pseudo-legal set, so
// playouts favor locally sharp replies without a full move evaluator.
package playout

import (
	"math/rand"

	"github.com/traveller42/ishi/board"
)

const (
	koRecaptureProb = 0.4
	captureProb     = 0.3
)

// Buffers holds reusable candidate-move storage so a playout can run
// to completion without per-call allocation.
type Buffers struct {
	candidates []board.Move
}

// NewBuffers returns a ready-to-use, empty Buffers.
func NewBuffers() *Buffers {
	return &Buffers{}
}

// PlayHeuristicMove plays one move for b.ToPlay() on b and returns it
// (Pass if nothing else succeeds). Three candidate sources are probed
// in order: a stale ko recapture, nearby capture moves, then the full
// pseudo-legal set; within each source, candidates are shuffled and
// tried in order until one is accepted by b.Move.
func PlayHeuristicMove(b *board.Board, r *rand.Rand, buf *Buffers) board.Move {
	if r.Float64() < koRecaptureProb {
		if m, ok := koRecaptureCandidate(b); ok && b.Move(m) {
			return m
		}
	}

	if r.Float64() < captureProb {
		genCaptureCandidates(b, &buf.candidates)
		shuffle(buf.candidates, r)
		for _, m := range buf.candidates {
			if b.Move(m) {
				return m
			}
		}
	}

	b.GenPseudoLegalMoves(&buf.candidates)
	shuffle(buf.candidates, r)
	for _, m := range buf.candidates {
		if b.Move(m) {
			return m
		}
	}

	pass := board.Pass()
	b.Move(pass)
	return pass
}

// koRecaptureCandidate is the move recapturing a recently-forbidden ko
// stone, now that the ko has gone stale (1 to 4 plies old). It is only
// a candidate: Move still enforces legality.
func koRecaptureCandidate(b *board.Board) (board.Move, bool) {
	if b.KoPoint() < 0 {
		return board.Move{}, false
	}
	age := b.PlyCount() - b.KoAge()
	if age < 1 || age > 4 {
		return board.Move{}, false
	}
	return board.Move{V: b.KoPoint()}, true
}

// genCaptureCandidates fills *out with empty vertices in the vicinity
// of the last two moves for which a capture would occur.
func genCaptureCandidates(b *board.Board, out *[]board.Move) {
	*out = (*out)[:0]
	neigh, n := b.LastMovesNeigh()
	for i := 0; i < n; i++ {
		v := neigh[i]
		if b.At(v) != board.Empty {
			continue
		}
		m := board.Move{V: v}
		if b.IsCapture(m) {
			*out = append(*out, m)
		}
	}
}

// shuffle performs a Fisher-Yates shuffle driven by an explicit RNG.
func shuffle(a []board.Move, r *rand.Rand) {
	for i := range a {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
