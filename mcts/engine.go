package mcts

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/traveller42/ishi/board"
	"github.com/traveller42/ishi/playout"
	"github.com/traveller42/ishi/rng"
)

// SelectionPolicy chooses which formula Engine.selectChild uses to
// pick among a node's children; RAVE is the default (see DESIGN.md).
type SelectionPolicy int

const (
	RAVE SelectionPolicy = iota
	UCB1
)

// Option configures an Engine at construction time, following the
// functional-option idiom this corpus uses for search constructors.
type Option func(*Engine)

// WithUCB1 selects the baseline UCB1 formula with exploration
// parameter c (sqrt(2) is the textbook value).
func WithUCB1(c float64) Option {
	return func(e *Engine) {
		e.policy = UCB1
		e.ucbC = c
	}
}

// WithRAVE selects the RAVE/AMAF selection formula (the default).
func WithRAVE() Option {
	return func(e *Engine) {
		e.policy = RAVE
	}
}

// WithLogger attaches a structured logger used only at Search's entry
// and exit, never inside the iteration loop.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns a node arena and runs MCTS searches over Board
// positions. One Engine is not safe for concurrent use; run
// independent Engines (and Boards) in parallel instead.
type Engine struct {
	nodes []Node
	amaf  []board.Point

	rng    *rand.Rand
	policy SelectionPolicy
	ucbC   float64
	logger zerolog.Logger

	buffers *playout.Buffers
}

// New constructs an Engine seeded deterministically: two Engines built
// with the same seed and run over the same root position produce the
// same search tree and the same chosen move.
func New(seed int64, opts ...Option) *Engine {
	e := &Engine{
		rng:     rng.New(seed),
		policy:  RAVE,
		ucbC:    defaultExplorationParam,
		logger:  zerolog.Nop(),
		buffers: playout.NewBuffers(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs iters MCTS iterations starting from root (which is
// cloned; the caller's Board is never mutated) and returns the move
// with the most root-child visits, or Pass if the root has no
// expandable moves.
func (e *Engine) Search(root *board.Board, iters int) board.Move {
	pos := root.Clone()
	rootPly := pos.PlyCount()

	e.nodes = e.nodes[:0]
	e.nodes = append(e.nodes, Node{Move: board.Pass(), Parent: -1})

	amafLen := pos.GridLen()
	if cap(e.amaf) < amafLen {
		e.amaf = make([]board.Point, amafLen)
	}
	e.amaf = e.amaf[:amafLen]

	var candBuf []board.Move

	e.logger.Debug().Int("iters", iters).Int("size", pos.Size()).Msg("search start")

	for it := 0; it < iters; it++ {
		for i := range e.amaf {
			e.amaf[i] = board.Empty
		}

		leaf, path := e.descend(pos)

		if len(e.nodes[leaf].Children) == 0 {
			e.expand(leaf, pos, &candBuf)
			if children := e.nodes[leaf].Children; len(children) > 0 {
				child := children[0]
				leaf = e.step(pos, child)
				path = append(path, leaf)
			}
		}

		score := e.playout(pos)
		e.backprop(path, score)

		pos.Undo(pos.PlyCount() - rootPly)
	}

	move := e.bestMove()
	e.logger.Debug().Int("vertex", move.V).Bool("pass", move.IsPass()).Msg("search done")
	return move
}

// step plays the move stored at child on pos, recording the AMAF
// entry for it if the vertex has not been claimed yet this iteration.
func (e *Engine) step(pos *board.Board, child int) int {
	mover := pos.ToPlay()
	m := e.nodes[child].Move
	pos.Move(m)
	if !m.IsPass() && e.amaf[m.V] == board.Empty {
		e.amaf[m.V] = board.ToPoint(mover)
	}
	return child
}

// descend walks from the root toward a leaf (a node with no children
// yet), selecting a child by the configured selection score at each
// step and playing its move on pos. It returns the leaf's index and
// the full path of visited node indices (root first).
func (e *Engine) descend(pos *board.Board) (leaf int, path []int) {
	cur := 0
	path = append(path, cur)
	for len(e.nodes[cur].Children) > 0 {
		cur = e.step(pos, e.selectChild(cur))
		path = append(path, cur)
	}
	return cur, path
}

// selectChild returns the index of parent's highest-scoring child
// under the configured policy, ties broken by first encounter.
func (e *Engine) selectChild(parent int) int {
	children := e.nodes[parent].Children
	parentVisits := e.nodes[parent].Visits

	best := children[0]
	bestScore := -1.0
	first := true

	for _, c := range children {
		child := &e.nodes[c]
		var score float64
		if e.policy == UCB1 {
			score = e.ucb1Score(child, parentVisits)
		} else {
			score = e.raveScore(child)
		}
		if first || score > bestScore {
			bestScore = score
			best = c
			first = false
		}
	}
	return best
}

// expand adds one child per pseudo-legal move from pos at nodeIdx,
// unless nodeIdx already has children.
func (e *Engine) expand(nodeIdx int, pos *board.Board, candBuf *[]board.Move) {
	if len(e.nodes[nodeIdx].Children) > 0 {
		return
	}
	mover := pos.ToPlay()
	pos.GenPseudoLegalMoves(candBuf)
	for _, m := range *candBuf {
		e.nodes = append(e.nodes, Node{Move: m, Parent: nodeIdx, JustPlayed: mover})
		idx := len(e.nodes) - 1
		e.nodes[nodeIdx].Children = append(e.nodes[nodeIdx].Children, idx)
	}
}

// playout runs heuristic random moves on pos until two consecutive
// passes or a 3*n^2 move bound, recording AMAF entries for the moves
// it plays, and returns the evaluated score from the perspective of
// the color to play when the playout started.
func (e *Engine) playout(pos *board.Board) float64 {
	perspective := pos.ToPlay()
	maxMoves := 3 * pos.Size() * pos.Size()
	passes := 0

	for mv := 0; passes < 2 && mv < maxMoves; mv++ {
		played := playout.PlayHeuristicMove(pos, e.rng, e.buffers)
		if played.IsPass() {
			passes++
			continue
		}
		passes = 0
		if e.amaf[played.V] == board.Empty {
			mover := pos.ToPlay().Opp() // Move already flipped ToPlay
			e.amaf[played.V] = board.ToPoint(mover)
		}
	}

	return pos.Evaluate(perspective)
}

// backprop propagates score up path (leaf to root), incrementing
// visit/win counters and updating RAVE statistics
// for each visited node's children whose move matches the AMAF map.
func (e *Engine) backprop(path []int, score float64) {
	for i := len(path) - 1; i >= 0; i-- {
		node := &e.nodes[path[i]]
		node.Visits++
		if score < 0 {
			node.Wins++
		}

		for _, ci := range node.Children {
			child := &e.nodes[ci]
			if child.Move.IsPass() {
				continue
			}
			if e.amaf[child.Move.V] == board.ToPoint(child.JustPlayed) {
				child.RaveVisits++
				if score > 0 {
					child.RaveWins++
				}
			}
		}

		score = -score
	}
}

// bestMove picks the root child with the highest visit count, ties
// broken by first encounter, or Pass if the root has no children.
func (e *Engine) bestMove() board.Move {
	children := e.nodes[0].Children
	if len(children) == 0 {
		return board.Pass()
	}
	best := children[0]
	bestVisits := e.nodes[best].Visits
	for _, c := range children[1:] {
		if e.nodes[c].Visits > bestVisits {
			bestVisits = e.nodes[c].Visits
			best = c
		}
	}
	return e.nodes[best].Move
}

