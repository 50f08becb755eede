package mcts

import "math"

// defaultExplorationParam is UCB1's C, the textbook sqrt(2).
const defaultExplorationParam = math.Sqrt2

// ucb1Score scores a child under the baseline UCB1 formula:
// wins/visits + C*sqrt(log(parentVisits+1)/visits), with unvisited
// children treated as +Inf so every child is tried once before any
// exploitation happens.
func (e *Engine) ucb1Score(child *Node, parentVisits int) float64 {
	v := child.Visits + child.PriorVisits
	if v == 0 {
		return math.Inf(1)
	}
	w := float64(child.Wins + child.PriorWins)
	exploitation := w / float64(v)
	exploration := e.ucbC * math.Sqrt(math.Log(float64(parentVisits+1))/float64(v))
	return exploitation + exploration
}
