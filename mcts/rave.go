package mcts

import "math"

// RaveEquiv is the RAVE/UCB1 equivalence parameter; it controls how
// many real visits a RAVE estimate is worth before the selection score
// trusts real statistics over all-moves-as-first ones.
const RaveEquiv = 3500

// raveScore blends the prior-injected win rate with the RAVE (AMAF)
// estimate: w = C.w+C.pw, v = C.v+C.pv; if the child has no RAVE
// visits yet, the score is just w/v; otherwise blend with
// beta = av / (av + v + v*av/RaveEquiv). A child with real visits but
// no RAVE evidence falls back to w/v; a child with RAVE evidence but
// no real visits yet trusts the AMAF estimate outright (beta's limit
// at v=0 is 1) rather than being treated as a blind +Inf explore, the
// way UCB1 treats an unvisited child. Only a child with neither kind
// of evidence gets +Inf.
func (e *Engine) raveScore(child *Node) float64 {
	v := child.Visits + child.PriorVisits
	av := float64(child.RaveVisits)

	if av == 0 {
		if v == 0 {
			return math.Inf(1)
		}
		return float64(child.Wins+child.PriorWins) / float64(v)
	}

	aw := float64(child.RaveWins)
	if v == 0 {
		return aw / av
	}

	beta := av / (av + float64(v) + float64(v)*av/RaveEquiv)
	expectation := float64(child.Wins+child.PriorWins) / float64(v)
	return beta*(aw/av) + (1-beta)*expectation
}
