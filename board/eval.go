package board

// Evaluate returns the area-scored result from perspective's point of
// view: +-1 per stone, plus each maximal empty region whose boundary
// touches only one color, plus/minus komi. Assumes a final position
// with all dead stones already captured or resolved by play.
func (b *Board) Evaluate(perspective Color) float64 {
	score := 0
	perspectivePoint := ToPoint(perspective)
	oppPoint := ToPoint(perspective.Opp())

	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			switch b.grid[b.vertex(x, y)] {
			case perspectivePoint:
				score++
			case oppPoint:
				score--
			}
		}
	}

	id := b.nextMark()
	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			v := b.vertex(x, y)
			if b.grid[v] != Empty || b.mark[v] == id {
				continue
			}

			b.stack = b.stack[:0]
			b.stack = append(b.stack, v)
			b.mark[v] = id
			size := 0
			touchesPerspective, touchesOpp := false, false

			for len(b.stack) > 0 {
				cur := b.stack[len(b.stack)-1]
				b.stack = b.stack[:len(b.stack)-1]
				size++

				for _, nb := range b.Neigh4(cur) {
					switch b.grid[nb] {
					case Empty:
						if b.mark[nb] != id {
							b.mark[nb] = id
							b.stack = append(b.stack, nb)
						}
					case Wall:
					case perspectivePoint:
						touchesPerspective = true
					case oppPoint:
						touchesOpp = true
					}
				}
			}

			if touchesPerspective && !touchesOpp {
				score += size
			} else if touchesOpp && !touchesPerspective {
				score -= size
			}
		}
	}

	result := float64(score)
	if perspective == Black {
		result -= b.komi
	} else {
		result += b.komi
	}
	return result
}
