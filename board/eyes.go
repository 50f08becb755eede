package board

// IsEyeish tests whether the (assumed Empty) vertex v is wholly
// surrounded, orthogonally, by Wall and stones of a single color (with
// at least one stone present). It returns that color and true, or
// (zero, false) if the shape does not qualify.
func (b *Board) IsEyeish(v int) (Color, bool) {
	haveColor := false
	var eyeColor Color

	for _, nb := range b.Neigh4(v) {
		p := b.grid[nb]
		switch p {
		case Wall:
			continue
		case Empty:
			return 0, false
		default:
			c := Black
			if p == ToPoint(White) {
				c = White
			}
			if !haveColor {
				eyeColor = c
				haveColor = true
			} else if c != eyeColor {
				return 0, false
			}
		}
	}

	if !haveColor {
		return 0, false
	}
	return eyeColor, true
}

// IsEye refines IsEyeish with the standard 2-4-4 diagonal guard: a
// diagonal of the opposing color counts against the eye, having any
// off-board diagonal adds one more such point (the "edge penalty",
// added once however many diagonals are off-board), and two or more
// disqualify the shape as a false eye.
func (b *Board) IsEye(v int) (Color, bool) {
	c, ok := b.IsEyeish(v)
	if !ok {
		return 0, false
	}

	oppPoint := ToPoint(c.Opp())
	oppCount := 0
	atEdge := false

	for _, d := range b.DiagNeigh(v) {
		p := b.grid[d]
		if p == Wall {
			atEdge = true
			continue
		}
		if p == oppPoint {
			oppCount++
		}
	}
	if atEdge {
		oppCount++
	}

	if oppCount >= 2 {
		return 0, false
	}
	return c, true
}
