package board

// Board owns a dense stride*stride grid, walled on the outer ring, plus
// the undo log and scratch flood-fill state needed to apply and reverse
// moves under Chinese-style area-scoring rules (captures, simple ko,
// suicide prohibition).
type Board struct {
	n      int
	stride int
	grid   []Point
	komi   float64

	toPlay Color

	history     []Undo
	capturePool []int

	koPoint int
	koAge   int

	// Scratch flood-fill state, shared by liberty queries, group
	// removal and area evaluation. mark_id is bumped for every DFS so
	// stale marks from a previous call never need clearing.
	mark         []int32
	markID       int32
	stack        []int
	scratchGroup []int
}

// New constructs an empty n*n board (n >= 2) with the given komi,
// Black to play.
func New(n int, komi float64) *Board {
	stride := n + 2
	b := &Board{
		n:       n,
		stride:  stride,
		grid:    make([]Point, stride*stride),
		komi:    komi,
		toPlay:  Black,
		koPoint: -1,
		koAge:   0,
		mark:    make([]int32, stride*stride),
	}
	for i := range b.grid {
		b.grid[i] = Wall
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.grid[b.vertex(x, y)] = Empty
		}
	}
	return b
}

// Clone returns a deep copy sharing no memory with b. Used by the
// search engine so that the caller's root position is never mutated.
func (b *Board) Clone() *Board {
	c := &Board{
		n:       b.n,
		stride:  b.stride,
		komi:    b.komi,
		toPlay:  b.toPlay,
		koPoint: b.koPoint,
		koAge:   b.koAge,
	}
	c.grid = append([]Point(nil), b.grid...)
	c.mark = make([]int32, len(b.mark))
	c.history = append([]Undo(nil), b.history...)
	c.capturePool = append([]int(nil), b.capturePool...)
	return c
}

// Size returns n, the play-area edge length.
func (b *Board) Size() int { return b.n }

// Stride returns n+2, the edge length of the bordered grid.
func (b *Board) Stride() int { return b.stride }

// GridLen returns the total number of cells in the bordered grid.
func (b *Board) GridLen() int { return len(b.grid) }

// ToPlay is the color to move next.
func (b *Board) ToPlay() Color { return b.toPlay }

// PlyCount is the number of successful moves (including passes) so far.
func (b *Board) PlyCount() int { return len(b.history) }

// KoPoint is the vertex of the most recent single-stone ko capture, or
// -1. It forbids play only while KoAge equals PlyCount; after that it
// is stale but is still reported.
func (b *Board) KoPoint() int { return b.koPoint }

// KoAge is the ply at which KoPoint becomes applicable.
func (b *Board) KoAge() int { return b.koAge }

// Komi returns the komi added to White's score.
func (b *Board) Komi() float64 { return b.komi }

func (b *Board) vertex(x, y int) int {
	return (y+1)*b.stride + (x + 1)
}

// At returns the Point at linear vertex v.
func (b *Board) At(v int) Point { return b.grid[v] }

// AtXY returns the Point at play-area coordinate (x, y), each in [0, n).
func (b *Board) AtXY(x, y int) Point { return b.grid[b.vertex(x, y)] }

// Neigh4 returns the four orthogonal neighbours of v.
func (b *Board) Neigh4(v int) [4]int {
	s := b.stride
	return [4]int{v - 1, v + 1, v - s, v + s}
}

// DiagNeigh returns the four diagonal neighbours of v.
func (b *Board) DiagNeigh(v int) [4]int {
	s := b.stride
	return [4]int{v - s - 1, v - s + 1, v + s - 1, v + s + 1}
}

// Neigh8 returns both the orthogonal and diagonal neighbours of v.
func (b *Board) Neigh8(v int) [8]int {
	n4 := b.Neigh4(v)
	d4 := b.DiagNeigh(v)
	return [8]int{n4[0], n4[1], n4[2], n4[3], d4[0], d4[1], d4[2], d4[3]}
}

func (b *Board) nextMark() int32 {
	b.markID++
	return b.markID
}

// collectGroup flood-fills the maximal same-color group containing v
// into *out, using the shared mark/mark_id scratch state.
func (b *Board) collectGroup(v int, out *[]int) {
	color := b.grid[v]
	id := b.nextMark()
	*out = (*out)[:0]
	b.stack = b.stack[:0]
	b.stack = append(b.stack, v)
	b.mark[v] = id
	for len(b.stack) > 0 {
		cur := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		*out = append(*out, cur)
		for _, nb := range b.Neigh4(cur) {
			if b.grid[nb] == color && b.mark[nb] != id {
				b.mark[nb] = id
				b.stack = append(b.stack, nb)
			}
		}
	}
}

// groupLiberties flood-fills the group containing v and returns its
// liberty count plus one of its liberties (valid only when count>0,
// used by IsCapture to test that the sole liberty is a given vertex).
func (b *Board) groupLiberties(v int) (count int, sole int) {
	b.collectGroup(v, &b.scratchGroup)
	id := b.nextMark()
	sole = -1
	for _, s := range b.scratchGroup {
		for _, nb := range b.Neigh4(s) {
			if b.grid[nb] == Empty && b.mark[nb] != id {
				b.mark[nb] = id
				count++
				sole = nb
			}
		}
	}
	return count, sole
}

// CountLiberties returns the exact liberty count of the group containing v.
func (b *Board) CountLiberties(v int) int {
	count, _ := b.groupLiberties(v)
	return count
}

// HasLiberty reports whether the group containing v has at least one liberty.
func (b *Board) HasLiberty(v int) bool {
	return b.CountLiberties(v) > 0
}

// removeGroup empties every stone of the group containing v, appending
// each captured vertex to the capture pool and counting it in u.CapCount.
func (b *Board) removeGroup(v int, u *Undo) {
	b.collectGroup(v, &b.scratchGroup)
	for _, s := range b.scratchGroup {
		b.grid[s] = Empty
		b.capturePool = append(b.capturePool, s)
		u.CapCount++
	}
}

// Move attempts to play m for the current ToPlay color. On success it
// appends an Undo record, flips ToPlay, and returns true; on failure
// the Board is left exactly as it was.
func (b *Board) Move(m Move) bool {
	u := Undo{
		Move:         m,
		Played:       b.toPlay,
		PriorKoPoint: b.koPoint,
		PriorKoAge:   b.koAge,
		CapBegin:     len(b.capturePool),
	}

	if m.IsPass() {
		b.toPlay = b.toPlay.Opp()
		b.history = append(b.history, u)
		return true
	}

	v := m.V
	if b.grid[v] != Empty {
		return false
	}
	if v == b.koPoint && b.koAge == b.PlyCount() {
		return false
	}

	inEnemyEye := false
	if c, ok := b.IsEyeish(v); ok && c == b.toPlay.Opp() {
		inEnemyEye = true
	}

	opp := b.toPlay.Opp()
	b.grid[v] = ToPoint(b.toPlay)

	for _, nb := range b.Neigh4(v) {
		if b.grid[nb] == ToPoint(opp) && !b.HasLiberty(nb) {
			b.removeGroup(nb, &u)
		}
	}

	if !b.HasLiberty(v) {
		// Suicide: undo the placement and restore captured stones.
		b.grid[v] = Empty
		for i := u.CapBegin; i < u.CapBegin+u.CapCount; i++ {
			b.grid[b.capturePool[i]] = ToPoint(opp)
		}
		b.capturePool = b.capturePool[:u.CapBegin]
		return false
	}

	if inEnemyEye && u.CapCount == 1 {
		b.koPoint = b.capturePool[u.CapBegin]
		b.koAge = b.PlyCount() + 1
	}

	b.toPlay = opp
	b.history = append(b.history, u)
	return true
}

// Undo pops count records (default 1) from history in reverse order,
// restoring board, to-play, and ko state, and truncates the capture
// pool back to the span owned by the oldest undone move.
func (b *Board) Undo(count ...int) {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}

	truncateTo := len(b.capturePool)
	for i := 0; i < n; i++ {
		last := len(b.history) - 1
		u := b.history[last]
		b.history = b.history[:last]

		b.toPlay = u.Played
		b.koPoint = u.PriorKoPoint
		b.koAge = u.PriorKoAge

		if !u.Move.IsPass() {
			b.grid[u.Move.V] = Empty
			captured := ToPoint(u.Played.Opp())
			for j := u.CapBegin; j < u.CapBegin+u.CapCount; j++ {
				b.grid[b.capturePool[j]] = captured
			}
		}
		truncateTo = u.CapBegin
	}
	b.capturePool = b.capturePool[:truncateTo]
}
