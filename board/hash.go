package board

import "github.com/OneOfOne/xxhash"

// Hash returns a fast, non-cryptographic digest of the full board
// state (grid contents plus to-play). It plays no part in any rules
// invariant; it exists for trace logging and for test assertions that
// two independent move/undo sequences reached the same physical
// state.
func (b *Board) Hash() uint64 {
	buf := make([]byte, len(b.grid)+1)
	for i, p := range b.grid {
		buf[i] = byte(p)
	}
	buf[len(b.grid)] = byte(b.toPlay)
	return xxhash.Checksum64(buf)
}
