package board

import (
	"fmt"
	"strings"
)

// colLetter returns the column letter for play-area column x (0-based),
// skipping 'I' the way Go board coordinates conventionally do.
func colLetter(x int) byte {
	c := byte('A') + byte(x)
	if c >= 'I' {
		c++
	}
	return c
}

func (b *Board) writeHeader(sb *strings.Builder) {
	sb.WriteString("   ")
	for x := 0; x < b.n; x++ {
		sb.WriteByte(colLetter(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
}

// Dump produces a stable ASCII rendering: a header row of column
// letters, n labeled rows of stones, and a trailing copy of the
// header. If flipVertical, row n is printed first.
func (b *Board) Dump(flipVertical bool) string {
	var sb strings.Builder
	b.writeHeader(&sb)

	for ry := 0; ry < b.n; ry++ {
		y := ry
		if flipVertical {
			y = b.n - 1 - ry
		}
		label := y + 1

		fmt.Fprintf(&sb, "%2d ", label)
		for x := 0; x < b.n; x++ {
			sb.WriteString(b.grid[b.vertex(x, y)].String())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%2d\n", label)
	}

	b.writeHeader(&sb)
	return sb.String()
}
