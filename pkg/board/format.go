package board

import (
	"strconv"
	"strings"
)

// Format renders a Game as the board text of §6.1, the inverse of
// ParseGame: run-length-encoded rows separated by '/', a space, then the
// side to play. Round-tripping through ParseGame then Format need not
// reproduce the exact repeat-count grouping of the original input, only an
// equivalent board (run lengths are always maximal).
func Format(g *Game) string {
	var sb strings.Builder
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('/')
		}
		writeRow(&sb, row)
	}
	sb.WriteByte(' ')
	sb.WriteString(g.SideToPlay.String())
	return sb.String()
}

func writeRow(sb *strings.Builder, row []Cell) {
	i := 0
	for i < len(row) {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		count := j - i
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
		sb.WriteString(row[i].String())
		i = j
	}
}
