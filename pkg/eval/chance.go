package eval

import "github.com/st3p-dev/engine/pkg/board"

// winnable reports the side occupying line and how many of its cells are
// filled, if the line is still winnable by exactly one side (no cell
// occupied by the other side, and at least one cell filled).
func winnable(line board.Line, g *board.Game) (board.Side, int, bool) {
	var side board.Side
	haveSide := false
	count := 0

	for _, pos := range line {
		cell := g.Cells[pos.Row][pos.Col]
		s, occupied := cell.Side()
		if !occupied {
			continue
		}
		if !haveSide {
			side, haveSide = s, true
		} else if s != side {
			return 0, 0, false
		}
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return side, count, true
}

// Chance scores a position by how many lines remain open for each side,
// weighting nearly-complete lines exponentially higher than barely-started
// ones. It special-cases already-decided and one-move-forced-win positions
// at the score extremes, the same way Win and Assurer do, so Chance alone is
// a reasonable (if slower) drop-in for either.
type Chance struct{}

func (Chance) Score(g *board.Game) Score {
	winLength := g.WinLength
	xCounts := make([]int, winLength)
	oCounts := make([]int, winLength)

	ply := Score(len(g.Moves))

	for _, line := range board.AllLines(g.Size, winLength) {
		side, count, ok := winnable(line, g)
		if !ok {
			continue
		}
		if count == winLength {
			if side == board.X {
				return MaxScore - ply
			}
			return MinScore + ply
		}
		if side == board.X {
			xCounts[count]++
		} else {
			oCounts[count]++
		}
	}

	imminent := winLength - 1
	xImminent := xCounts[imminent]
	oImminent := oCounts[imminent]

	if g.SideToPlay == board.X && xImminent > 0 {
		return MaxScore - ply - 1
	}
	if g.SideToPlay == board.O && oImminent > 0 {
		return MinScore + ply + 1
	}

	// oImminent (resp. xImminent) is already known zero here: the guards
	// above would have returned if the side to move's own imminent count
	// were nonzero.
	switch {
	case xImminent > 1 && oImminent == 0 && g.SideToPlay == board.O:
		return MaxScore - ply - 2
	case oImminent > 1 && xImminent == 0 && g.SideToPlay == board.X:
		return MinScore + ply + 2
	}

	// Weighted accumulation over partially-filled lines, excluding the
	// imminent tier already handled above: a line with k of win_length
	// cells filled is worth 2^(2k), quadrupling the weight with each
	// additional stone.
	var score Score
	for k := 1; k < imminent; k++ {
		score += Score(xCounts[k]-oCounts[k]) << uint(2*k)
	}
	return score
}
