package board

// Assurance names a side with a forced win in one move: an open run of
// win_length-1 stones with both ends still playable.
type Assurance struct {
	Side Side
}

// AssuranceOf detects whether the last move just created an assurance for
// the side that played it: a line of win_length+1 cells through that move
// whose two endpoints are Empty and whose win_length-1 interior cells are
// all occupied by the same side. Such a run is not forcing while the side
// to play can complete a line of its own at once, so in that case it also
// returns (_, false). Only meaningful when 3 <= win_length < size; returns
// (_, false) otherwise, as it would for an ongoing game with no such run.
func AssuranceOf(g *Game) (Assurance, bool) {
	winLength := g.WinLength
	if winLength >= g.Size || winLength < 3 {
		return Assurance{}, false
	}

	last, ok := g.Last()
	if !ok {
		return Assurance{}, false
	}

	toPlay := Occupied(g.SideToPlay)
	for _, line := range AllLines(g.Size, winLength) {
		own, empty := 0, 0
		for _, pos := range line {
			switch g.Cells[pos.Row][pos.Col] {
			case toPlay:
				own++
			case Empty:
				empty++
			}
		}
		if own == winLength-1 && empty == 1 {
			return Assurance{}, false
		}
	}

	played := g.SideToPlay.Other()
	for _, line := range WinsThrough(last, g.Size, winLength+1) {
		first, end := line[0], line[len(line)-1]
		if g.Cells[first.Row][first.Col] != Empty || g.Cells[end.Row][end.Col] != Empty {
			continue
		}

		count := 0
		for _, pos := range line[1 : len(line)-1] {
			side, isOccupied := g.Cells[pos.Row][pos.Col].Side()
			if !isOccupied {
				break
			}
			if side == played {
				count++
			}
		}
		if count == winLength-1 {
			return Assurance{Side: played}, true
		}
	}
	return Assurance{}, false
}
