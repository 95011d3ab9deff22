package board

// TerminationKind distinguishes a drawn game from a won one.
type TerminationKind uint8

const (
	Won TerminationKind = iota
	Drawn
)

// Termination is the outcome of a finished game: either Drawn, or Won by a
// Side.
type Termination struct {
	Kind TerminationKind
	Side Side // valid only when Kind == Won
}

func WonBy(s Side) Termination { return Termination{Kind: Won, Side: s} }

var DrawnGame = Termination{Kind: Drawn}

// TerminationOf reports whether the game has ended: the last move completed
// a win_length-long run for the side that just played, or (absent a win) no
// playable cell remains. Returns (_, false) for an ongoing game, and
// (_, false) on an empty game with no moves played.
func TerminationOf(g *Game) (Termination, bool) {
	last, ok := g.Last()
	if !ok {
		return Termination{}, false
	}

	played := g.SideToPlay.Other()
	for _, line := range WinsThrough(last, g.Size, g.WinLength) {
		count := 0
		for _, pos := range line {
			side, isOccupied := g.Cells[pos.Row][pos.Col].Side()
			if !isOccupied {
				break
			}
			if side == played {
				count++
			}
		}
		if count == g.WinLength {
			return WonBy(played), true
		}
	}

	if len(g.Playable) == 0 {
		return DrawnGame, true
	}
	return Termination{}, false
}
