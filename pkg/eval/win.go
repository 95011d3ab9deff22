package eval

import "github.com/st3p-dev/engine/pkg/board"

// Win scores a finished position at the extremes (MaxScore for an X win,
// MinScore for an O win), a draw at zero, and otherwise defers to Inner.
// Composed outermost in the default stack (Win(Assurer(Chance))) so a
// decided game always outranks any heuristic estimate of an undecided one.
type Win struct {
	Inner Heuristic
}

func NewWin(inner Heuristic) *Win {
	return &Win{Inner: inner}
}

func (w *Win) Score(g *board.Game) Score {
	t, ok := board.TerminationOf(g)
	if !ok {
		return w.Inner.Score(g)
	}
	if t.Kind == board.Drawn {
		return 0
	}
	ply := Score(len(g.Moves))
	if t.Side == board.X {
		return MaxScore - ply
	}
	return MinScore + ply
}
