package eval

import "github.com/st3p-dev/engine/pkg/board"

// Assurer scores a just-created one-move forced win near the extreme,
// biased by ply so a shallower assurance outscores a deeper one, and
// otherwise defers to the wrapped heuristic.
type Assurer struct {
	Inner Heuristic
}

func NewAssurer(inner Heuristic) *Assurer {
	return &Assurer{Inner: inner}
}

func (a *Assurer) Score(g *board.Game) Score {
	if assurance, ok := board.AssuranceOf(g); ok {
		ply := Score(len(g.Moves))
		if assurance.Side == board.X {
			return MaxScore - ply - 1
		}
		return MinScore + ply + 1
	}
	return a.Inner.Score(g)
}
