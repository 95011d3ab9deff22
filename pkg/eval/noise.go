package eval

import (
	"lukechampine.com/frand"

	"github.com/st3p-dev/engine/pkg/board"
)

// Noise adds a small amount of randomness to a wrapped heuristic's score, in
// the half-open range [-limit/2, limit-limit/2). A zero limit disables it.
// Useful composed ahead of Chance so otherwise-tied candidate moves don't
// always resolve in board order. Grounded on the teacher's eval.Random,
// swapping math/rand for lukechampine.com/frand, the same substitution
// board.ZobristTableForSize makes.
type Noise struct {
	Inner Heuristic
	limit int
}

func NewNoise(inner Heuristic, limit int) *Noise {
	return &Noise{Inner: inner, limit: limit}
}

func (n *Noise) Score(g *board.Game) Score {
	score := n.Inner.Score(g)
	if n.limit <= 0 {
		return score
	}
	return score + Score(frand.Intn(n.limit)-n.limit/2)
}
