package search

import (
	"lukechampine.com/frand"

	"github.com/st3p-dev/engine/pkg/board"
)

// Shuffler wraps a Looker and randomizes the order of its candidate moves
// with an unseeded CSPRNG, so that otherwise-tied lines don't always
// resolve in board order. Grounded the same way board.ZobristTableForSize
// draws its keys: lukechampine.com/frand in place of math/rand, the way
// bluebear94-odnocam's solver shuffles its candidate move list.
type Shuffler struct {
	Inner Looker
}

func NewShuffler(inner Looker) *Shuffler {
	return &Shuffler{Inner: inner}
}

func (s *Shuffler) Moves(g *board.Game) []board.Position {
	moves := s.Inner.Moves(g)
	frand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves
}
