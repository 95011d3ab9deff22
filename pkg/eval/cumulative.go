package eval

import "github.com/st3p-dev/engine/pkg/board"

// Cumulative sums the scores of several heuristics.
type Cumulative struct {
	Heuristics []Heuristic
}

func NewCumulative(heuristics ...Heuristic) *Cumulative {
	return &Cumulative{Heuristics: heuristics}
}

func (c *Cumulative) Score(g *board.Game) Score {
	var total Score
	for _, h := range c.Heuristics {
		total += h.Score(g)
	}
	return total
}
