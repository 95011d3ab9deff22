// Package search contains move generation (Looker) and the principal
// variation search that drives move selection.
package search

import "github.com/st3p-dev/engine/pkg/board"

// Looker generates the candidate moves to examine at a position, in the
// order they should be tried. A Looker that omits a legal move trades
// completeness for speed; Thinker never looks beyond what its Looker
// returns.
type Looker interface {
	Moves(g *board.Game) []board.Position
}
