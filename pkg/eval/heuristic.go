// Package eval scores positions: the composable heuristics that stack into
// a full static evaluation function, and the cache that memoizes them
// across the dihedral symmetries of a position.
package eval

import (
	"math"

	"github.com/st3p-dev/engine/pkg/board"
)

// Score is a position evaluation from X's perspective: positive favors X,
// negative favors O. Magnitude near the extremes signals a forced or
// already-decided outcome rather than a merely strong position; ply is
// subtracted/added from the extreme so search prefers the shallowest win
// and the deepest loss.
type Score int64

const (
	MaxScore Score = math.MaxInt64
	MinScore Score = math.MinInt64
)

// Heuristic scores a position. Some implementations carry state (a cache, a
// wrapped heuristic); Score is not expected to be called concurrently on
// the same value.
type Heuristic interface {
	Score(g *board.Game) Score
}
