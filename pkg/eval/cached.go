package eval

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/st3p-dev/engine/pkg/board"
)

// Cached memoizes Inner's score per Zobrist hash. On a miss it stores the
// score under every key its Hasher reports for the position, so a later
// dihedral image of a seen position (under Transposer) or the position
// itself (under Identity) is an immediate hit.
//
// Not safe for concurrent use: callers that share one Cached across
// searches must serialize access to it, as Engine.Move does with its mutex.
type Cached struct {
	inner  Heuristic
	hasher Hasher
	scores map[board.ZobristHash]Score
}

// NewCached builds a Cached wrapping inner, keyed by hasher, with entries
// pre-allocated for capacity distinct positions.
func NewCached(ctx context.Context, inner Heuristic, hasher Hasher, capacity int) *Cached {
	logw.Infof(ctx, "Allocating eval cache for %v entries", capacity)
	return &Cached{
		inner:  inner,
		hasher: hasher,
		scores: make(map[board.ZobristHash]Score, capacity),
	}
}

func (c *Cached) Score(g *board.Game) Score {
	if score, ok := c.scores[g.Hash]; ok {
		return score
	}
	score := c.inner.Score(g)
	for _, h := range c.hasher.Hashes(g) {
		c.scores[h] = score
	}
	return score
}

// Len returns the number of distinct hashes currently memoized.
func (c *Cached) Len() int {
	return len(c.scores)
}
