package eval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/eval"
)

type countingHeuristic struct {
	calls int
	score eval.Score
}

func (c *countingHeuristic) Score(*board.Game) eval.Score {
	c.calls++
	return c.score
}

func TestCachedMemoizesByHash(t *testing.T) {
	inner := &countingHeuristic{score: 9}
	c := eval.NewCached(context.Background(), inner, eval.Identity{}, 16)

	g, _, err := board.ParseGame("x__/___/__o x")
	require.NoError(t, err)

	assert.Equal(t, eval.Score(9), c.Score(g))
	assert.Equal(t, eval.Score(9), c.Score(g))
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, c.Len())
}

func TestCachedWithTransposerHitsOnSymmetricImage(t *testing.T) {
	inner := &countingHeuristic{score: -3}
	c := eval.NewCached(context.Background(), inner, eval.Transposer{}, 16)

	original, _, err := board.ParseGame("x___/____/____/____ x")
	require.NoError(t, err)
	rotated, _, err := board.ParseGame("___x/____/____/____ x")
	require.NoError(t, err)

	assert.Equal(t, eval.Score(-3), c.Score(original))
	assert.Equal(t, eval.Score(-3), c.Score(rotated))
	assert.Equal(t, 1, inner.calls)
}

func TestCachedMissOnDistinctPosition(t *testing.T) {
	inner := &countingHeuristic{score: 1}
	c := eval.NewCached(context.Background(), inner, eval.Identity{}, 16)

	a, _, err := board.ParseGame("x__/___/___ o")
	require.NoError(t, err)
	b, _, err := board.ParseGame("_x_/___/___ o")
	require.NoError(t, err)

	c.Score(a)
	c.Score(b)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, c.Len())
}
