package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/search"
)

type fixedLooker []board.Position

func (f fixedLooker) Moves(*board.Game) []board.Position { return append([]board.Position(nil), f...) }

func TestShufflerPreservesSet(t *testing.T) {
	g := board.NewGame(3)
	inner := fixedLooker{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	}

	s := search.NewShuffler(inner)
	moves := s.Moves(g)

	require.Len(t, moves, len(inner))
	assert.ElementsMatch(t, []board.Position(inner), moves)
}
