package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/st3p-dev/engine/pkg/board"
)

func TestLineStaysOnBoard(t *testing.T) {
	line, ok := board.Line(board.Position{Row: 2, Col: 0}, board.Vertical, 3, 5)
	assert.True(t, ok)
	assert.Equal(t, board.Line{
		{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0},
	}, line)
}

func TestLineOffBoard(t *testing.T) {
	_, ok := board.Line(board.Position{Row: 0, Col: 0}, board.Horizontal, 3, 3)
	assert.False(t, ok)
}

func TestLineLength(t *testing.T) {
	line, ok := board.Line(board.Position{Row: 2, Col: 2}, board.Diagonal, 3, 5)
	assert.True(t, ok)
	assert.Len(t, line, 3)
}

func TestLinesThroughCorner(t *testing.T) {
	// A 3x3 board with win length 3 has exactly one line per row: no matter
	// which cell in the row is queried, only the full-row line fits.
	lines := board.LinesThrough(board.Position{Row: 0, Col: 0}, board.Horizontal, 3, 3)
	assert.Len(t, lines, 1)
}

func TestLinesThroughCenter(t *testing.T) {
	lines := board.LinesThrough(board.Position{Row: 1, Col: 1}, board.Horizontal, 3, 3)
	assert.Len(t, lines, 1)
}

func TestWinsThroughAllDirections(t *testing.T) {
	lines := board.WinsThrough(board.Position{Row: 2, Col: 2}, 5, 3)
	for _, l := range lines {
		assert.Len(t, l, 3)
		found := false
		for _, p := range l {
			if p == (board.Position{Row: 2, Col: 2}) {
				found = true
			}
		}
		assert.True(t, found, "line does not cover the queried position: %v", l)
	}
}

func TestAllLinesDeduplicated(t *testing.T) {
	lines := board.AllLines(3, 3)

	seen := map[string]bool{}
	for _, l := range lines {
		key := ""
		for _, p := range l {
			key += p.String() + ";"
		}
		assert.False(t, seen[key], "duplicate line: %v", l)
		seen[key] = true
	}

	// A 3x3 board with win length 3 has exactly 8 distinct lines: 3 rows,
	// 3 columns, 2 diagonals.
	assert.Len(t, lines, 8)
}

func TestAllLinesMemoized(t *testing.T) {
	a := board.AllLines(4, 3)
	b := board.AllLines(4, 3)
	assert.Equal(t, a, b)
}
