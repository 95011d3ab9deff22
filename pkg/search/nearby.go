package search

import (
	"sync"

	"github.com/samber/lo"

	"github.com/st3p-dev/engine/pkg/board"
)

// Nearby looks at the board center (only when no move has been played yet
// and it is playable) plus every playable cell within Chebyshev distance
// win_length/2 of an already-played stone:
// candidate moves worth examining cluster around existing play.
type Nearby struct{}

type nearbyKey struct {
	p        board.Position
	distance int
	size     int
}

var (
	nearbyMu    sync.Mutex
	nearbyCache = map[nearbyKey][]board.Position{}
)

// offsets returns every position within Chebyshev distance of p that stays
// on a size x size board, memoized per (p, distance, size) for process
// lifetime.
func offsets(p board.Position, distance, size int) []board.Position {
	key := nearbyKey{p, distance, size}

	nearbyMu.Lock()
	defer nearbyMu.Unlock()

	if cached, ok := nearbyCache[key]; ok {
		return cached
	}

	var out []board.Position
	for dr := -distance; dr <= distance; dr++ {
		for dc := -distance; dc <= distance; dc++ {
			r, c := p.Row+dr, p.Col+dc
			if r >= 0 && r < size && c >= 0 && c < size {
				out = append(out, board.Position{Row: r, Col: c})
			}
		}
	}
	nearbyCache[key] = out
	return out
}

func (Nearby) Moves(g *board.Game) []board.Position {
	mid := g.Size / 2
	center := board.Position{Row: mid, Col: mid}

	seen := map[board.Position]struct{}{}
	var moves []board.Position
	if len(g.Moves) == 0 {
		if _, ok := g.Playable[center]; ok {
			moves = append(moves, center)
			seen[center] = struct{}{}
		}
	}

	distance := g.WinLength / 2

	for _, played := range g.Moves {
		candidates := lo.Filter(offsets(played, distance, g.Size), func(p board.Position, _ int) bool {
			if _, playable := g.Playable[p]; !playable {
				return false
			}
			if _, dup := seen[p]; dup {
				return false
			}
			seen[p] = struct{}{}
			return true
		})
		moves = append(moves, candidates...)
	}
	return moves
}
