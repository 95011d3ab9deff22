package eval

import "github.com/st3p-dev/engine/pkg/board"

// Hasher returns the set of Zobrist hashes a position's score should be
// cached under.
type Hasher interface {
	Hashes(g *board.Game) []board.ZobristHash
}

// Identity caches a position only under its own hash.
type Identity struct{}

func (Identity) Hashes(g *board.Game) []board.ZobristHash {
	return []board.ZobristHash{g.Hash}
}

// Transposer caches a position under its own hash and every hash of its
// dihedral images, so a later rotation or reflection of a seen position
// hits the same cache entry.
type Transposer struct{}

func (Transposer) Hashes(g *board.Game) []board.ZobristHash {
	return board.Transpositions(g)
}
