package board

// mapping computes a transposed (row, col) from an original (row, col) on a
// size x size board.
type mapping func(row, col, size int) (int, int)

// transposeOnce computes the Zobrist hash of the board as it would read if
// every cell's content at (i, j) were relabeled to live at mapping(i, j)
// instead, without touching g itself. mapping is a permutation of the grid
// (rotations are 4-cycles, not swaps), so each cell's contribution is
// folded in exactly once — XOR-ing pairs in and back out, as a naive
// swap-by-transposition would, only holds for involutions and double-counts
// when the outer loop later revisits the partner cell.
func transposeOnce(g *Game, m mapping) ZobristHash {
	size := g.Size
	var transposed ZobristHash
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			ti, tj := m(i, j, size)
			c := g.Cells[i][j]
			transposed ^= g.zobrist.Cell(Position{Row: ti, Col: tj}, c)
		}
	}
	transposed ^= g.zobrist.Side(g.SideToPlay)
	return transposed
}

// Transpositions returns g.Hash and the hash of each of the 7 non-identity
// dihedral images of the board (3 rotations, 4 reflections), deduplicated.
// A square board's symmetries always fix the side to play, so no side key
// needs to move between images.
func Transpositions(g *Game) []ZobristHash {
	seen := map[ZobristHash]struct{}{g.Hash: {}}
	hashes := []ZobristHash{g.Hash}

	add := func(h ZobristHash) {
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		hashes = append(hashes, h)
	}

	add(transposeOnce(g, func(i, j, n int) (int, int) { return j, n - 1 - i }))          // rotate 90
	add(transposeOnce(g, func(i, j, n int) (int, int) { return n - 1 - i, n - 1 - j }))  // rotate 180
	add(transposeOnce(g, func(i, j, n int) (int, int) { return n - 1 - j, i }))          // rotate 270
	add(transposeOnce(g, func(i, j, n int) (int, int) { return n - 1 - i, j }))          // reflect horizontal
	add(transposeOnce(g, func(i, j, n int) (int, int) { return i, n - 1 - j }))          // reflect vertical
	add(transposeOnce(g, func(i, j, n int) (int, int) { return j, i }))                  // reflect main diagonal
	add(transposeOnce(g, func(i, j, n int) (int, int) { return n - 1 - j, n - 1 - i }))  // reflect anti-diagonal

	return hashes
}
