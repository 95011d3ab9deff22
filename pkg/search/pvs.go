package search

import (
	"errors"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/eval"
)

// ErrHalted is an error indicating that the search was halted before it
// completed a ply.
var ErrHalted = errors.New("search halted")

// ErrNoMoves indicates the searched position had no candidate move at all:
// the board is full, or the Looker found nothing playable.
var ErrNoMoves = errors.New("no moves found")

func isTerminal(g *board.Game) bool {
	if _, ok := board.TerminationOf(g); ok {
		return true
	}
	_, ok := board.AssuranceOf(g)
	return ok
}

// Thinker implements principal variation search with alpha-beta pruning.
// Pseudo-code:
//
//	function pvs(node, depth, α, β, maximizing) is
//	    if depth = 0 or node is terminal then
//	        return heuristic value of node
//	    for each child of node, in Looker order do
//	        value := pvs(child, depth-1, α, β, not maximizing)
//	        α (if maximizing) or β (if minimizing) := tighten toward value
//	        if α ≥ β then
//	            break (* cut-off *)
//	    return value, together with the move sequence that produced it
//
// Unlike the teacher's PVS, this does not negate scores between plies:
// Score is always X's perspective, so the maximizing/minimizing role
// simply swaps with the side to move. See also:
// https://en.wikipedia.org/wiki/Principal_variation_search.
type Thinker struct {
	Heuristic eval.Heuristic
	Looker    Looker
	Depth     int
}

func NewThinker(h eval.Heuristic, l Looker, depth int) *Thinker {
	return &Thinker{Heuristic: h, Looker: l, Depth: depth}
}

// Search runs the fixed-depth PVS and returns the node count, the score of
// the position from X's perspective, and the principal variation (the
// played-from-root sequence of positions leading to it). quit, if closed
// before the search completes, halts it between child expansions and
// returns ErrHalted; g is left exactly as it was found, because every Play
// this method issues is unwound by a matching Undo before returning.
func (t *Thinker) Search(g *board.Game, depth int, quit <-chan struct{}) (uint64, eval.Score, []board.Position, error) {
	run := &run{heuristic: t.Heuristic, looker: t.Looker, quit: quit}
	visited := len(g.Moves)
	maximizing := g.SideToPlay == board.X
	pv, score := run.pvs(g, visited, depth, eval.MinScore, eval.MaxScore, maximizing)
	if isClosed(quit) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

// Best runs a single fixed-depth search (Thinker.Depth) and returns only the
// recommended next move.
func (t *Thinker) Best(g *board.Game) (board.Position, error) {
	_, _, pv, err := t.Search(g, t.Depth, nil)
	if err != nil {
		return board.Position{}, err
	}
	if len(pv) == 0 {
		return board.Position{}, ErrNoMoves
	}
	return pv[0], nil
}

type run struct {
	heuristic eval.Heuristic
	looker    Looker
	nodes     uint64
	quit      <-chan struct{}
}

// pvs returns the best line found from g's current position, together with
// its score. visited is len(g.Moves) at the node being searched (the root's
// count plus one per ply played on the way down), so at a depth-zero or
// terminal node g.Moves[visited:] is empty; each parent builds the principal
// variation by prepending its move to its best child's line.
func (r *run) pvs(g *board.Game, visited, depth int, alpha, beta eval.Score, maximizing bool) ([]board.Position, eval.Score) {
	best := append([]board.Position(nil), g.Moves[visited:]...)
	if depth == 0 || isTerminal(g) || isClosed(r.quit) {
		return best, r.heuristic.Score(g)
	}
	r.nodes++

	if maximizing {
		value := eval.MinScore
		for _, p := range r.looker.Moves(g) {
			g.Play(p)
			pv, score := r.pvs(g, visited+1, depth-1, alpha, beta, false)
			g.Undo()

			if score > value {
				value = score
				best = append([]board.Position{p}, pv...)
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break // beta cut-off
			}
		}
		return best, value
	}

	value := eval.MaxScore
	for _, p := range r.looker.Moves(g) {
		g.Play(p)
		pv, score := r.pvs(g, visited+1, depth-1, alpha, beta, true)
		g.Undo()

		if score < value {
			value = score
			best = append([]board.Position{p}, pv...)
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break // alpha cut-off
		}
	}
	return best, value
}

func isClosed(quit <-chan struct{}) bool {
	if quit == nil {
		return false
	}
	select {
	case <-quit:
		return true
	default:
		return false
	}
}
