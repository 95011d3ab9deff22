// Package engine wires board, eval and search into the referee-protocol
// shim described by spec.md §6: parsing commands, running one fixed-depth
// search per move request, and formatting responses.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/pbnjay/memory"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/eval"
	"github.com/st3p-dev/engine/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

const (
	Name   = "st3p-engine"
	Author = "st3p-dev"
	URL    = "https://github.com/st3p-dev/engine"
)

// Options are engine creation options.
type Options struct {
	// Depth is the search depth limit for a single move command.
	Depth uint
	// Hash is the evaluation cache budget, in MB. Zero defaults to
	// 1/256th of system memory (sizing relative to host resources rather
	// than a hardcoded constant).
	Hash uint
	// Noise adds scoring randomness in [-Noise/2, Noise-Noise/2) so tied
	// candidate moves don't always resolve in board order.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, noise=%v}", o.Depth, o.Hash, o.Noise)
}

const defaultDepth = 4

// Engine composes one evaluation cache and one candidate-move looker,
// shared across every move request so repeated or symmetric positions hit
// the cache. Move is safe for concurrent use: it serializes on an internal
// mutex because the shared Cached heuristic is not itself safe for
// concurrent Score calls. Searches run through a Thinker returned by
// Thinker do not take that mutex.
type Engine struct {
	opts Options

	heuristic *eval.Cached
	looker    search.Looker

	mu sync.Mutex
}

// New builds an Engine. opts.Hash, if zero, is sized from system memory.
func New(ctx context.Context, opts Options) *Engine {
	if opts.Hash == 0 {
		opts.Hash = uint(memory.TotalMemory() / (256 * 1 << 20))
		if opts.Hash == 0 {
			opts.Hash = 1
		}
	}
	if opts.Depth == 0 {
		opts.Depth = defaultDepth
	}

	capacity := int(opts.Hash) << 20 / 64 // rough entries-per-MB at ~64B/entry

	stack := eval.NewWin(eval.NewAssurer(eval.Chance{}))
	var inner eval.Heuristic = stack
	if opts.Noise > 0 {
		// Cumulative of a single heuristic is a trivial but legitimate use:
		// it keeps Noise's wrapped argument a sum-of-heuristics the way a
		// future second scoring concern (e.g. mobility) would be added,
		// without disturbing the default no-noise composition above.
		inner = eval.NewNoise(eval.NewCumulative(stack), int(opts.Noise))
	}
	cached := eval.NewCached(ctx, inner, eval.Transposer{}, capacity)

	looker := search.NewShuffler(search.Nearby{})

	e := &Engine{
		opts:      opts,
		heuristic: cached,
		looker:    looker,
	}

	logw.Infof(ctx, "Initialized %v, options=%v", e.Name(), opts)
	return e
}

// Name returns the engine name and version in one string, as printed in the
// console banner and logs; `identify` prints the two on separate lines.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", Name, version)
}

// Thinker builds a search.Thinker sharing this Engine's evaluation cache
// and looker, at the given depth (or the Engine's configured default depth
// if depth <= 0). Exported so the console driver can run its own
// Search/Iterative calls against the same cache the "move" command uses.
func (e *Engine) Thinker(depth int) *search.Thinker {
	if depth <= 0 {
		depth = int(e.opts.Depth)
	}
	return search.NewThinker(e.heuristic, e.looker, depth)
}

// Move computes the best move for the board described by input (§6.1),
// optionally overriding win length, and returns it. winLength <= 0 leaves
// the board's default (its size) in place.
func (e *Engine) Move(ctx context.Context, input string, winLength int) (board.Position, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.Parse(input, winLength)
	if err != nil {
		return board.Position{}, err
	}

	best, err := e.Thinker(0).Best(g)
	if err != nil {
		return board.Position{}, fmt.Errorf("move error: %w", err)
	}

	logw.Infof(ctx, "Move %v win-length=%v -> %v", input, g.WinLength, best)
	return best, nil
}

// Parse decodes a board string, applying an optional win-length override,
// and rejects boards with no playable cell (§7's NoMovesError). Exported
// for the console driver, which holds its own *board.Game between commands
// instead of taking one fresh per request the way the referee protocol does.
func (e *Engine) Parse(input string, winLength int) (*board.Game, error) {
	g, _, err := board.ParseGame(input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if winLength > 0 {
		g.SetWinLength(winLength)
	}
	if len(g.Playable) == 0 {
		return nil, fmt.Errorf("no moves found: board %q has no playable cell", input)
	}
	return g, nil
}
