package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/eval"
)

// PV is the principal variation found at some search depth.
type PV struct {
	Depth int
	Nodes uint64
	Score eval.Score
	Moves []board.Position
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// TimeControl holds the time budget carried by a move command (§6.2): a
// per-move allotment, a total-remaining allotment, or both.
type TimeControl struct {
	PerMove, Remaining time.Duration
}

// Limits returns a soft and a hard deadline from now. After the soft
// deadline, no new iterative-deepening depth should be started; the hard
// deadline force-halts the in-progress one. Mirrors the teacher's
// searchctl.TimeControl.Limits, generalized from a two-player clock to the
// move command's single per-move/remaining budget.
func (t TimeControl) Limits() (soft, hard time.Duration) {
	switch {
	case t.PerMove > 0:
		soft = t.PerMove
	case t.Remaining > 0:
		// Spend 1/80th of the remaining time, absent better information.
		soft = t.Remaining / 80
	default:
		return 0, 0
	}
	return soft, 3 * soft
}

func (t TimeControl) String() string {
	return fmt.Sprintf("[per-move=%v, remaining=%v]", t.PerMove, t.Remaining)
}

// Options hold the dynamic limits for one search.
type Options struct {
	DepthLimit  lang.Optional[int]
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	depth := "-"
	if v, ok := o.DepthLimit.V(); ok {
		depth = fmt.Sprintf("%v", v)
	}
	tc := "-"
	if v, ok := o.TimeControl.V(); ok {
		tc = v.String()
	}
	return fmt.Sprintf("{depth=%v, time=%v}", depth, tc)
}

// Launcher starts an iteratively-deepening search, returning a Handle to
// manage it and a channel of ever-deeper PVs. If the search runs to
// exhaustion or its depth limit, the channel is closed.
type Launcher interface {
	Launch(ctx context.Context, g *board.Game, opt Options) (Handle, <-chan PV)
}

// Handle lets a caller stop an active search and retrieve its best PV so
// far.
type Handle interface {
	// Halt stops the search, if running, and returns its latest PV.
	// Idempotent.
	Halt() PV
}

// Iterative launches searches of increasing depth on the same Thinker,
// keeping the deepest completed PV available at all times: an early Halt
// still returns useful output. Mirrors the teacher's searchctl.Iterative.
type Iterative struct {
	Thinker *Thinker
}

func NewIterative(t *Thinker) *Iterative {
	return &Iterative{Thinker: t}
}

func (it *Iterative) Launch(ctx context.Context, g *board.Game, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, it.Thinker, g, opt, out)
	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, t *Thinker, g *board.Game, opt Options, out chan PV) {
	defer h.init.Close()
	defer close(out)

	soft, useSoft := enforceTimeControl(ctx, h, opt.TimeControl)

	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		nodes, score, moves, err := t.Search(g, depth, h.quit.Closed())
		if err != nil {
			if err == ErrHalted {
				return
			}
			logw.Errorf(ctx, "Search failed at depth=%v: %v", depth, err)
			return
		}

		pv := PV{Depth: depth, Nodes: nodes, Score: score, Moves: moves, Time: time.Since(start)}
		logw.Debugf(ctx, "Searched depth=%v: %v", depth, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && depth == limit {
			return
		}
		if useSoft && soft < time.Since(start) {
			return
		}
		depth++
	}
}

func (h *handle) Halt() PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

// enforceTimeControl schedules a hard-deadline Halt, if tc is set, and
// reports the soft deadline for the caller's loop to check between
// iterative-deepening rounds.
func enforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl]) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Limits()
	if hard <= 0 {
		return 0, false
	}

	time.AfterFunc(hard, func() {
		h.Halt()
	})

	logw.Debugf(ctx, "Time control limits: [%v; %v]", soft, hard)
	return soft, true
}
