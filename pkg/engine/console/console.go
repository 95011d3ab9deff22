// Package console implements an interactive debugging driver: not part of
// the referee protocol (§6.2), the direct analog of the teacher's
// pkg/engine/console alongside its uci protocol.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/engine"
	"github.com/st3p-dev/engine/pkg/search"
)

const ProtocolName = "console"

// Driver implements the console protocol for debugging. Unlike the referee
// shim, it holds one *board.Game across commands ("set" loads it, "move"
// and "analyze" search it, "print" renders it back).
type Driver struct {
	iox.AsyncCloser

	e     *engine.Engine
	depth int

	out chan<- string

	g      *board.Game
	handle search.Handle
	active atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")
	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), engine.Author)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			cmd, args := strings.ToLower(fields[0]), fields[1:]

			switch cmd {
			case "set", "s":
				d.ensureInactive(ctx)

				g, err := d.e.Parse(strings.Join(args, " "), 0)
				if err != nil {
					d.out <- fmt.Sprintf("invalid board: %v", err)
					break
				}
				d.g = g
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "move", "m":
				d.ensureInactive(ctx)

				if d.g == nil {
					d.out <- "no board set"
					break
				}
				best, err := d.e.Thinker(d.depth).Best(d.g)
				if err != nil {
					d.out <- fmt.Sprintf("move failed: %v", err)
					break
				}
				d.out <- fmt.Sprintf("best %v", best)

			case "analyze", "a":
				d.ensureInactive(ctx)

				if d.g == nil {
					d.out <- "no board set"
					break
				}

				var opt search.Options
				if len(args) > 0 {
					if n, err := strconv.Atoi(args[0]); err == nil {
						opt.DepthLimit = lang.Some(n)
					}
				}

				launcher := search.NewIterative(d.e.Thinker(0))
				handle, pvs := launcher.Launch(ctx, d.g, opt)
				d.handle = handle
				d.active.Store(true)

				go func() {
					var last search.PV
					for pv := range pvs {
						last = pv
						d.out <- pv.String()
					}
					d.searchCompleted(last)
				}()

			case "depth", "d":
				if len(args) > 0 {
					if n, err := strconv.Atoi(args[0]); err == nil {
						d.depth = n
					}
				}

			case "halt", "stop":
				if d.handle != nil {
					pv := d.handle.Halt()
					d.searchCompleted(pv)
				}

			case "quit", "exit", "q":
				d.ensureInactive(ctx)
				return

			default:
				d.out <- fmt.Sprintf("unknown command: %v", cmd)
			}

		case <-d.Closed():
			d.ensureInactive(ctx)
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) ensureInactive(ctx context.Context) {
	if d.active.CompareAndSwap(true, false) && d.handle != nil {
		d.handle.Halt()
	}
}

func (d *Driver) searchCompleted(pv search.PV) {
	if d.active.CompareAndSwap(true, false) {
		if len(pv.Moves) > 0 {
			d.out <- fmt.Sprintf("bestmove %v", pv.Moves[0])
		}
	}
}

func (d *Driver) printBoard() {
	if d.g == nil {
		d.out <- "(no board set)"
		return
	}
	d.out <- board.Format(d.g)
	d.out <- fmt.Sprintf("size=%v win-length=%v side=%v hash=0x%x", d.g.Size, d.g.WinLength, d.g.SideToPlay, d.g.Hash)
}
