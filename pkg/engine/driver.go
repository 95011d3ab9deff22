package engine

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"
)

// SupportedVersions are the "st3p version N" handshakes this driver
// acknowledges (§6.2).
var SupportedVersions = map[int]bool{1: true, 2: true}

// Driver runs the referee protocol loop over line channels: one command per
// input line, zero or more response lines per command. It owns no board
// state across commands (every move command is self-contained per §6.1);
// only the wrapped Engine's evaluation cache and looker persist for reuse.
type Driver struct {
	e *Engine

	out  chan<- string
	quit chan struct{}
}

// NewDriver starts a Driver reading from in and writing to the returned
// channel, mirroring the teacher's uci.NewDriver shape. Closed() reports
// when the driver has exited, whether by "quit" or by the input channel
// closing.
func NewDriver(ctx context.Context, e *Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 16)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.quit)
	defer close(d.out)

	for line := range in {
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			logw.Warningf(ctx, "ignoring unknown input: %v", line)
			continue
		}

		switch cmd.Kind {
		case Version:
			if !SupportedVersions[cmd.Version] {
				logw.Warningf(ctx, "ignoring unknown input: %v", line)
				continue
			}
			d.out <- fmt.Sprintf("st3p version %v ok", cmd.Version)

		case Identify:
			for _, l := range d.e.Identify() {
				d.out <- l
			}

		case Move:
			best, err := d.e.Move(ctx, cmd.Board, cmd.WinLength)
			if err != nil {
				logw.Errorf(ctx, "move failed for %q: %v", line, err)
				continue
			}
			d.out <- fmt.Sprintf("best %v", best)

		case Quit:
			logw.Infof(ctx, "Driver quitting")
			return

		default:
			logw.Warningf(ctx, "ignoring unknown input: %v", line)
		}
	}
}
