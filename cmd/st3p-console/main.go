// st3p-console is an interactive debugging REPL around the engine: not
// part of the referee protocol, a development aid paralleling the
// teacher's own "console" protocol alongside its "uci" one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/seekerror/logw"

	"github.com/st3p-dev/engine/pkg/engine"
	"github.com/st3p-dev/engine/pkg/engine/console"
)

var (
	depth = flag.Uint("depth", 0, "Search depth limit (0 uses the engine default)")
	hash  = flag.Uint("hash", 0, "Evaluation cache size in MB (0 sizes from system memory)")
	noise = flag.Uint("noise", 0, "Evaluation noise amplitude (0 disables it)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, engine.Options{Depth: *depth, Hash: *hash, Noise: *noise})

	rl, err := readline.New("st3p> ")
	if err != nil {
		logw.Exitf(ctx, "Failed to start console: %v", err)
	}
	defer rl.Close()

	in := make(chan string, 1)
	go readLines(ctx, rl, in)

	driver, out := console.NewDriver(ctx, e, in)
	go func() {
		for line := range out {
			fmt.Fprintln(rl.Stdout(), line)
		}
	}()

	<-driver.Closed()
}

func readLines(ctx context.Context, rl *readline.Instance, out chan<- string) {
	defer close(out)

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return
		case err != nil:
			logw.Errorf(ctx, "Console input error: %v", err)
			return
		}
		out <- line
	}
}
