// st3p implements the referee protocol (§6.2): one engine command per
// stdin line, one or more response lines on stdout, diagnostics on stderr.
package main

import (
	"context"
	"flag"

	"github.com/seekerror/logw"

	"github.com/st3p-dev/engine/pkg/engine"
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

	in := engine.ReadStdinLines(ctx)
	driver, out := engine.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()

	logw.Infof(ctx, "st3p exited")
}
