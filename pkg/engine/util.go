package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines reads stdin lines into a chan. Async.
func ReadStdinLines(ctx context.Context) <-chan string {
	recv := make(chan string, 1)
	go func() {
		defer close(recv)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "st3p recv: %v", scanner.Text())
			recv <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logw.Exitf(ctx, "Failed to read stdin: %v", err)
		}
	}()
	return recv
}

// WriteStdoutLines writes lines from the given chan to stdout.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, "st3p send: %v", line)
		if _, err := fmt.Fprintln(os.Stdout, line); err != nil {
			logw.Exitf(ctx, "Failed to write stdout: %v", err)
		}
	}
}
