package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"
)

var exitFn = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go abortOnInterrupt(ctx, os.Stderr, terminalRestorer(int(os.Stdin.Fd())))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// abortOnInterrupt ends the process with status 0 once ctx is cancelled.
// Prompts block in reads that do not observe ctx, so returning through the
// call stack is not possible.
func abortOnInterrupt(ctx context.Context, w io.Writer, restore func()) {
	<-ctx.Done()
	restore()
	fmt.Fprintln(w)
	exitFn(0)
}

// terminalRestorer snapshots the terminal mode of fd so echo can be turned
// back on when the process is interrupted inside a password prompt.
func terminalRestorer(fd int) func() {
	if !term.IsTerminal(fd) {
		return func() {}
	}
	state, err := term.GetState(fd)
	if err != nil {
		return func() {}
	}
	return func() { _ = term.Restore(fd, state) }
}
