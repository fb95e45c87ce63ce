package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortOnInterrupt_ExitsZero(t *testing.T) {
	codes := make(chan int, 1)
	orig := exitFn
	exitFn = func(code int) { codes <- code }
	t.Cleanup(func() { exitFn = orig })

	ctx, cancel := context.WithCancel(context.Background())
	restored := false
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		abortOnInterrupt(ctx, &buf, func() { restored = true })
		close(done)
	}()

	select {
	case <-codes:
		t.Fatal("exited before the interrupt")
	case <-time.After(20 * time.Millisecond):
	}

	// simulates Ctrl-C while a password prompt is blocked on stdin
	cancel()

	select {
	case code := <-codes:
		assert.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("interrupt did not end the process")
	}
	<-done
	require.True(t, restored, "terminal mode must be restored")
	assert.Equal(t, "\n", buf.String())
}

func TestTerminalRestorer_NotATerminal(t *testing.T) {
	restore := terminalRestorer(-1)
	require.NotNil(t, restore)
	restore()
}
