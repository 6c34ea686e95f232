//go:build unix

package shutdown

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"hello-window/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestManager_ListenSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	m := NewManager(logger.Nop())
	m.Register(rec.step("quit"))
	m.Listen(ctx)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-m.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown not triggered by SIGTERM")
	}

	require.Eventually(t, func() bool {
		return len(rec.steps()) == 1
	}, 5*time.Second, 10*time.Millisecond)
}
