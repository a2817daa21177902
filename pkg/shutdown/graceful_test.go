package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mesto/pkg/shutdown"
)

var errHookFailed = errors.New("hook failed")

func TestWaitExecutesHooks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	failing := func(context.Context) error {
		calls.Add(1)
		return errHookFailed
	}

	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second, hook, failing, hook)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}

	assert.Equal(t, int32(3), calls.Load(), "all hooks should be executed")
}

func TestWaitRespectsTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var completed atomic.Bool
	slowHook := func(hookCtx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			completed.Store(true)
			return nil
		case <-hookCtx.Done():
			return hookCtx.Err()
		}
	}

	start := time.Now()
	shutdown.Wait(ctx, 200*time.Millisecond, slowHook)

	assert.Less(t, time.Since(start), time.Second, "Wait should return once the timeout expires")
	assert.False(t, completed.Load(), "slow hook must not complete")
}
