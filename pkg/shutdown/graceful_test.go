package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/pkg/shutdown"
)

var errHook = errors.New("hook failed")

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestWaitExecutesHooks(t *testing.T) {
	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	err := shutdown.Wait(cancelledContext(), time.Second, hook, hook)

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitCombinesHookErrors(t *testing.T) {
	failing := func(context.Context) error { return errHook }
	ok := func(context.Context) error { return nil }

	err := shutdown.Wait(cancelledContext(), time.Second, failing, ok, failing)

	require.Error(t, err)
	assert.ErrorIs(t, err, errHook)
}

func TestWaitRespectsTimeout(t *testing.T) {
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return nil
	}

	start := time.Now()
	err := shutdown.Wait(cancelledContext(), 50*time.Millisecond, slow)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWaitHookContextOutlivesParent(t *testing.T) {
	var hookErr error
	hook := func(ctx context.Context) error {
		hookErr = ctx.Err()
		return nil
	}

	require.NoError(t, shutdown.Wait(cancelledContext(), time.Second, hook))
	assert.NoError(t, hookErr)
}

func TestSequenceKeepsOrder(t *testing.T) {
	var order []int
	step := func(n int, err error) shutdown.Hook {
		return func(context.Context) error {
			order = append(order, n)
			return err
		}
	}

	err := shutdown.Sequence(step(1, nil), step(2, errHook), step(3, nil))(context.Background())

	assert.ErrorIs(t, err, errHook)
	assert.Equal(t, []int{1, 2, 3}, order)
}
