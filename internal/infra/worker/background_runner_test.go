package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestBackgroundRunnerRunsTasks(t *testing.T) {
	runner := NewBackgroundRunner(context.Background())

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		runner.Go("incrementa", func(ctx context.Context) error {
			count.Add(1)
			return nil
		})
	}
	runner.Go("falha", func(ctx context.Context) error {
		count.Add(1)
		return errors.New("kommo fora do ar")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, runner.Wait(ctx))
	assert.Equal(t, int32(6), count.Load())
}

func TestBackgroundRunnerRecoversPanic(t *testing.T) {
	runner := NewBackgroundRunner(context.Background())

	runner.Go("panic", func(ctx context.Context) error {
		panic("payload inesperado")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, runner.Wait(ctx))
}

func TestBackgroundRunnerDetachesFromParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "v"))
	runner := NewBackgroundRunner(parent)
	cancelParent()

	var detached atomic.Value
	runner.Go("contexto", func(ctx context.Context) error {
		detached.Store(ctx.Err() == nil && ctx.Value(ctxKey{}) == "v")
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, runner.Wait(ctx))
	assert.Equal(t, true, detached.Load())
}

func TestBackgroundRunnerWaitTimeout(t *testing.T) {
	runner := NewBackgroundRunner(context.Background())
	release := make(chan struct{})
	defer close(release)

	runner.Go("lenta", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, runner.Wait(ctx), context.DeadlineExceeded)
}
