//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls   atomic.Int32
	deleted int64
	err     error
}

func (f *fakePurger) DeleteExpired(context.Context) (int64, error) {
	f.calls.Add(1)
	return f.deleted, f.err
}

func TestJanitor_SweepOnce(t *testing.T) {
	t.Run("reports purged keys", func(t *testing.T) {
		n, err := worker.NewJanitor(&fakePurger{deleted: 3}, time.Minute).SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("purge failure", func(t *testing.T) {
		_, err := worker.NewJanitor(&fakePurger{err: errs.New("timeout")}, time.Minute).SweepOnce(context.Background())
		assert.Error(t, err)
	})
}

func TestJanitor_Run(t *testing.T) {
	t.Run("missing purger", func(t *testing.T) {
		err := worker.NewJanitor(nil, time.Minute).Run(context.Background())
		assert.ErrorIs(t, err, worker.ErrJanitorNotConfigured)
	})

	t.Run("sweeps on every tick until cancelled", func(t *testing.T) {
		purger := &fakePurger{}
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := worker.NewJanitor(purger, 5*time.Millisecond).Run(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Positive(t, purger.calls.Load())
	})
}

type blockingLoop struct {
	started chan struct{}
	stopped atomic.Bool
}

func (l *blockingLoop) Run(ctx context.Context) error {
	close(l.started)
	<-ctx.Done()
	l.stopped.Store(true)
	return ctx.Err()
}

type stubbornLoop struct{}

func (stubbornLoop) Run(context.Context) error {
	time.Sleep(time.Second)
	return nil
}

func TestGroup(t *testing.T) {
	t.Run("stop cancels every loop", func(t *testing.T) {
		a := &blockingLoop{started: make(chan struct{})}
		b := &blockingLoop{started: make(chan struct{})}
		g := worker.NewGroup()
		g.Add("a", a)
		g.Add("b", b)

		g.Start()
		<-a.started
		<-b.started

		require.NoError(t, g.Stop(context.Background()))
		assert.True(t, a.stopped.Load())
		assert.True(t, b.stopped.Load())
	})

	t.Run("stop before start", func(t *testing.T) {
		assert.NoError(t, worker.NewGroup().Stop(context.Background()))
	})

	t.Run("stop gives up at the deadline", func(t *testing.T) {
		g := worker.NewGroup()
		g.Add("stubborn", stubbornLoop{})
		g.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, g.Stop(ctx), context.DeadlineExceeded)
	})
}
