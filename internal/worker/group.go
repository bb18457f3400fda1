package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Loop is a long running task that returns when its context ends.
type Loop interface {
	Run(ctx context.Context) error
}

// Group runs loops in the background until Stop.
type Group struct {
	loops  map[string]Loop
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGroup() *Group {
	return &Group{loops: map[string]Loop{}}
}

func (g *Group) Add(name string, l Loop) {
	g.loops[name] = l
}

func (g *Group) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	for name, l := range g.loops {
		g.wg.Add(1)
		go func(name string, l Loop) {
			defer g.wg.Done()
			slog.Info("worker loop started", "loop", name)
			if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("worker loop exited", "loop", name, "error", err.Error())
				return
			}
			slog.Info("worker loop stopped", "loop", name)
		}(name, l)
	}
}

// Stop cancels every loop and waits for them, or for ctx to expire.
func (g *Group) Stop(ctx context.Context) error {
	if g.cancel == nil {
		return nil
	}
	g.cancel()
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
