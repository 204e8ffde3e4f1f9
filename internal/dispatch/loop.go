// Package dispatch provides the serial execution context that publishes
// results to observers.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrClosed = errors.New("dispatch loop is closed")

// Loop runs posted funcs one at a time, in post order, on the goroutine that
// called Run.
type Loop struct {
	log    *slog.Logger
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

func NewLoop(log *slog.Logger) *Loop {
	return &Loop{
		log:  log,
		wake: make(chan struct{}, 1),
	}
}

func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	l.queue = append(l.queue, fn)

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return nil
}

// Run executes posted funcs until ctx is done. Funcs still queued at that point
// are dropped and later posts fail with ErrClosed.
func (l *Loop) Run(ctx context.Context) error {
	defer l.close()

	for {
		select {
		case <-l.wake:
			for _, fn := range l.drain() {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				l.exec(ctx, fn)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loop) drain() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	queue := l.queue
	l.queue = nil

	return queue
}

func (l *Loop) exec(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.ErrorContext(ctx, "recovered panic in dispatched func", slog.Any("panic", r))
		}
	}()

	fn()
}

func (l *Loop) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := len(l.queue)
	l.closed = true
	l.queue = nil

	if dropped > 0 {
		l.log.Debug("dispatch loop closed with pending funcs", slog.Int("dropped", dropped))
	}
}
