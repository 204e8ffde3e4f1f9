// Package overview fetches the Mars properties listing once and publishes a
// status string describing the result.
package overview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qendev/mars_realestate/internal/domain"
	"github.com/qendev/mars_realestate/internal/observable"
)

var (
	ErrAlreadyStarted = errors.New("controller already started")
	ErrStopped        = errors.New("controller stopped")
)

// Controller runs a single fetch per lifetime. The status string is written at
// most once, on success, from the dispatcher's execution context.
type Controller struct {
	log        *slog.Logger
	api        PropertiesGetter
	dispatcher Dispatcher
	status     *observable.Value[string]

	mu       sync.Mutex
	result   domain.FetchResult
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

func New(log *slog.Logger, api PropertiesGetter, dispatcher Dispatcher) *Controller {
	return &Controller{
		log:        log,
		api:        api,
		dispatcher: dispatcher,
		status:     observable.NewValue[string](),
		result:     domain.FetchResult{State: domain.FetchStateIdle},
		done:       make(chan struct{}),
	}
}

// Start launches the fetch in the background. The fetch is bound to ctx and to Stop.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	if c.started {
		return ErrAlreadyStarted
	}

	fetchID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate fetch id: %w", err)
	}

	fetchCtx, cancel := context.WithCancel(ctx)

	c.started = true
	c.cancel = cancel
	c.result = domain.FetchResult{
		FetchID:   fetchID,
		State:     domain.FetchStateFetching,
		StartedAt: time.Now(),
	}

	log := c.log.With(slog.String("fetch_id", fetchID.String()))

	go c.fetch(fetchCtx, log)

	return nil
}

// Stop cancels an in-flight fetch. After Stop returns the status string is
// never written again. Safe to call more than once.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true

	if c.cancel != nil {
		c.cancel()
	}

	if c.result.State == domain.FetchStateFetching {
		c.result.State = domain.FetchStateFailed
		c.result.Err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, context.Canceled)
		c.result.FinishedAt = time.Now()

		c.log.Debug("controller stopped during fetch", slog.String("fetch_id", c.result.FetchID.String()))
	}

	c.closeDone()
}

func (c *Controller) Status() observable.Observable[string] {
	return c.status
}

func (c *Controller) Result() domain.FetchResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.result
}

// Done is closed when the fetch reaches a terminal state or the controller is stopped.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) fetch(ctx context.Context, log *slog.Logger) {
	log.InfoContext(ctx, "fetching mars properties")

	count, err := c.fetchCount(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	postErr := c.dispatcher.Post(func() {
		c.publish(ctx, log, count, err)
	})
	if postErr != nil {
		log.WarnContext(ctx, "failed to dispatch fetch result", slog.String("err", postErr.Error()))

		c.publish(ctx, log, 0, fmt.Errorf("%w: %w", domain.ErrFetchFailed, errors.Join(err, postErr)))
	}
}

func (c *Controller) fetchCount(ctx context.Context) (int, error) {
	payload, err := c.api.Properties(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get properties: %w", err)
	}

	count, err := domain.CountProperties(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}

	return count, nil
}

// publish records the outcome. It only writes the status string on success,
// and only while the controller has not been stopped.
func (c *Controller) publish(ctx context.Context, log *slog.Logger, count int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		log.DebugContext(ctx, "controller stopped, dropping fetch result")
		return
	}

	c.result.FinishedAt = time.Now()

	if err != nil {
		c.result.State = domain.FetchStateFailed
		c.result.Err = err

		log.ErrorContext(ctx, "failed to fetch mars properties", slog.String("err", err.Error()))
	} else {
		message := domain.StatusMessage(count)

		c.result.State = domain.FetchStateSucceeded
		c.result.Count = count
		c.result.Message = message

		c.status.Set(message)

		log.InfoContext(ctx, "mars properties retrieved", slog.Int("properties_count", count))
	}

	c.closeDone()
}

func (c *Controller) closeDone() {
	c.doneOnce.Do(func() { close(c.done) })
}
