package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/qendev/mars_realestate/internal/config"
	v1 "github.com/qendev/mars_realestate/internal/controller/http/v1"
	"github.com/qendev/mars_realestate/internal/dispatch"
	"github.com/qendev/mars_realestate/internal/marsapi"
	"github.com/qendev/mars_realestate/internal/overview"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
	out io.Writer
}

func New(log *slog.Logger, cfg *config.Config, out io.Writer) *App {
	return &App{
		log: log,
		cfg: cfg,
		out: out,
	}
}

func (a *App) Run(ctx context.Context) error {
	client, err := marsapi.New(marsapi.Config{
		BaseURL:      a.cfg.Client.BaseURL,
		Timeout:      a.cfg.Client.RequestTimeout,
		MaxBodyBytes: a.cfg.Client.MaxBodyBytes,
		UserAgent:    a.cfg.Client.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to create mars api client: %w", err)
	}

	a.log.InfoContext(ctx, "starting app",
		slog.String("properties_url", client.PropertiesURL()),
		slog.Duration("request_timeout", a.cfg.Client.RequestTimeout),
		slog.Bool("once", a.cfg.App.Once),
	)

	return a.run(ctx, client)
}

func (a *App) run(ctx context.Context, api overview.PropertiesGetter) error {
	loop := dispatch.NewLoop(a.log)
	controller := overview.New(a.log, api, loop)

	// The fetch result is queued until the loop runs.
	if err := controller.Start(ctx); err != nil {
		return fmt.Errorf("failed to start overview controller: %w", err)
	}

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "dispatch loop started")
		return loop.Run(ctx)
	})

	if a.cfg.App.Once {
		erg.Go(func() error {
			defer controller.Stop()

			select {
			case <-controller.Done():
				return a.report(controller)
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	} else {
		a.serve(ctx, erg, controller)
	}

	a.log.InfoContext(ctx, "all components started")

	err := erg.Wait()
	if errors.Is(err, errOnceFinished) {
		return nil
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

func (a *App) serve(ctx context.Context, erg *errgroup.Group, controller *overview.Controller) {
	server := v1.NewServer(a.cfg.HTTP, controller)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		controller.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
}

// errOnceFinished stops the dispatch loop after the result was reported in once mode.
var errOnceFinished = errors.New("once mode finished")

func (a *App) report(controller *overview.Controller) error {
	result := controller.Result()

	if status, ok := controller.Status().Get(); ok {
		if _, err := fmt.Fprintln(a.out, status); err != nil {
			return fmt.Errorf("failed to write status: %w", err)
		}

		return errOnceFinished
	}

	if result.Err == nil {
		return fmt.Errorf("no status published, fetch state %q", result.State)
	}

	return fmt.Errorf("no status published: %w", result.Err)
}
