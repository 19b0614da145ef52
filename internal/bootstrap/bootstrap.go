// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds how long shutdown hooks may take.
const DefaultShutdownTimeout = 10 * time.Second

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu      sync.Mutex
	hooks   []hook
	timeout time.Duration
	signals []os.Signal
}

// Option configures an App.
type Option func(*App)

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// New creates a new App that stops on SIGINT or SIGTERM.
func New(opts ...Option) *App {
	a := &App{
		timeout: DefaultShutdownTimeout,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// Run executes run until it returns or the process is signalled.
// Either way the shutdown hooks run once, and run is given until the shutdown
// timeout to return after its context is canceled.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	running := true
	select {
	case <-ctx.Done():
		slog.Info("shutting down", "reason", ctx.Err())
	case runErr = <-errCh:
		running = false
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.timeout)
	defer cancelShutdown()
	hookErr := a.shutdown(shutdownCtx)

	if running {
		select {
		case runErr = <-errCh:
		case <-shutdownCtx.Done():
			runErr = fmt.Errorf("run did not return > %w", shutdownCtx.Err())
		}
	}
	return errors.Join(runErr, hookErr)
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(ctx); err != nil {
			slog.Error("shutdown hook failed", "hook", h.name, "error", err)
			errs = append(errs, fmt.Errorf("%s > %w", h.name, err))
			continue
		}
		slog.Debug("shutdown hook finished", "hook", h.name)
	}
	return errors.Join(errs...)
}
