package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/lifeos/internal/bootstrap"
	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/database"
	"github.com/at-ishikawa/lifeos/internal/seed"
	"github.com/at-ishikawa/lifeos/internal/server"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/validation"
	"github.com/at-ishikawa/lifeos/schemas"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "lifeos-server",
		Short:         "LifeOS dashboard HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	a, err := setup(ctx, cfg, time.Now)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_ = a.closeRepo()
		return fmt.Errorf("net.Listen(%s) > %w", addr, err)
	}
	return serve(ctx, cfg, a, listener)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// application is everything the server needs, wired from the config.
type application struct {
	store     *store.Store
	handler   http.Handler
	repo      snapshot.Repository
	closeRepo func() error
	autosaver *snapshot.Autosaver
	restored  bool
	now       func() time.Time
}

func setup(ctx context.Context, cfg *config.Config, now func() time.Time) (*application, error) {
	loc := cfg.Location()

	repo, closeRepo, err := snapshot.NewRepository(*cfg, database.Opener(ctx, schemas.Migrations))
	if err != nil {
		return nil, fmt.Errorf("snapshot.NewRepository() > %w", err)
	}

	initial, restored, err := snapshot.Restore(ctx, repo, func() store.State {
		if cfg.Seed.Enabled {
			return seed.Generate(now().In(loc), uuid.NewString)
		}
		return store.Empty()
	})
	if err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("snapshot.Restore() > %w", err)
	}
	if dangling := initial.Integrity(); len(dangling) > 0 {
		slog.Warn("initial state has dangling references", "count", len(dangling))
	}

	v, err := validation.New()
	if err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("validation.New() > %w", err)
	}

	storeOpts := []store.Option{
		store.WithClock(now),
		store.WithValidator(v),
		store.WithIntegrityCheck(),
	}
	serverOpts := []server.Option{
		server.WithSnapshots(repo),
		server.WithLocation(loc),
		server.WithClock(now),
		server.WithAllowedOrigins(cfg.Server.CORS.AllowedOrigins),
	}
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		storeOpts = append(storeOpts, store.WithMetrics(store.NewMetrics(registry)))
		serverOpts = append(serverOpts, server.WithMetrics(registry))
	}

	st := store.New(initial, storeOpts...)
	a := &application{
		store:     st,
		handler:   server.New(st, v, serverOpts...).Handler(),
		repo:      repo,
		closeRepo: closeRepo,
		restored:  restored,
		now:       now,
	}
	if cfg.Snapshot.Autosave {
		a.autosaver = snapshot.NewAutosaver(repo, st.State, now)
		st.Subscribe(func(store.State) { a.autosaver.Notify() })
	}

	slog.Info("state ready",
		"backend", cfg.Snapshot.Backend,
		"restored", restored,
		"sizes", st.State().Sizes(),
	)
	return a, nil
}

// serve runs the HTTP server on listener until ctx is canceled or a signal arrives,
// then saves the state once more and releases the repository.
func serve(ctx context.Context, cfg *config.Config, a *application, listener net.Listener) error {
	app := bootstrap.New(bootstrap.WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second))

	srv := &http.Server{
		Handler:           h2c.NewHandler(a.handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// hooks run last-registered first
	app.AddShutdownHook("snapshot repository", func(context.Context) error {
		return a.closeRepo()
	})
	app.AddShutdownHook("final snapshot", func(ctx context.Context) error {
		if err := a.repo.Save(ctx, a.store.State(), a.now()); err != nil {
			return fmt.Errorf("repo.Save() > %w", err)
		}
		return nil
	})
	if a.autosaver != nil {
		saverCtx, stopSaver := context.WithCancel(context.Background())
		saverDone := make(chan struct{})
		go func() {
			defer close(saverDone)
			a.autosaver.Run(saverCtx, func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
			})
		}()
		app.AddShutdownHook("autosave", func(ctx context.Context) error {
			stopSaver()
			select {
			case <-saverDone:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.Serve() > %w", err)
		}
		return nil
	})
}
