package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"recordkeeper/internal/app/server/api"
	"recordkeeper/internal/app/server/config"
	"recordkeeper/internal/infrastructure/metrics"
	"recordkeeper/internal/infrastructure/migration"
	"recordkeeper/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

type App struct {
	cfg   *config.Config
	log   *slog.Logger
	store *storage.Store
	srv   *http.Server
}

// Migrate creates the schema for the configured driver.
func Migrate(cfg config.DB, log *slog.Logger) error {
	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Driver, err)
	}
	log.Info("migrations applied", "driver", cfg.Driver, "source", mg.SourceURL())
	return nil
}

// New opens the store and builds the HTTP server. Call Migrate first.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	var mm *metrics.Manager
	if cfg.Metrics.Enabled {
		mm = metrics.NewManager()
	}

	return &App{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
		srv: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(store, log, cfg, mm),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves until ctx is done, then shuts down gracefully and closes
// the store.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", "address", a.srv.Addr, "env", a.cfg.Env)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutting down")
	case err := <-errCh:
		runErr = fmt.Errorf("listen: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("graceful shutdown failed", "error", err)
		runErr = errors.Join(runErr, err)
	}

	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close storage", "error", err)
		runErr = errors.Join(runErr, err)
	}

	a.log.Info("server stopped")
	return runErr
}
