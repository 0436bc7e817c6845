// Package app wires configuration, storage, services, and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mindlog-backend/internal/adapter/csv"
	"github.com/heartmarshall/mindlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindlog-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/mindlog-backend/internal/auth"
	"github.com/heartmarshall/mindlog-backend/internal/config"
	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
	"github.com/heartmarshall/mindlog-backend/internal/service/report"
	"github.com/heartmarshall/mindlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/mindlog-backend/internal/transport/rest"
)

// recordStore is the storage contract both drivers satisfy.
type recordStore interface {
	ReadAll(ctx context.Context) ([]domain.Record, error)
	Append(ctx context.Context, rec domain.Record) error
}

// Run is the application entry point. It loads configuration, selects
// the record store, builds the services and HTTP stack, and serves until
// the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	var (
		store  recordStore
		pinger interface{ Ping(ctx context.Context) error }
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		store = entry.New(pool)
		pinger = pool
	default:
		store = csv.NewStore(logger, cfg.Storage.CSVPath)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	journalSvc := journal.NewService(logger, store, nil)
	reportSvc := report.NewService(logger, journalSvc, nil)

	router := rest.NewRouter(
		rest.NewAuthHandler(jwtManager, cfg.Auth.SecretPhrase, logger),
		rest.NewEntriesHandler(journalSvc, logger),
		rest.NewReportHandler(reportSvc, logger),
		rest.NewHealthHandler(pinger, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
