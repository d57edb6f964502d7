package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-package/internal/config"
	"github.com/pkordes/travel-package/internal/handler"
	"github.com/pkordes/travel-package/internal/middleware"
	"github.com/pkordes/travel-package/internal/repo"
	"github.com/pkordes/travel-package/internal/service"
	"github.com/pkordes/travel-package/migrations"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the travel booking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			if root.logLevel != "" {
				cfg.LogLevel = root.logLevel
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

// serve wires config, logger, ledger, service and router, then runs the HTTP
// server until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config) error {
	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := newLogger(os.Stdout, logLevel)
	slog.SetDefault(logger)

	// --- Ledger -----------------------------------------------------------
	ledger, closeLedger, err := openLedger(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open booking ledger", "error", err)
		return err
	}
	defer closeLedger()

	svc := service.NewBookingService(repo.NewCatalog(), ledger,
		service.WithSeatPolicy(cfg.SeatPolicy()),
		service.WithLogger(logger),
	)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newHTTPHandler(cfg, svc, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "seat_policy", seatPolicyName(cfg))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	// In-flight requests get up to 15 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newHTTPHandler applies the cross-cutting middleware around the API routes.
// Order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
func newHTTPHandler(cfg config.Config, svc handler.BookingServicer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(svc, logger).Routes())
	return r
}

// openLedger returns the Postgres ledger when DATABASE_URL is set, after
// applying pending migrations, and the in-memory ledger otherwise. The
// returned func releases whatever was opened.
func openLedger(ctx context.Context, cfg config.Config, logger *slog.Logger) (repo.BookingRepo, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set; booking ledger kept in memory")
		return repo.NewMemoryBookingRepo(), func() {}, nil
	}

	// New() does not open connections immediately; Ping does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	sqlDB := stdlib.OpenDBFromPool(pool)
	applied, err := migrations.Up(ctx, sqlDB)
	if closeErr := sqlDB.Close(); closeErr != nil {
		logger.Warn("closing migration connection", "error", closeErr)
	}
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("migrations applied", "count", applied)

	return repo.NewBookingRepo(pool), pool.Close, nil
}

func seatPolicyName(cfg config.Config) string {
	if cfg.ReleaseSeatOnDecline {
		return "release"
	}
	return "keep"
}
