package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashcardi-api/config"
	"github.com/andrewpaige1/flashcardi-api/handlers"
	"github.com/andrewpaige1/flashcardi-api/logger"
	"github.com/andrewpaige1/flashcardi-api/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := config.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to initialize database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	srv, err := newServer(cfg, log, db)
	if err != nil {
		log.Error("failed to build server", zap.Error(err))
		return err
	}

	return run(ctx, srv, cfg.ShutdownTimeout, log)
}

// newServer wires the router and middleware stack for cfg.
func newServer(cfg *config.Config, log *zap.Logger, db *gorm.DB) (*http.Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	protect, err := middleware.EnsureValidToken(cfg.Auth, log)
	if err != nil {
		return nil, err
	}
	if !cfg.Auth.Enabled() {
		log.Warn("AUTH_JWT_SECRET is empty, write routes are open")
	}

	dbHandler := handlers.NewDBHandler(db, log, loc)
	router := handlers.NewRouter(dbHandler, cfg.Port, protect)

	handler := middleware.Chain(router,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.Recover(log),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	return &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", zap.Error(err))
		return err
	}
	log.Info("shutdown complete")
	return nil
}
