package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/yerevantaxi/tycoon/internal/config"
	"github.com/yerevantaxi/tycoon/internal/database"
	"github.com/yerevantaxi/tycoon/internal/engine"
	"github.com/yerevantaxi/tycoon/internal/save"
	"github.com/yerevantaxi/tycoon/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	store, err := save.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing save store: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Engine ---
	eng := engine.New(ctx, logger, engine.RealClock{}, store)
	if rep := eng.OfflineReport(); rep.Seconds > 0 {
		logger.Info("offline catch-up pending",
			"seconds", rep.Seconds, "earnings", rep.Earnings)
	}

	admin, err := server.NewAdminAuth(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("initializing admin auth: %w", err)
	}
	if admin == nil {
		logger.Info("admin surface disabled, ADMIN_PASSWORD not set")
	}

	broker := server.NewBroker()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, eng, broker, store, admin)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		return server.RunTicker(gctx, logger, eng, broker, cfg.TickInterval, cfg.SaveInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
