// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/citygreenhub/greenhub/internal/config"
	"github.com/citygreenhub/greenhub/internal/i18n"
	"github.com/citygreenhub/greenhub/internal/logging"
	"github.com/citygreenhub/greenhub/internal/store"
	"github.com/citygreenhub/greenhub/internal/util"
	"github.com/citygreenhub/greenhub/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")
	resetDB := flag.Bool("reset-db", false, "Delete the database, recreate and seed it, then exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "City Green Hub - urban green infrastructure site\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_SESSION_SECRET   Session key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_DB_PATH          SQLite database path (default: ./data/citygreenhub.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_SERVER_HOST      Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_SERVER_PORT      Server port (default: 5000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_LOG_LEVEL        debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_LOG_FORMAT       text|json (default: text)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_DEFAULT_LANG     Default UI language (default: ru)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GREENHUB_METRICS_ENABLED  Expose /metrics (default: true)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(info, *resetDB); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info, resetDB bool) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger := logging.New(level, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	if err := util.EnsureParentDir(cfg.DBPath); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	ctx := context.Background()

	if resetDB {
		if err := store.Reset(ctx, cfg.DBPath); err != nil {
			return fmt.Errorf("resetting database: %w", err)
		}
		_, _ = fmt.Printf("database reset: %s\n", cfg.DBPath)
		return nil
	}

	if err := i18n.Init(logger, cfg.DefaultLang); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n initialized", "languages", i18n.GetSupportedLanguages(), "default", i18n.GetDefaultLanguage())

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	slog.Info("database ready")

	a, err := newApp(cfg, db, info)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           a.routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
