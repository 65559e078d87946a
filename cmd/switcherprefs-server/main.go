// Package main is the entry point for the switcherprefs-server application.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/CreativeUnicorns/switcherprefs/api"
	"github.com/CreativeUnicorns/switcherprefs/internal/config"
)

// newFlagSet declares the server flags. Only flags set on the command line
// override the config file.
func newFlagSet(errorHandling pflag.ErrorHandling) (*pflag.FlagSet, *string) {
	flags := pflag.NewFlagSet("switcherprefs-server", errorHandling)
	cfgFile := flags.String("config", "", "config file (default $XDG_CONFIG_HOME/switcherprefs/config.yaml)")
	flags.String("listen-addr", ":8080", "HTTP listen address")
	flags.String("backend", config.BackendSQLite, "storage backend: memory, sqlite, postgres or file")
	flags.String("dsn", "", "database path, connection string or settings file")
	flags.String("domain", "", "settings domain")
	flags.String("app-version", "", "running application version used by migrations")
	flags.String("cache", config.CacheMemory, "read cache: memory or redis")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("watch", false, "reload the settings file when another process edits it")
	return flags, cfgFile
}

func main() {
	flags, cfgFile := newFlagSet(pflag.ExitOnError)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgFile, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "switcherprefs-server:", err)
		os.Exit(1)
	}

	rt, err := config.Open(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "switcherprefs-server:", err)
		os.Exit(1)
	}
	logger := rt.Logger
	logger.Info("Switcherprefs server starting up...", "backend", cfg.Backend, "domain", cfg.Domain)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rt.Store.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize preferences", "error", err)
		_ = rt.Close()
		os.Exit(1)
	}

	go func() {
		if err := rt.Watch(ctx); err != nil {
			logger.Error("Settings file watch stopped", "error", err)
		}
	}()

	apiServer, err := api.NewServer(api.Config{
		ListenAddress: cfg.ListenAddr,
		Store:         rt.Store,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("Failed to create API server", "error", err)
		_ = rt.Close()
		os.Exit(1)
	}

	// Start server in a goroutine
	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("API server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	if err := rt.Close(); err != nil {
		logger.Error("Failed to close store", "error", err)
	}

	logger.Info("Server exited gracefully")
}
