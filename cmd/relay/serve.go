package main

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

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/relay"
)

func loadConfig() (*relay.Config, error) {
	cfg, err := relay.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	arr.SetLocale(tag)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Trace {
		shutdown, err := relay.InitTracer("relay", os.Stderr, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize tracer: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
	}

	forwarder := relay.NewForwarder(cfg.Retry, logger, nil)
	srv := relay.NewServer(cfg, logger, forwarder).HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("relay listening", slog.String("addr", srv.Addr), slog.Int("routes", len(cfg.Routes)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sigChan:
	}

	logger.Info("shutdown signal received, draining requests")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("relay stopped")
	return nil
}
