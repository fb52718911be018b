// cmd/main.go is the sign-up view entry point.
// It wires the API client into per-session view controllers and serves the page.
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

	"github.com/Shivanand-hulikatti/activity-signup/internal/client"
	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logging"
	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
	"github.com/Shivanand-hulikatti/activity-signup/internal/web"
)

func main() {
	cfg, err := config.LoadView()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Logging.Logger())

	// ── 1. Wire up layers ────────────────────────────────────────────────
	apiClient := client.New(cfg.APIBaseURL, cfg.APITimeout, nil)
	server := web.NewServer(func() *view.Controller {
		return view.NewController(apiClient, view.WithLogger(logger))
	}, cfg.SessionIdleTimeout)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if cfg.SessionIdleTimeout > 0 {
		go server.RunJanitor(ctx, time.Minute)
	}

	// ── 2. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("view listening",
			slog.String("addr", "http://localhost:"+cfg.Port),
			slog.String("api", cfg.APIBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
