// cmd/api/main.go is the activities API entry point.
// It connects to PostgreSQL, wires the layers and starts the HTTP server.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
	"github.com/Shivanand-hulikatti/activity-signup/internal/database"
	"github.com/Shivanand-hulikatti/activity-signup/internal/handler"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logging"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
)

func main() {
	cfg, err := config.LoadAPI()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Logging.Logger())
	ctx := context.Background()

	// ── 1. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to postgres", slog.String("host", cfg.Database.Host), slog.String("db", cfg.Database.Name))

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Error("migrate", slog.Any("error", err))
		os.Exit(1)
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	activityRepo := repository.NewActivityRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	if cfg.Seed {
		seeded, err := activityRepo.SeedIfEmpty(ctx, database.DefaultActivities())
		if err != nil {
			logger.Error("seed", slog.Any("error", err))
			os.Exit(1)
		}
		if seeded {
			logger.Info("seeded default activities")
		}
	}
	activitySvc := service.NewActivityService(activityRepo, regRepo)
	activityHandler := handler.NewActivityHandler(activitySvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.Logger)
	r.Use(handler.CORS)

	r.Get("/health", handler.HealthCheck)
	r.Get("/", handler.RedirectTo(cfg.ViewURL))
	activityHandler.Routes(r)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api listening", slog.String("addr", "http://localhost:"+cfg.Port))
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
