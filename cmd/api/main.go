package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/teamdispo/dispo/internal/api/handlers"
	"github.com/teamdispo/dispo/internal/api/router"
	"github.com/teamdispo/dispo/internal/config"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/validator"
	"github.com/teamdispo/dispo/internal/repository/postgres"
	"github.com/teamdispo/dispo/internal/services"
	"github.com/teamdispo/dispo/internal/worker"
	"github.com/teamdispo/dispo/migrations"
)

// @title Dispo API
// @version 1.0
// @description Team availability planner: declarations, filters and daily stand-up checks.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	dailyCheckRepo := postgres.NewDailyCheckRepository(db)

	// Services
	userService := services.NewUserService(userRepo, cfg.Auth.BCryptCost, log)
	availabilityService := services.NewAvailabilityService(availabilityRepo, log)
	dailyCheckService := services.NewDailyCheckService(dailyCheckRepo, userRepo, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Auth:         handlers.NewAuthHandler(userService, cfg, log, val),
		Availability: handlers.NewAvailabilityHandler(availabilityService, log, val),
		DailyCheck:   handlers.NewDailyCheckHandler(dailyCheckService, log, val),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background retention
	if cfg.Retention.Enabled {
		retention := worker.NewRetention(availabilityRepo, cfg.Retention.Schedule, cfg.Retention.KeepDays, log)
		if err := retention.Start(ctx); err != nil {
			log.Fatalf("Failed to start retention worker: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
