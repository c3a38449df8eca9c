// Package main is the entry point for the Fleet Finance Hub API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fleetops/finance-hub/config"
	"github.com/fleetops/finance-hub/internal/infra/db"
	"github.com/fleetops/finance-hub/internal/infra/dependency"
	"github.com/fleetops/finance-hub/internal/infra/server/router"
	"github.com/fleetops/finance-hub/internal/integration/entrypoint/controller"
	"github.com/fleetops/finance-hub/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Fleet Finance Hub API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)

	var engine http.Handler
	var alertWorkerCancel context.CancelFunc

	if err != nil {
		slog.Warn("Database connection failed, serving health endpoint only",
			"error", err,
		)

		healthController := controller.NewHealthController(func() bool { return false })
		r := router.NewRouter(healthController, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
		engine = r.Setup(cfg.Server.Environment)
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.PermissionGrantModel{},
			&model.AlertQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		// Initialize redis for the permission cache
		redisClient := newRedisClient(&cfg.Redis)

		// Wire dependencies
		injector := dependency.NewInjector(cfg, database.DB(), redisClient)
		engine = injector.Router.Setup(cfg.Server.Environment)

		// Start the alert worker when configured
		if injector.AlertWorker != nil {
			var workerCtx context.Context
			workerCtx, alertWorkerCancel = context.WithCancel(context.Background())
			go injector.AlertWorker.Start(workerCtx)
		} else {
			slog.Info("Alert worker disabled")
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	if alertWorkerCancel != nil {
		alertWorkerCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient connects to redis for the permission cache. A failed
// connection is tolerated; permission checks fall back to the store.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid redis URL, permission cache disabled", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis ping failed, continuing with cache fall-through", "error", err)
	}

	return client
}
