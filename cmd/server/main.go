package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"osvita-admin/internal/app"
	"osvita-admin/internal/config"
	"osvita-admin/internal/handlers"
	"osvita-admin/internal/render"
	"osvita-admin/internal/repository"
	"osvita-admin/internal/server"
	"osvita-admin/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// База може підніматись довше за застосунок — пінгуємо з бекофом
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			logger.Warn("Database is not ready yet", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	groupRepo := repository.NewGroupRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	scheduleService := service.NewScheduleService(groupRepo, lessonRepo, logger)

	if cfg.AutoGenerate {
		scheduler := app.NewScheduler(scheduleService, cfg.DefaultWeeksAhead, logger)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	renderer := render.NewRenderer(cfg.FontPath)

	router := server.NewRouter(server.RouterConfig{
		ScheduleHandler: handlers.NewScheduleHandler(scheduleService, renderer, cfg.DefaultWeeksAhead, logger),
		GroupHandler:    handlers.NewGroupHandler(scheduleService, logger),
		AllowedOrigins:  cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("port", cfg.HTTPPort),
			zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
