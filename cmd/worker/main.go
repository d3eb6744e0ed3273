package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtroode/filesmanager-server/internal/app"
	"github.com/dtroode/filesmanager-server/internal/config"
	"github.com/dtroode/filesmanager-server/internal/logger"
	queue "github.com/dtroode/filesmanager-server/internal/queue/redis"
	"github.com/dtroode/filesmanager-server/internal/repository/postgres"
	"github.com/dtroode/filesmanager-server/internal/service"
	"github.com/dtroode/filesmanager-server/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	deps, err := app.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize dependencies", "error", err)
	}
	defer deps.Close()

	nodeRepo := postgres.NewNodeRepository(deps.DB)
	jobQueue := queue.NewQueue(deps.Redis, cfg.Queue.Name, cfg.Queue.MaxAttempts, cfg.Queue.PollTimeout).WithConsumer(cfg.Worker.ID)
	thumbnailService := service.NewThumbnail(nodeRepo, deps.Blobs, logger)

	runner := worker.NewRunner(jobQueue, thumbnailService, cfg.Worker.Concurrency, logger)

	done := make(chan error, 1)
	go func() {
		logger.Info("Starting worker", "queue", cfg.Queue.Name, "worker_id", cfg.Worker.ID, "concurrency", cfg.Worker.Concurrency)
		done <- runner.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("worker stopped", "error", err)
		}
		return
	case <-ctx.Done():
	}
	logger.Info("received interruption signal, finishing in-flight jobs")

	select {
	case err := <-done:
		if err != nil {
			logger.Error("worker stopped", "error", err)
		}
	case <-time.After(10 * time.Second):
		logger.Warn("in-flight jobs did not finish in time; they will be recovered on next start")
	}
	logger.Info("shutdown complete")
}
