package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpchandler "github.com/dtroode/filesmanager-server/internal/api/grpc/handler"
	grpcrouter "github.com/dtroode/filesmanager-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/filesmanager-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/filesmanager-server/internal/api/http/context"
	httprouter "github.com/dtroode/filesmanager-server/internal/api/http/router"
	httpserver "github.com/dtroode/filesmanager-server/internal/api/http/server"
	"github.com/dtroode/filesmanager-server/internal/app"
	cache "github.com/dtroode/filesmanager-server/internal/cache/redis"
	"github.com/dtroode/filesmanager-server/internal/config"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
	queue "github.com/dtroode/filesmanager-server/internal/queue/redis"
	"github.com/dtroode/filesmanager-server/internal/repository/postgres"
	"github.com/dtroode/filesmanager-server/internal/server"
	"github.com/dtroode/filesmanager-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
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

	userRepo := postgres.NewUserRepository(deps.DB)
	nodeRepo := postgres.NewNodeRepository(deps.DB)
	sessionCache := cache.NewCache(deps.Redis)
	jobQueue := queue.NewQueue(deps.Redis, cfg.Queue.Name, cfg.Queue.MaxAttempts, cfg.Queue.PollTimeout)

	sessionService := service.NewSession(userRepo, sessionCache, cfg.Session.TTL, logger)
	userService := service.NewUser(userRepo, logger)
	catalogService := service.NewCatalog(nodeRepo, deps.Blobs, jobQueue, cfg.Catalog.RequireParentOwnership, logger)
	accessService := service.NewAccess(nodeRepo, deps.Blobs, sessionService, logger)
	statusService := service.NewStatus(sessionCache, deps.DB, userRepo, nodeRepo, logger)

	httpRouter := httprouter.New(httprouter.Services{
		User:    userService,
		Session: sessionService,
		Catalog: catalogService,
		Access:  accessService,
		Status:  statusService,
	}, httpctx.NewManager(), logger)
	restServer := httpserver.NewHTTPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.Port))

	health := grpchandler.NewHealth(map[string]model.Pinger{
		"redis": sessionCache,
		"db":    deps.DB,
	}, cfg.GRPC.HealthInterval, logger)
	opsServer := grpcserver.NewGRPCServer(grpcrouter.New(health, logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{restServer, server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)},
		{opsServer, server.NewPlainListener()},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		health.Run(ctx)
	}()

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	health.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
