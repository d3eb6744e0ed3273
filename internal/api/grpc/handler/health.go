package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// OverallService is the empty service name that reports health of the whole server.
const OverallService = ""

// Health publishes backing-connection liveness through the standard gRPC health service.
type Health struct {
	server     *health.Server
	components map[string]model.Pinger
	interval   time.Duration
	logger     *logger.Logger
}

// NewHealth reports every component and the overall service as NOT_SERVING until the first check.
func NewHealth(components map[string]model.Pinger, interval time.Duration, logger *logger.Logger) *Health {
	h := &Health{
		server:     health.NewServer(),
		components: components,
		interval:   interval,
		logger:     logger,
	}

	h.server.SetServingStatus(OverallService, healthpb.HealthCheckResponse_NOT_SERVING)
	for name := range components {
		h.server.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	return h
}

// Server returns the health service implementation to register on a gRPC server.
func (h *Health) Server() healthpb.HealthServer {
	return h.server
}

// Check pings every component once and updates serving statuses.
// The overall service is SERVING only when all components answer.
func (h *Health) Check(ctx context.Context) bool {
	healthy := true

	for name, pinger := range h.components {
		status := healthpb.HealthCheckResponse_SERVING
		if err := pinger.Ping(ctx); err != nil {
			h.logger.Warn("Health service: component is unavailable", "component", name, "error", err.Error())
			status = healthpb.HealthCheckResponse_NOT_SERVING
			healthy = false
		}
		h.server.SetServingStatus(name, status)
	}

	if healthy {
		h.server.SetServingStatus(OverallService, healthpb.HealthCheckResponse_SERVING)
	} else {
		h.server.SetServingStatus(OverallService, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	return healthy
}

// Run checks immediately and then every interval until ctx is canceled.
func (h *Health) Run(ctx context.Context) {
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}
