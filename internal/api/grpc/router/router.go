package router

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/filesmanager-server/internal/api/grpc/handler"
	"github.com/dtroode/filesmanager-server/internal/api/grpc/middleware"
	"github.com/dtroode/filesmanager-server/internal/logger"
)

// Router builds the operational gRPC server.
type Router struct {
	health *handler.Health
	logger *logger.Logger
}

func New(health *handler.Health, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

// Register returns a gRPC server with logging and panic recovery interceptors,
// the health service and server reflection.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(r.recoverPanic)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health.Server())
	reflection.Register(s)

	return s
}

func (r *Router) recoverPanic(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}
