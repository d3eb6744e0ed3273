package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/filesmanager-server/internal/logger"
)

// Logging holds unary and stream interceptors that log gRPC calls.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	l.log(info.FullMethod, start, err)

	return resp, err
}

// HandleGRPCStream logs method name, duration and status when a stream ends.
func (l *Logging) HandleGRPCStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	l.log(info.FullMethod, start, err)

	return err
}

func (l *Logging) log(method string, start time.Time, err error) {
	code := codeOf(err)
	attrs := []any{
		"method", method,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String(),
	}

	if err != nil && code != codes.Canceled {
		l.logger.Error("gRPC request failed", append(attrs, "error", err.Error())...)
		return
	}
	l.logger.Debug("gRPC request completed", attrs...)
}

func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Internal
}
