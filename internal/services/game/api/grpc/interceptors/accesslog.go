// Package interceptors holds cross-cutting gRPC middleware for the game
// service.
package interceptors

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	gamev1 "github.com/fridge-dev/frj-game-ngn-sub000/api/gen/go/game/v1"
	grpcmeta "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/api/grpc/metadata"
)

// AccessLogUnaryInterceptor logs one line per unary call.
func AccessLogUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	logger = named(logger)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(ctx, logger, info.FullMethod, req, start, err)
		return resp, err
	}
}

// AccessLogStreamInterceptor logs one line when a stream ends.
func AccessLogStreamInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	logger = named(logger)
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, stream)
		logCall(stream.Context(), logger, info.FullMethod, nil, start, err)
		return err
	}
}

func named(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named("grpc")
}

func logCall(ctx context.Context, logger *zap.Logger, fullMethod string, req any, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("method", fullMethod),
		zap.String("method_kind", classifyMethodKind(fullMethod)),
		zap.String("code", status.Code(err).String()),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", grpcmeta.RequestIDFromContext(ctx)),
	}
	sessionID, playerID := extractScope(req)
	if sessionID != "" {
		fields = append(fields, zap.String("session_id", sessionID))
	}
	if playerID != "" {
		fields = append(fields, zap.String("player_id", playerID))
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}

	if err != nil && isServerFault(err) {
		logger.Warn("grpc call failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Info("grpc call", fields...)
}

type sessionIDGetter interface {
	GetSessionID() string
}

type playerIDGetter interface {
	GetPlayerID() string
}

func extractScope(req any) (string, string) {
	var sessionID, playerID string
	if getter, ok := req.(sessionIDGetter); ok {
		sessionID = strings.TrimSpace(getter.GetSessionID())
	}
	if getter, ok := req.(playerIDGetter); ok {
		playerID = strings.TrimSpace(getter.GetPlayerID())
	}
	return sessionID, playerID
}

func classifyMethodKind(fullMethod string) string {
	switch fullMethod {
	case gamev1.GameService_HostGame_FullMethodName,
		gamev1.GameService_JoinGame_FullMethodName,
		gamev1.GameService_StartGame_FullMethodName:
		return "lobby"
	case gamev1.GameService_OpenGameDataStream_FullMethodName:
		return "game"
	default:
		return "other"
	}
}

func isServerFault(err error) bool {
	switch status.Code(err) {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return true
	default:
		return false
	}
}
