package grpcserver

import (
	"context"
	"crypto/subtle"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
)

// LoggingUnary returns a unary server interceptor for structured logging.
// Server-side failures are logged at error level, everything else at info.
func LoggingUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		var remote string
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			remote = p.Addr.String()
		}

		lvl := zapcore.InfoLevel
		switch code {
		case codes.Internal, codes.DataLoss, codes.Unknown:
			lvl = zapcore.ErrorLevel
		}
		// metadata only, never payloads: they carry passwords and tokens
		log.Check(lvl, "grpc").Write(
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", remote),
		)
		return resp, err
	}
}

// RecoverUnary returns a unary server interceptor that recovers from panics.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", info.FullMethod),
				)
				err = status.Error(codes.Internal, "internal")
			}
		}()
		return next(ctx, req)
	}
}

// BackendKeyHeader carries the shared key every AuthorizationBackend call must present.
const BackendKeyHeader = "x-backend-key"

// BackendKeyUnary guards AuthorizationBackend methods with the shared x-backend-key.
// Calls to other services pass through untouched.
func BackendKeyUnary(key string) grpc.UnaryServerInterceptor {
	prefix := "/" + pb.AuthorizationBackend_ServiceDesc.ServiceName + "/"
	want := []byte(key)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return next(ctx, req)
		}
		if len(want) == 0 {
			return nil, status.Error(codes.Unavailable, "backend disabled")
		}
		var got string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(BackendKeyHeader); len(v) > 0 {
				got = v[0]
			}
		}
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return nil, status.Error(codes.Unauthenticated, "bad backend key")
		}
		return next(ctx, req)
	}
}

// Chain returns the interceptor chain the authkeeper server runs with.
func Chain(log *zap.Logger, auth Authenticator, backendKey string) grpc.ServerOption {
	return grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		BackendKeyUnary(backendKey),
		SessionUnary(auth, pb.AuthKeeper_GetUser_FullMethodName),
	)
}
