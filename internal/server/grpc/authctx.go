package grpcserver

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/and161185/authkeeper/internal/errs"
)

type ctxKey string

const userIDKey ctxKey = "ak.userID"

// WithUserID stores authenticated user ID in context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx fetches user ID from context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Authenticator resolves a bearer token to the user owning an active session for it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// SessionUnary requires "authorization: Bearer <token>" on the listed methods and
// puts the resolved user ID into the handler context.
func SessionUnary(auth Authenticator, fullMethods ...string) grpc.UnaryServerInterceptor {
	guarded := make(map[string]struct{}, len(fullMethods))
	for _, m := range fullMethods {
		guarded[m] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if _, ok := guarded[info.FullMethod]; !ok {
			return next(ctx, req)
		}
		tok, err := bearerTokenFromMD(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "no auth")
		}
		uid, err := auth.Authenticate(ctx, tok)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				return nil, status.Error(codes.Unauthenticated, "no auth")
			}
			return nil, statusFromErr("authenticate", err)
		}
		return next(WithUserID(ctx, uid), req)
	}
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
