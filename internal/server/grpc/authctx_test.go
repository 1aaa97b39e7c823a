package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
	"github.com/and161185/authkeeper/internal/errs"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	if id, ok := UserIDFromCtx(context.Background()); ok || id != uuid.Nil {
		t.Fatalf("expected no user id in empty ctx")
	}

	want := uuid.Must(uuid.NewV4())
	ctx := WithUserID(context.Background(), want)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatalf("expected user id in ctx")
	}
	if got != want {
		t.Fatalf("mismatch: got %s, want %s", got, want)
	}

	bad := context.WithValue(context.Background(), userIDKey, "not-uuid")
	if id, ok := UserIDFromCtx(bad); ok || id != uuid.Nil {
		t.Fatalf("expected miss on wrong typed value")
	}
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

type authFunc func(ctx context.Context, token string) (uuid.UUID, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (uuid.UUID, error) { return f(ctx, token) }

func TestSessionUnary(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	auth := authFunc(func(_ context.Context, tok string) (uuid.UUID, error) {
		switch tok {
		case "good":
			return uid, nil
		case "ended":
			return uuid.Nil, errs.ErrUnauthorized
		default:
			return uuid.Nil, context.DeadlineExceeded
		}
	})
	ic := SessionUnary(auth, pb.AuthKeeper_GetUser_FullMethodName)
	guarded := &grpc.UnaryServerInfo{FullMethod: pb.AuthKeeper_GetUser_FullMethodName}
	echo := func(ctx context.Context, _ any) (any, error) {
		id, _ := UserIDFromCtx(ctx)
		return id, nil
	}
	bearer := func(tok string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+tok))
	}

	resp, err := ic(bearer("good"), "req", guarded, echo)
	if err != nil || resp.(uuid.UUID) != uid {
		t.Fatalf("good token: resp=%v err=%v", resp, err)
	}
	if _, err := ic(bearer("ended"), "req", guarded, echo); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("ended session: %v", err)
	}
	if _, err := ic(bearer("slow"), "req", guarded, echo); status.Code(err) != codes.DeadlineExceeded {
		t.Fatalf("deadline: %v", err)
	}
	if _, err := ic(context.Background(), "req", guarded, echo); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("no metadata: %v", err)
	}

	open := &grpc.UnaryServerInfo{FullMethod: pb.AuthKeeper_Login_FullMethodName}
	resp, err = ic(context.Background(), "req", open, echo)
	if err != nil || resp.(uuid.UUID) != uuid.Nil {
		t.Fatalf("unguarded method: resp=%v err=%v", resp, err)
	}
}
