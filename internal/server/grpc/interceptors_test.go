package grpcserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()

	ctx = peer.NewContext(ctx, &peer.Peer{Addr: fakeAddr{}})

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/authkeeper.v1.AuthKeeper/Method"}

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := resp.(string); s != "ok" {
		t.Fatalf("resp mismatch: %v", resp)
	}

	wantErr := errors.New("boom")
	hErr := func(ctx context.Context, req any) (any, error) { return nil, wantErr }
	_, err = ic(ctx, "req", info, hErr)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want original error, got: %v", err)
	}
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/authkeeper.v1.AuthKeeper/Panic"}

	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(ctx, "req", info, panicH)
	if err == nil {
		t.Fatalf("expected error from panic")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("want codes.Internal, got: %v", err)
	}
}

func TestRecoverUnary_NoPanicPassThrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/authkeeper.v1.AuthKeeper/Ok"}

	h := func(ctx context.Context, req any) (any, error) { return 42, nil }

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.(int) != 42 {
		t.Fatalf("resp mismatch: %v", resp)
	}
}

func TestLoggingUnary_DurationFieldDoesNotBlock(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/authkeeper.v1.AuthKeeper/Sleep"}
	h := func(ctx context.Context, req any) (any, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	}

	start := time.Now()
	resp, err := ic(ctx, "req", info, h)
	if err != nil || resp.(string) != "done" {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("duration should reflect handler time")
	}
}

func TestLoggingUnary_InternalErrorStillReturned(t *testing.T) {
	t.Parallel()

	ic := LoggingUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/authkeeper.v1.AuthKeeper/Login"}
	want := status.Error(codes.Internal, "db down")
	_, err := ic(context.Background(), "req", info, func(context.Context, any) (any, error) { return nil, want })
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
}

func TestBackendKeyUnary(t *testing.T) {
	t.Parallel()

	const key = "backend-key-0123456789"
	ok := func(context.Context, any) (any, error) { return "ok", nil }
	backend := &grpc.UnaryServerInfo{FullMethod: pb.AuthorizationBackend_FindClientById_FullMethodName}
	withKey := func(k string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs(BackendKeyHeader, k))
	}

	ic := BackendKeyUnary(key)
	if resp, err := ic(withKey(key), "req", backend, ok); err != nil || resp != "ok" {
		t.Fatalf("good key: resp=%v err=%v", resp, err)
	}
	if _, err := ic(withKey("wrong"), "req", backend, ok); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("wrong key: %v", err)
	}
	if _, err := ic(context.Background(), "req", backend, ok); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("no key: %v", err)
	}

	other := &grpc.UnaryServerInfo{FullMethod: pb.AuthKeeper_Login_FullMethodName}
	if _, err := ic(context.Background(), "req", other, ok); err != nil {
		t.Fatalf("non-backend call must pass: %v", err)
	}

	if _, err := BackendKeyUnary("")(withKey(""), "req", backend, ok); status.Code(err) != codes.Unavailable {
		t.Fatalf("disabled backend: %v", err)
	}
}
