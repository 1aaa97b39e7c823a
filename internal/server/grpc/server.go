// Package grpcserver exposes the authkeeper.v1 gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
	"github.com/and161185/authkeeper/internal/convert"
	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/service"
)

// TokenHeader carries the session token in Login response headers.
const TokenHeader = "auth-token"

// Server wires the auth service into AuthKeeper handlers.
type Server struct {
	pb.UnimplementedAuthKeeperServer
	auth service.AuthService
}

var _ pb.AuthKeeperServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(auth service.AuthService) *Server {
	return &Server{auth: auth}
}

// SignUp creates a new user account.
func (s *Server) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty email/password")
	}
	u, err := s.auth.SignUp(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		return nil, statusFromErr("signup", err)
	}
	return &pb.SignUpResponse{User: convert.ToProtoUserProfile(u)}, nil
}

func remoteIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

// Login authenticates a user. The token goes out in the auth-token response header only.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "bad credentials")
		}
		if errors.Is(err, errs.ErrRateLimited) {
			return nil, status.Error(codes.ResourceExhausted, "rate limited")
		}
		return nil, statusFromErr("login", err)
	}
	if err := grpc.SetHeader(ctx, metadata.Pairs(TokenHeader, res.Token)); err != nil {
		return nil, status.Errorf(codes.Internal, "login: set header: %v", err)
	}
	return &pb.LoginResponse{
		User:      convert.ToProtoUserProfile(res.User),
		ExpiresAt: timestamppb.New(res.ExpiresAt),
	}, nil
}

// Logout ends the session identified by token and user id.
func (s *Server) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	uid, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.auth.Logout(ctx, req.GetToken(), uid); err != nil {
		return nil, statusFromErr("logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

// Validate reports whether the session identified by token and user id is active.
func (s *Server) Validate(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	uid, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	st, err := s.auth.Validate(ctx, req.GetToken(), uid)
	if err != nil {
		return nil, statusFromErr("validate", err)
	}
	return &pb.ValidateResponse{Status: string(st)}, nil
}

// GetUser returns the caller's profile. It runs behind SessionUnary.
func (s *Server) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	uid, ok := UserIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	if req.GetUserId() != "" {
		want, err := parseUserID(req.GetUserId())
		if err != nil {
			return nil, err
		}
		if want != uid {
			return nil, status.Error(codes.PermissionDenied, "profile of another user")
		}
	}
	u, err := s.auth.GetUser(ctx, uid)
	if err != nil {
		return nil, statusFromErr("get user", err)
	}
	return &pb.GetUserResponse{User: convert.ToProtoUserProfile(u)}, nil
}

func parseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "bad user id")
	}
	return id, nil
}

// statusFromErr maps the errs taxonomy onto gRPC codes.
func statusFromErr(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrCorruptSettings):
		return status.Errorf(codes.DataLoss, "%s: stored settings unreadable", op)
	case errors.Is(err, errs.ErrDataIntegrity):
		return status.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s: conflict", op)
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
