package grpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
	"github.com/and161185/authkeeper/internal/convert"
	"github.com/and161185/authkeeper/internal/model"
)

// ClientStore is the registered-client store the backend serves.
type ClientStore interface {
	Save(ctx context.Context, c *model.RegisteredClient) error
	FindByID(ctx context.Context, id string) (*model.RegisteredClient, error)
	FindByClientID(ctx context.Context, clientID string) (*model.RegisteredClient, error)
}

// ConsentStore is the consent store the backend serves.
type ConsentStore interface {
	Save(ctx context.Context, c *model.Consent) error
	Remove(ctx context.Context, c *model.Consent) error
	FindByID(ctx context.Context, registeredClientID, principalName string) (*model.Consent, error)
}

// AuthorizationStore is the authorization-record store the backend serves.
type AuthorizationStore interface {
	Save(ctx context.Context, a *model.Authorization) error
	Remove(ctx context.Context, a *model.Authorization) error
	FindByID(ctx context.Context, id string) (*model.Authorization, error)
	FindByToken(ctx context.Context, value string, tokenType model.TokenType) (*model.Authorization, error)
}

// PrincipalLoader resolves a login email to the full user record, password hash included.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, email string) (*model.User, error)
}

// Backend exposes the three stores and the user lookup to an out-of-process authorization engine.
type Backend struct {
	pb.UnimplementedAuthorizationBackendServer
	clients        ClientStore
	consents       ConsentStore
	authorizations AuthorizationStore
	principals     PrincipalLoader
}

var _ pb.AuthorizationBackendServer = (*Backend)(nil)

// NewBackend constructs the AuthorizationBackend handlers.
func NewBackend(clients ClientStore, consents ConsentStore, authorizations AuthorizationStore, principals PrincipalLoader) *Backend {
	return &Backend{clients: clients, consents: consents, authorizations: authorizations, principals: principals}
}

func (b *Backend) SaveClient(ctx context.Context, req *pb.SaveClientRequest) (*emptypb.Empty, error) {
	c, err := convert.FromProtoClient(req.GetClient())
	if err != nil {
		return nil, statusFromErr("save client", err)
	}
	if err := b.clients.Save(ctx, c); err != nil {
		return nil, statusFromErr("save client", err)
	}
	return &emptypb.Empty{}, nil
}

func (b *Backend) clientResponse(c *model.RegisteredClient) (*pb.ClientResponse, error) {
	out, err := convert.ToProtoClient(c)
	if err != nil {
		return nil, statusFromErr("encode client", err)
	}
	return &pb.ClientResponse{Client: out}, nil
}

func (b *Backend) FindClientById(ctx context.Context, req *pb.FindClientByIdRequest) (*pb.ClientResponse, error) {
	c, err := b.clients.FindByID(ctx, req.GetId())
	if err != nil {
		return nil, statusFromErr("find client", err)
	}
	return b.clientResponse(c)
}

func (b *Backend) FindClientByClientId(ctx context.Context, req *pb.FindClientByClientIdRequest) (*pb.ClientResponse, error) {
	c, err := b.clients.FindByClientID(ctx, req.GetClientId())
	if err != nil {
		return nil, statusFromErr("find client", err)
	}
	return b.clientResponse(c)
}

func (b *Backend) SaveConsent(ctx context.Context, req *pb.SaveConsentRequest) (*emptypb.Empty, error) {
	c, err := convert.FromProtoConsent(req.GetConsent())
	if err != nil {
		return nil, statusFromErr("save consent", err)
	}
	if err := b.consents.Save(ctx, c); err != nil {
		return nil, statusFromErr("save consent", err)
	}
	return &emptypb.Empty{}, nil
}

func (b *Backend) RemoveConsent(ctx context.Context, req *pb.RemoveConsentRequest) (*emptypb.Empty, error) {
	c, err := convert.FromProtoConsent(req.GetConsent())
	if err != nil {
		return nil, statusFromErr("remove consent", err)
	}
	if err := b.consents.Remove(ctx, c); err != nil {
		return nil, statusFromErr("remove consent", err)
	}
	return &emptypb.Empty{}, nil
}

func (b *Backend) FindConsent(ctx context.Context, req *pb.FindConsentRequest) (*pb.ConsentResponse, error) {
	c, err := b.consents.FindByID(ctx, req.GetRegisteredClientId(), req.GetPrincipalName())
	if err != nil {
		return nil, statusFromErr("find consent", err)
	}
	return &pb.ConsentResponse{Consent: convert.ToProtoConsent(c)}, nil
}

func (b *Backend) SaveAuthorization(ctx context.Context, req *pb.SaveAuthorizationRequest) (*emptypb.Empty, error) {
	a, err := convert.FromProtoAuthorization(req.GetAuthorization())
	if err != nil {
		return nil, statusFromErr("save authorization", err)
	}
	if err := b.authorizations.Save(ctx, a); err != nil {
		return nil, statusFromErr("save authorization", err)
	}
	return &emptypb.Empty{}, nil
}

func (b *Backend) RemoveAuthorization(ctx context.Context, req *pb.RemoveAuthorizationRequest) (*emptypb.Empty, error) {
	a, err := convert.FromProtoAuthorization(req.GetAuthorization())
	if err != nil {
		return nil, statusFromErr("remove authorization", err)
	}
	if err := b.authorizations.Remove(ctx, a); err != nil {
		return nil, statusFromErr("remove authorization", err)
	}
	return &emptypb.Empty{}, nil
}

func (b *Backend) authorizationResponse(a *model.Authorization) (*pb.AuthorizationResponse, error) {
	out, err := convert.ToProtoAuthorization(a)
	if err != nil {
		return nil, statusFromErr("encode authorization", err)
	}
	return &pb.AuthorizationResponse{Authorization: out}, nil
}

func (b *Backend) FindAuthorizationById(ctx context.Context, req *pb.FindAuthorizationByIdRequest) (*pb.AuthorizationResponse, error) {
	a, err := b.authorizations.FindByID(ctx, req.GetId())
	if err != nil {
		return nil, statusFromErr("find authorization", err)
	}
	return b.authorizationResponse(a)
}

func (b *Backend) FindAuthorizationByToken(ctx context.Context, req *pb.FindAuthorizationByTokenRequest) (*pb.AuthorizationResponse, error) {
	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty token")
	}
	a, err := b.authorizations.FindByToken(ctx, req.GetToken(), model.TokenType(req.GetTokenType()))
	if err != nil {
		return nil, statusFromErr("find authorization", err)
	}
	return b.authorizationResponse(a)
}

// LoadPrincipal returns the profile and password hash the engine verifies a login against.
func (b *Backend) LoadPrincipal(ctx context.Context, req *pb.LoadPrincipalRequest) (*pb.LoadPrincipalResponse, error) {
	u, err := b.principals.LoadPrincipal(ctx, req.GetEmail())
	if err != nil {
		return nil, statusFromErr("load principal", err)
	}
	return &pb.LoadPrincipalResponse{
		User:         convert.ToProtoUserProfile(u.Profile()),
		PasswordHash: u.PwdHash,
	}, nil
}
