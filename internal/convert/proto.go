// Package convert maps domain entities to and from the authkeeper.v1 protobuf messages.
// Settings-like documents travel as the JSON object text produced by the settings codec.
package convert

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/settings"
)

// --- helpers ---

func ts(t *time.Time) *timestamppb.Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return timestamppb.New(*t)
}

func fromTS(p *timestamppb.Timestamp) *time.Time {
	if p == nil {
		return nil
	}
	t := p.AsTime()
	return &t
}

func encodeDoc(field string, s settings.Settings) (string, error) {
	text, err := settings.Encode(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return text, nil
}

// decodeDoc parses caller-supplied text; bad input is the caller's fault, not stored corruption.
func decodeDoc(field, text string) (settings.Settings, error) {
	s, err := settings.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInvalidArgument, field, err)
	}
	return s, nil
}

func strs[T ~string](in []T) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func typed[T ~string](in []string) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

// --- users ---

// ToProtoUserProfile converts the public user projection.
func ToProtoUserProfile(p model.UserProfile) *pb.UserProfile {
	return &pb.UserProfile{
		Id:    p.ID.String(),
		Email: p.Email,
		Roles: append([]string(nil), p.Roles...),
	}
}

// --- registered clients ---

// ToProtoClient converts a registered client. A nil client maps to nil.
func ToProtoClient(c *model.RegisteredClient) (*pb.RegisteredClient, error) {
	if c == nil {
		return nil, nil
	}
	cs, err := encodeDoc("client_settings", c.ClientSettings)
	if err != nil {
		return nil, err
	}
	tks, err := encodeDoc("token_settings", c.TokenSettings)
	if err != nil {
		return nil, err
	}
	return &pb.RegisteredClient{
		Id:                          c.ID,
		ClientId:                    c.ClientID,
		ClientIdIssuedAt:            ts(c.ClientIDIssuedAt),
		ClientSecret:                c.ClientSecret,
		ClientSecretExpiresAt:       ts(c.ClientSecretExpiresAt),
		ClientName:                  c.Name,
		ClientAuthenticationMethods: strs(c.AuthenticationMethods),
		AuthorizationGrantTypes:     strs(c.GrantTypes),
		RedirectUris:                c.RedirectURIs,
		PostLogoutRedirectUris:      c.PostLogoutRedirectURIs,
		Scopes:                      c.Scopes,
		ClientSettings:              cs,
		TokenSettings:               tks,
	}, nil
}

// FromProtoClient converts a registered client received from a caller.
func FromProtoClient(in *pb.RegisteredClient) (*model.RegisteredClient, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil client", errs.ErrInvalidArgument)
	}
	cs, err := decodeDoc("client_settings", in.GetClientSettings())
	if err != nil {
		return nil, err
	}
	tks, err := decodeDoc("token_settings", in.GetTokenSettings())
	if err != nil {
		return nil, err
	}
	return &model.RegisteredClient{
		ID:                     in.GetId(),
		ClientID:               in.GetClientId(),
		ClientIDIssuedAt:       fromTS(in.GetClientIdIssuedAt()),
		ClientSecret:           in.GetClientSecret(),
		ClientSecretExpiresAt:  fromTS(in.GetClientSecretExpiresAt()),
		Name:                   in.GetClientName(),
		AuthenticationMethods:  typed[model.ClientAuthenticationMethod](in.GetClientAuthenticationMethods()),
		GrantTypes:             typed[model.AuthorizationGrantType](in.GetAuthorizationGrantTypes()),
		RedirectURIs:           in.GetRedirectUris(),
		PostLogoutRedirectURIs: in.GetPostLogoutRedirectUris(),
		Scopes:                 in.GetScopes(),
		ClientSettings:         cs,
		TokenSettings:          tks,
	}, nil
}

// --- consents ---

// ToProtoConsent converts a consent. A nil consent maps to nil.
func ToProtoConsent(c *model.Consent) *pb.Consent {
	if c == nil {
		return nil
	}
	return &pb.Consent{
		RegisteredClientId: c.RegisteredClientID,
		PrincipalName:      c.PrincipalName,
		Authorities:        c.Authorities,
	}
}

// FromProtoConsent converts a consent received from a caller.
func FromProtoConsent(in *pb.Consent) (*model.Consent, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil consent", errs.ErrInvalidArgument)
	}
	return &model.Consent{
		ConsentKey: model.ConsentKey{
			RegisteredClientID: in.GetRegisteredClientId(),
			PrincipalName:      in.GetPrincipalName(),
		},
		Authorities: in.GetAuthorities(),
	}, nil
}

// --- authorizations ---

func toProtoToken(field string, t *model.Token) (*pb.Token, error) {
	if t == nil {
		return nil, nil
	}
	md, err := encodeDoc(field+".metadata", t.Metadata)
	if err != nil {
		return nil, err
	}
	return &pb.Token{
		Value:     t.Value,
		IssuedAt:  ts(t.IssuedAt),
		ExpiresAt: ts(t.ExpiresAt),
		Metadata:  md,
	}, nil
}

func fromProtoToken(field string, in *pb.Token) (*model.Token, error) {
	if in == nil {
		return nil, nil
	}
	md, err := decodeDoc(field+".metadata", in.GetMetadata())
	if err != nil {
		return nil, err
	}
	return &model.Token{
		Value:     in.GetValue(),
		IssuedAt:  fromTS(in.GetIssuedAt()),
		ExpiresAt: fromTS(in.GetExpiresAt()),
		Metadata:  md,
	}, nil
}

// ToProtoAuthorization converts an authorization with all of its token slots. A nil
// authorization maps to nil.
func ToProtoAuthorization(a *model.Authorization) (*pb.Authorization, error) {
	if a == nil {
		return nil, nil
	}
	attrs, err := encodeDoc("attributes", a.Attributes)
	if err != nil {
		return nil, err
	}
	out := &pb.Authorization{
		Id:                     a.ID,
		RegisteredClientId:     a.RegisteredClientID,
		PrincipalName:          a.PrincipalName,
		AuthorizationGrantType: string(a.GrantType),
		AuthorizedScopes:       a.AuthorizedScopes,
		Attributes:             attrs,
		State:                  a.State,
	}
	if out.AuthorizationCode, err = toProtoToken("authorization_code", a.AuthorizationCode); err != nil {
		return nil, err
	}
	if a.AccessToken != nil {
		if out.AccessToken, err = toProtoToken("access_token", &a.AccessToken.Token); err != nil {
			return nil, err
		}
		out.AccessTokenType = a.AccessToken.TokenType
		out.AccessTokenScopes = a.AccessToken.Scopes
	}
	if out.RefreshToken, err = toProtoToken("refresh_token", a.RefreshToken); err != nil {
		return nil, err
	}
	if a.IDToken != nil {
		if out.OidcIdToken, err = toProtoToken("oidc_id_token", &a.IDToken.Token); err != nil {
			return nil, err
		}
		if out.OidcIdTokenClaims, err = encodeDoc("oidc_id_token_claims", a.IDToken.Claims); err != nil {
			return nil, err
		}
	}
	if out.UserCode, err = toProtoToken("user_code", a.UserCode); err != nil {
		return nil, err
	}
	if out.DeviceCode, err = toProtoToken("device_code", a.DeviceCode); err != nil {
		return nil, err
	}
	return out, nil
}

// FromProtoAuthorization converts an authorization received from a caller. Unset token
// messages become empty slots.
func FromProtoAuthorization(in *pb.Authorization) (*model.Authorization, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil authorization", errs.ErrInvalidArgument)
	}
	attrs, err := decodeDoc("attributes", in.GetAttributes())
	if err != nil {
		return nil, err
	}
	out := &model.Authorization{
		ID:                 in.GetId(),
		RegisteredClientID: in.GetRegisteredClientId(),
		PrincipalName:      in.GetPrincipalName(),
		GrantType:          model.ResolveGrantType(in.GetAuthorizationGrantType()),
		AuthorizedScopes:   in.GetAuthorizedScopes(),
		Attributes:         attrs,
		State:              in.GetState(),
	}
	if out.AuthorizationCode, err = fromProtoToken("authorization_code", in.GetAuthorizationCode()); err != nil {
		return nil, err
	}
	at, err := fromProtoToken("access_token", in.GetAccessToken())
	if err != nil {
		return nil, err
	}
	if at != nil {
		out.AccessToken = &model.AccessToken{
			Token:     *at,
			TokenType: in.GetAccessTokenType(),
			Scopes:    in.GetAccessTokenScopes(),
		}
	}
	if out.RefreshToken, err = fromProtoToken("refresh_token", in.GetRefreshToken()); err != nil {
		return nil, err
	}
	idt, err := fromProtoToken("oidc_id_token", in.GetOidcIdToken())
	if err != nil {
		return nil, err
	}
	if idt != nil {
		claims, err := decodeDoc("oidc_id_token_claims", in.GetOidcIdTokenClaims())
		if err != nil {
			return nil, err
		}
		out.IDToken = &model.IDToken{Token: *idt, Claims: claims}
	}
	if out.UserCode, err = fromProtoToken("user_code", in.GetUserCode()); err != nil {
		return nil, err
	}
	if out.DeviceCode, err = fromProtoToken("device_code", in.GetDeviceCode()); err != nil {
		return nil, err
	}
	return out, nil
}
