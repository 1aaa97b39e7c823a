package model

import (
	"time"

	"github.com/and161185/authkeeper/internal/settings"
)

// AuthorizationGrantType is an open enumeration: well-known values are predeclared, any other
// non-empty string is carried as a custom grant type.
type AuthorizationGrantType string

const (
	GrantAuthorizationCode AuthorizationGrantType = "authorization_code"
	GrantClientCredentials AuthorizationGrantType = "client_credentials"
	GrantRefreshToken      AuthorizationGrantType = "refresh_token"
	GrantDeviceCode        AuthorizationGrantType = "urn:ietf:params:oauth:grant-type:device_code"
	GrantJWTBearer         AuthorizationGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

var knownGrantTypes = map[AuthorizationGrantType]struct{}{
	GrantAuthorizationCode: {},
	GrantClientCredentials: {},
	GrantRefreshToken:      {},
	GrantDeviceCode:        {},
	GrantJWTBearer:         {},
}

// ResolveGrantType maps stored text to a grant type. It never fails.
func ResolveGrantType(s string) AuthorizationGrantType {
	return AuthorizationGrantType(s)
}

// IsCustom reports whether g is not one of the predeclared grant types.
func (g AuthorizationGrantType) IsCustom() bool {
	_, ok := knownGrantTypes[g]
	return !ok
}

// ClientAuthenticationMethod is an open enumeration like AuthorizationGrantType.
type ClientAuthenticationMethod string

const (
	AuthMethodClientSecretBasic ClientAuthenticationMethod = "client_secret_basic"
	AuthMethodClientSecretPost  ClientAuthenticationMethod = "client_secret_post"
	AuthMethodClientSecretJWT   ClientAuthenticationMethod = "client_secret_jwt"
	AuthMethodPrivateKeyJWT     ClientAuthenticationMethod = "private_key_jwt"
	AuthMethodNone              ClientAuthenticationMethod = "none"
)

var knownAuthMethods = map[ClientAuthenticationMethod]struct{}{
	AuthMethodClientSecretBasic: {},
	AuthMethodClientSecretPost:  {},
	AuthMethodClientSecretJWT:   {},
	AuthMethodPrivateKeyJWT:     {},
	AuthMethodNone:              {},
}

// ResolveAuthenticationMethod maps stored text to an authentication method. It never fails.
func ResolveAuthenticationMethod(s string) ClientAuthenticationMethod {
	return ClientAuthenticationMethod(s)
}

// IsCustom reports whether m is not one of the predeclared methods.
func (m ClientAuthenticationMethod) IsCustom() bool {
	_, ok := knownAuthMethods[m]
	return !ok
}

// RegisteredClient is an application registered with the authorization server.
// Collections have set semantics; order is not preserved across a save/load cycle.
type RegisteredClient struct {
	ID                     string                       `json:"id"`
	ClientID               string                       `json:"clientId"`
	ClientIDIssuedAt       *time.Time                   `json:"clientIdIssuedAt,omitempty"`
	ClientSecret           string                       `json:"clientSecret,omitempty"` // pre-hashed, "" means none
	ClientSecretExpiresAt  *time.Time                   `json:"clientSecretExpiresAt,omitempty"`
	Name                   string                       `json:"clientName"`
	AuthenticationMethods  []ClientAuthenticationMethod `json:"clientAuthenticationMethods"`
	GrantTypes             []AuthorizationGrantType     `json:"authorizationGrantTypes"`
	RedirectURIs           []string                     `json:"redirectUris"`
	PostLogoutRedirectURIs []string                     `json:"postLogoutRedirectUris"`
	Scopes                 []string                     `json:"scopes"`
	ClientSettings         settings.Settings            `json:"clientSettings"`
	TokenSettings          settings.Settings            `json:"tokenSettings"`
}
