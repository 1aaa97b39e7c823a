package model

import (
	"time"

	"github.com/and161185/authkeeper/internal/settings"
)

// DefaultAuthority is reported for a consent whose stored authority set is empty.
const DefaultAuthority = "ROLE_USER"

// TokenType names the slot a token lookup is restricted to. The empty value means "any slot".
type TokenType string

const (
	TokenTypeAny          TokenType = ""
	TokenTypeState        TokenType = "state"
	TokenTypeCode         TokenType = "code"
	TokenTypeAccessToken  TokenType = "access_token"
	TokenTypeRefreshToken TokenType = "refresh_token"
	TokenTypeIDToken      TokenType = "id_token"
	TokenTypeUserCode     TokenType = "user_code"
	TokenTypeDeviceCode   TokenType = "device_code"
)

// Token is the content of one token slot of an authorization.
type Token struct {
	Value     string            `json:"value"`
	IssuedAt  *time.Time        `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
	Metadata  settings.Settings `json:"metadata,omitempty"`
}

// AccessToken is the access-token slot: a token plus its type and granted scopes.
type AccessToken struct {
	Token
	TokenType string   `json:"tokenType,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
}

// IDToken is the OIDC ID-token slot: a token plus its claims.
type IDToken struct {
	Token
	Claims settings.Settings `json:"claims,omitempty"`
}

// Authorization is the persisted state of one authorization flow. A nil slot is empty.
type Authorization struct {
	ID                 string                 `json:"id"`
	RegisteredClientID string                 `json:"registeredClientId"`
	PrincipalName      string                 `json:"principalName"`
	GrantType          AuthorizationGrantType `json:"authorizationGrantType"`
	AuthorizedScopes   []string               `json:"authorizedScopes"`
	Attributes         settings.Settings      `json:"attributes"`
	State              string                 `json:"state,omitempty"`

	AuthorizationCode *Token       `json:"authorizationCode,omitempty"`
	AccessToken       *AccessToken `json:"accessToken,omitempty"`
	RefreshToken      *Token       `json:"refreshToken,omitempty"`
	IDToken           *IDToken     `json:"oidcIdToken,omitempty"`
	UserCode          *Token       `json:"userCode,omitempty"`
	DeviceCode        *Token       `json:"deviceCode,omitempty"`
}

// ConsentKey identifies a consent. It is comparable and can be used as a map key.
type ConsentKey struct {
	RegisteredClientID string `json:"registeredClientId"`
	PrincipalName      string `json:"principalName"`
}

// Consent records the authorities a principal granted to a client.
type Consent struct {
	ConsentKey
	Authorities []string `json:"authorities"`
}
