package repository

import "time"

// ClientRecord is a registered client exactly as persisted: collections are comma-delimited text
// and settings are serialized documents.
type ClientRecord struct {
	ID                          string
	ClientID                    string
	ClientIDIssuedAt            *time.Time // nil lets the database stamp it
	ClientSecret                *string
	ClientSecretExpiresAt       *time.Time
	ClientName                  string
	ClientAuthenticationMethods string
	AuthorizationGrantTypes     string
	RedirectURIs                string
	PostLogoutRedirectURIs      string
	Scopes                      string
	ClientSettings              string
	TokenSettings               string
}

// ConsentRecord is a consent as persisted.
type ConsentRecord struct {
	RegisteredClientID string
	PrincipalName      string
	Authorities        string
}

// TokenColumns holds the four columns shared by every token slot. A nil Value means the slot is empty.
type TokenColumns struct {
	Value     *string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
	Metadata  *string
}

// AuthorizationRecord is an authorization as persisted.
type AuthorizationRecord struct {
	ID                     string
	RegisteredClientID     string
	PrincipalName          string
	AuthorizationGrantType string
	AuthorizedScopes       string
	Attributes             string
	State                  *string

	AuthorizationCode TokenColumns
	AccessToken       TokenColumns
	AccessTokenType   *string
	AccessTokenScopes *string
	OIDCIDToken       TokenColumns
	OIDCIDTokenClaims *string
	RefreshToken      TokenColumns
	UserCode          TokenColumns
	DeviceCode        TokenColumns
}
