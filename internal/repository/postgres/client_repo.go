package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/jackc/pgx/v5"
)

var clientColumns = []string{
	"id",
	"client_id",
	"client_id_issued_at",
	"client_secret",
	"client_secret_expires_at",
	"client_name",
	"client_authentication_methods",
	"authorization_grant_types",
	"redirect_uris",
	"post_logout_redirect_uris",
	"scopes",
	"client_settings",
	"token_settings",
}

var (
	clientUpsertSQL = upsertSQL("oauth2_registered_client", clientColumns, "id")
	clientSelectSQL = `
SELECT id, client_id, client_id_issued_at, client_secret, client_secret_expires_at, client_name,
       client_authentication_methods, authorization_grant_types,
       COALESCE(redirect_uris, ''), COALESCE(post_logout_redirect_uris, ''), scopes,
       client_settings, token_settings
FROM oauth2_registered_client`
)

// ClientRepo implements ClientRepository using PostgreSQL.
type ClientRepo struct{ db *DB }

// NewClientRepo constructs a registered-client repository.
func NewClientRepo(db *DB) *ClientRepo { return &ClientRepo{db: db} }

// Upsert inserts or replaces a client row by id. A client_id already held by another row
// yields errs.ErrConflict.
func (r *ClientRepo) Upsert(ctx context.Context, c *repository.ClientRecord) error {
	_, err := r.db.Pool.Exec(ctx, clientUpsertSQL,
		c.ID, c.ClientID, c.ClientIDIssuedAt, c.ClientSecret, c.ClientSecretExpiresAt, c.ClientName,
		c.ClientAuthenticationMethods, c.AuthorizationGrantTypes,
		nullIfEmpty(c.RedirectURIs), nullIfEmpty(c.PostLogoutRedirectURIs), c.Scopes,
		c.ClientSettings, c.TokenSettings,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("client %q: %w", c.ClientID, errs.ErrConflict)
	}
	return err
}

// GetByID selects a client by its internal id.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*repository.ClientRecord, error) {
	return scanClient(r.db.Pool.QueryRow(ctx, clientSelectSQL+` WHERE id=$1`, id))
}

// GetByClientID selects a client by its public client_id.
func (r *ClientRepo) GetByClientID(ctx context.Context, clientID string) (*repository.ClientRecord, error) {
	return scanClient(r.db.Pool.QueryRow(ctx, clientSelectSQL+` WHERE client_id=$1`, clientID))
}

func scanClient(row pgx.Row) (*repository.ClientRecord, error) {
	var c repository.ClientRecord
	err := row.Scan(
		&c.ID, &c.ClientID, &c.ClientIDIssuedAt, &c.ClientSecret, &c.ClientSecretExpiresAt, &c.ClientName,
		&c.ClientAuthenticationMethods, &c.AuthorizationGrantTypes,
		&c.RedirectURIs, &c.PostLogoutRedirectURIs, &c.Scopes,
		&c.ClientSettings, &c.TokenSettings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func nullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
