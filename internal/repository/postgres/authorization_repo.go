package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/jackc/pgx/v5"
)

var authorizationColumns = []string{
	"id",
	"registered_client_id",
	"principal_name",
	"authorization_grant_type",
	"authorized_scopes",
	"attributes",
	"state",
	"authorization_code_value",
	"authorization_code_issued_at",
	"authorization_code_expires_at",
	"authorization_code_metadata",
	"access_token_value",
	"access_token_issued_at",
	"access_token_expires_at",
	"access_token_metadata",
	"access_token_type",
	"access_token_scopes",
	"oidc_id_token_value",
	"oidc_id_token_issued_at",
	"oidc_id_token_expires_at",
	"oidc_id_token_metadata",
	"oidc_id_token_claims",
	"refresh_token_value",
	"refresh_token_issued_at",
	"refresh_token_expires_at",
	"refresh_token_metadata",
	"user_code_value",
	"user_code_issued_at",
	"user_code_expires_at",
	"user_code_metadata",
	"device_code_value",
	"device_code_issued_at",
	"device_code_expires_at",
	"device_code_metadata",
}

// tokenLookupOrder is the order in which slots are consulted when no hint is given.
var tokenLookupOrder = []string{
	"state",
	"authorization_code_value",
	"access_token_value",
	"refresh_token_value",
	"oidc_id_token_value",
	"user_code_value",
	"device_code_value",
}

var tokenColumnByType = map[model.TokenType]string{
	model.TokenTypeState:        "state",
	model.TokenTypeCode:         "authorization_code_value",
	model.TokenTypeAccessToken:  "access_token_value",
	model.TokenTypeRefreshToken: "refresh_token_value",
	model.TokenTypeIDToken:      "oidc_id_token_value",
	model.TokenTypeUserCode:     "user_code_value",
	model.TokenTypeDeviceCode:   "device_code_value",
}

var (
	authorizationUpsertSQL   = upsertSQL("oauth2_authorization", authorizationColumns, "id")
	authorizationSelectSQL   = "SELECT " + strings.Join(selectAuthorizationColumns(), ", ") + " FROM oauth2_authorization"
	authorizationAnyTokenSQL = anyTokenSQL()
)

func selectAuthorizationColumns() []string {
	cols := append([]string(nil), authorizationColumns...)
	for i, c := range cols {
		if c == "authorized_scopes" || c == "attributes" {
			cols[i] = "COALESCE(" + c + ", '')"
		}
	}
	return cols
}

// tokenMatch compares col with $1 through the md5 expression the unique indexes are built on.
func tokenMatch(col string) string {
	return "(md5(" + col + ") = md5($1::text) AND " + col + " = $1)"
}

func anyTokenSQL() string {
	where := make([]string, len(tokenLookupOrder))
	order := make([]string, len(tokenLookupOrder))
	for i, c := range tokenLookupOrder {
		where[i] = tokenMatch(c)
		order[i] = fmt.Sprintf("WHEN %s = $1 THEN %d", c, i)
	}
	return authorizationSelectSQL +
		" WHERE " + strings.Join(where, " OR ") +
		" ORDER BY CASE " + strings.Join(order, " ") + " END LIMIT 1"
}

// AuthorizationRepo implements AuthorizationRepository using PostgreSQL.
type AuthorizationRepo struct{ db *DB }

// NewAuthorizationRepo constructs an authorization repository.
func NewAuthorizationRepo(db *DB) *AuthorizationRepo { return &AuthorizationRepo{db: db} }

// Upsert inserts or replaces an authorization row by id. A token value already held by another
// row yields errs.ErrConflict and nothing is written.
func (r *AuthorizationRepo) Upsert(ctx context.Context, a *repository.AuthorizationRecord) error {
	args := []any{
		a.ID, a.RegisteredClientID, a.PrincipalName, a.AuthorizationGrantType,
		nullIfEmpty(a.AuthorizedScopes), nullIfEmpty(a.Attributes), a.State,
	}
	args = appendToken(args, a.AuthorizationCode)
	args = appendToken(args, a.AccessToken)
	args = append(args, a.AccessTokenType, a.AccessTokenScopes)
	args = appendToken(args, a.OIDCIDToken)
	args = append(args, a.OIDCIDTokenClaims)
	args = appendToken(args, a.RefreshToken)
	args = appendToken(args, a.UserCode)
	args = appendToken(args, a.DeviceCode)

	_, err := r.db.Pool.Exec(ctx, authorizationUpsertSQL, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("authorization %q: token value in use: %w", a.ID, errs.ErrConflict)
	}
	return err
}

// Delete removes an authorization by id. Missing rows are ignored.
func (r *AuthorizationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM oauth2_authorization WHERE id=$1`, id)
	return err
}

// GetByID selects an authorization by id.
func (r *AuthorizationRepo) GetByID(ctx context.Context, id string) (*repository.AuthorizationRecord, error) {
	return scanAuthorization(r.db.Pool.QueryRow(ctx, authorizationSelectSQL+" WHERE id=$1", id))
}

// GetByToken selects the authorization holding value. With model.TokenTypeAny all slots are
// searched in a single statement; an unrecognised token type finds nothing.
func (r *AuthorizationRepo) GetByToken(
	ctx context.Context, value string, tokenType model.TokenType,
) (*repository.AuthorizationRecord, error) {
	q := authorizationAnyTokenSQL
	if tokenType != model.TokenTypeAny {
		col, ok := tokenColumnByType[tokenType]
		if !ok {
			return nil, fmt.Errorf("token type %q: %w", tokenType, errs.ErrNotFound)
		}
		q = authorizationSelectSQL + " WHERE " + tokenMatch(col)
	}
	return scanAuthorization(r.db.Pool.QueryRow(ctx, q, value))
}

func appendToken(args []any, t repository.TokenColumns) []any {
	return append(args, t.Value, t.IssuedAt, t.ExpiresAt, t.Metadata)
}

func tokenDest(t *repository.TokenColumns) []any {
	return []any{&t.Value, &t.IssuedAt, &t.ExpiresAt, &t.Metadata}
}

func scanAuthorization(row pgx.Row) (*repository.AuthorizationRecord, error) {
	var a repository.AuthorizationRecord
	dest := []any{
		&a.ID, &a.RegisteredClientID, &a.PrincipalName, &a.AuthorizationGrantType,
		&a.AuthorizedScopes, &a.Attributes, &a.State,
	}
	dest = append(dest, tokenDest(&a.AuthorizationCode)...)
	dest = append(dest, tokenDest(&a.AccessToken)...)
	dest = append(dest, &a.AccessTokenType, &a.AccessTokenScopes)
	dest = append(dest, tokenDest(&a.OIDCIDToken)...)
	dest = append(dest, &a.OIDCIDTokenClaims)
	dest = append(dest, tokenDest(&a.RefreshToken)...)
	dest = append(dest, tokenDest(&a.UserCode)...)
	dest = append(dest, tokenDest(&a.DeviceCode)...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
