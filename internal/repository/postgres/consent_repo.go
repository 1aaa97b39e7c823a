package postgres

import (
	"context"
	"errors"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/jackc/pgx/v5"
)

var consentUpsertSQL = upsertSQL("oauth2_authorization_consent",
	[]string{"registered_client_id", "principal_name", "authorities"},
	"registered_client_id", "principal_name")

// ConsentRepo implements ConsentRepository using PostgreSQL.
type ConsentRepo struct{ db *DB }

// NewConsentRepo constructs a consent repository.
func NewConsentRepo(db *DB) *ConsentRepo { return &ConsentRepo{db: db} }

// Upsert inserts or replaces the consent for its (client, principal) key.
func (r *ConsentRepo) Upsert(ctx context.Context, c *repository.ConsentRecord) error {
	_, err := r.db.Pool.Exec(ctx, consentUpsertSQL, c.RegisteredClientID, c.PrincipalName, c.Authorities)
	return err
}

// Delete removes a consent. Missing rows are ignored.
func (r *ConsentRepo) Delete(ctx context.Context, registeredClientID, principalName string) error {
	const q = `
DELETE FROM oauth2_authorization_consent
WHERE registered_client_id=$1 AND principal_name=$2`
	_, err := r.db.Pool.Exec(ctx, q, registeredClientID, principalName)
	return err
}

// Get selects a consent by its composite key.
func (r *ConsentRepo) Get(ctx context.Context, registeredClientID, principalName string) (*repository.ConsentRecord, error) {
	const q = `
SELECT registered_client_id, principal_name, authorities
FROM oauth2_authorization_consent
WHERE registered_client_id=$1 AND principal_name=$2`
	var c repository.ConsentRecord
	err := r.db.Pool.QueryRow(ctx, q, registeredClientID, principalName).
		Scan(&c.RegisteredClientID, &c.PrincipalName, &c.Authorities)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
