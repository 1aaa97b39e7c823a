package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func anyArgs(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = pgxmock.AnyArg()
	}
	return out
}

func clientRows() *pgxmock.Rows {
	return pgxmock.NewRows(clientColumns)
}

func TestClientRepo_Upsert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	ctx := context.Background()
	secret := "{bcrypt}$2a$10$x"
	rec := &repository.ClientRecord{
		ID:                          "1",
		ClientID:                    "oidc-client",
		ClientSecret:                &secret,
		ClientName:                  "Demo",
		ClientAuthenticationMethods: "client_secret_basic",
		AuthorizationGrantTypes:     "authorization_code,client_credentials",
		Scopes:                      "openid,profile",
		ClientSettings:              "{}",
		TokenSettings:               "{}",
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO oauth2_registered_client (id, client_id,`) + `.*` +
		regexp.QuoteMeta(`ON CONFLICT (id) DO UPDATE SET client_id = EXCLUDED.client_id`)).
		WithArgs(anyArgs(len(clientColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Upsert(ctx, rec))

	mock.ExpectExec(`INSERT INTO oauth2_registered_client`).
		WithArgs(anyArgs(len(clientColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Upsert(ctx, rec), errs.ErrConflict)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_GetByID_and_GetByClientID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	ctx := context.Background()
	issued := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	secret := "hashed"

	mock.ExpectQuery(`FROM oauth2_registered_client WHERE id=\$1`).
		WithArgs("1").
		WillReturnRows(clientRows().AddRow(
			"1", "oidc-client", &issued, &secret, (*time.Time)(nil), "Demo",
			"client_secret_basic", "authorization_code", "https://a/cb", "", "openid",
			`{"k":true}`, "{}",
		))
	rec, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "oidc-client", rec.ClientID)
	require.Equal(t, &issued, rec.ClientIDIssuedAt)
	require.Equal(t, "hashed", *rec.ClientSecret)
	require.Nil(t, rec.ClientSecretExpiresAt)
	require.Equal(t, "https://a/cb", rec.RedirectURIs)

	mock.ExpectQuery(`FROM oauth2_registered_client WHERE client_id=\$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByClientID(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestNullIfEmpty(t *testing.T) {
	require.Nil(t, nullIfEmpty(""))
	require.Nil(t, nullIfEmpty("  "))
	require.Equal(t, "a", *nullIfEmpty("a"))
}
