package postgres

import (
	"context"
	"testing"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestConsentRepo_Upsert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewConsentRepo(db)

	mock.ExpectExec(`INSERT INTO oauth2_authorization_consent .* ON CONFLICT \(registered_client_id, principal_name\) DO UPDATE SET authorities = EXCLUDED.authorities`).
		WithArgs("c1", "alice", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Upsert(context.Background(), &repository.ConsentRecord{
		RegisteredClientID: "c1", PrincipalName: "alice",
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepo_Delete_Idempotent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewConsentRepo(db)

	for i := 0; i < 2; i++ {
		mock.ExpectExec(`DELETE FROM oauth2_authorization_consent WHERE registered_client_id=\$1 AND principal_name=\$2`).
			WithArgs("c1", "alice").
			WillReturnResult(pgxmock.NewResult("DELETE", int64(1-i)))
		require.NoError(t, r.Delete(context.Background(), "c1", "alice"))
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewConsentRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM oauth2_authorization_consent WHERE registered_client_id=\$1 AND principal_name=\$2`).
		WithArgs("c1", "alice").
		WillReturnRows(pgxmock.NewRows([]string{"registered_client_id", "principal_name", "authorities"}).
			AddRow("c1", "alice", "SCOPE_read,SCOPE_write"))
	rec, err := r.Get(ctx, "c1", "alice")
	require.NoError(t, err)
	require.Equal(t, "SCOPE_read,SCOPE_write", rec.Authorities)

	mock.ExpectQuery(`FROM oauth2_authorization_consent`).
		WithArgs("c1", "bob").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, "c1", "bob")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
