package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

var userCols = []string{"id", "email", "pwd_hash", "roles", "created_at"}

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &model.User{
		ID:      uuid.Must(uuid.NewV4()),
		Email:   "a@b.c",
		PwdHash: "h",
	}

	// OK, default role applied
	mock.ExpectExec(`INSERT INTO users \(id, email, pwd_hash, roles\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(u.ID, u.Email, u.PwdHash, []string{model.DefaultRole}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, u))

	// Unique violation
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Email, u.PwdHash, []string{model.DefaultRole}).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, u)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_ExplicitRoles(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	u := &model.User{ID: uuid.Must(uuid.NewV4()), Email: "x@y.z", PwdHash: "h", Roles: []string{"ADMIN", "USER"}}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Email, u.PwdHash, []string{"ADMIN", "USER"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(context.Background(), u))
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, email, pwd_hash, roles, created_at FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, "u@x.io", "h", []string{"USER"}, now))
	u, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, []string{"USER"}, u.Roles)
	require.Equal(t, now, u.CreatedAt)

	mock.ExpectQuery(`SELECT id, email, pwd_hash, roles, created_at FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	email := "u2@x.io"
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs(email).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, email, "h", []string{"USER"}, time.Now()))
	u, err := r.GetByEmail(ctx, email)
	require.NoError(t, err)
	require.Equal(t, email, u.Email)

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs(email).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByEmail(ctx, email)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_GetByEmail_DriverErrorIsNotNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	boom := errors.New("conn reset")

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs("e@x.io").
		WillReturnError(boom)
	_, err := r.GetByEmail(context.Background(), "e@x.io")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrNotFound)
}
