package postgres

import (
	"context"
	"errors"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. A taken email yields errs.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, email, pwd_hash, roles)
VALUES ($1, $2, $3, $4)`
	roles := u.Roles
	if len(roles) == 0 {
		roles = []string{model.DefaultRole}
	}
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Email, u.PwdHash, roles)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, email, pwd_hash, roles, created_at
FROM users WHERE id=$1`
	return scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, email, pwd_hash, roles, created_at
FROM users WHERE email=$1`
	return scanUser(r.db.Pool.QueryRow(ctx, q, email))
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PwdHash, &u.Roles, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
