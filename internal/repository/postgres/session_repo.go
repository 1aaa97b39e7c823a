package postgres

import (
	"context"
	"errors"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts a session row.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO sessions (id, user_id, token, expiring_at, status)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, s.ID, s.UserID, s.Token, s.ExpiringAt, string(s.Status))
	if isUniqueViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// GetByTokenAndUser selects the session with the given token owned by userID.
func (r *SessionRepo) GetByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*model.Session, error) {
	const q = `
SELECT id, user_id, token, expiring_at, status
FROM sessions WHERE md5(token)=md5($1::text) AND token=$1 AND user_id=$2`
	var (
		s      model.Session
		status string
	)
	err := r.db.Pool.QueryRow(ctx, q, token, userID).Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiringAt, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	s.Status = model.SessionStatus(status)
	return &s, nil
}

// UpdateStatus sets the status of a session.
func (r *SessionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error {
	const q = `UPDATE sessions SET status=$2 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
