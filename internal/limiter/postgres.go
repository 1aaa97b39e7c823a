package limiter

import (
	"context"
	"crypto/sha256"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PG is a PostgreSQL-backed limiter implementation with sliding window and lockout.
type PG struct {
	pool   Querier
	policy Policy
}

// Querier is the subset of a pgx pool the limiter needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed limiter. Zero policy fields take DefaultPolicy values.
func NewPG(q Querier, p Policy) *PG {
	if p.Window <= 0 {
		p.Window = DefaultPolicy.Window
	}
	if p.MaxFailures <= 0 {
		p.MaxFailures = DefaultPolicy.MaxFailures
	}
	if p.BlockFor <= 0 {
		p.BlockFor = DefaultPolicy.BlockFor
	}
	return &PG{pool: q, policy: p}
}

// HashIP returns a stable hash of the host part of addr so raw addresses are never stored.
func HashIP(addr string) []byte {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	h := sha256.Sum256([]byte(host))
	return h[:]
}

func normalizeLogin(login string) string { return strings.ToLower(strings.TrimSpace(login)) }

// Allow reports whether login is currently allowed and a retry-after duration.
func (l *PG) Allow(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error) {
	const q = `SELECT blocked_until, updated_at FROM auth_limiter WHERE login=$1 AND ip_hash=$2`
	var blockedUntil time.Time
	var updatedAt time.Time
	err := l.pool.QueryRow(ctx, q, normalizeLogin(login), ipHash).Scan(&blockedUntil, &updatedAt)
	switch {
	case err == nil:
		if blockedUntil.After(time.Now()) {
			return false, time.Until(blockedUntil), nil
		}
		return true, 0, nil
	case errors.Is(err, pgx.ErrNoRows):
		return true, 0, nil
	default:
		return false, 0, err
	}
}

// Success resets counters for (login, ip).
func (l *PG) Success(ctx context.Context, login string, ipHash []byte) error {
	const q = `
INSERT INTO auth_limiter (login, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1,$2,0,'epoch',now())
ON CONFLICT (login, ip_hash)
DO UPDATE SET fail_count=0, blocked_until='epoch', updated_at=now()`
	_, err := l.pool.Exec(ctx, q, normalizeLogin(login), ipHash)
	return err
}

// Failure records a failed attempt; may set a block until a future time.
func (l *PG) Failure(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error) {
	now := time.Now()
	key := normalizeLogin(login)

	const q = `
INSERT INTO auth_limiter (login, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1,$2,1,'epoch',now())
ON CONFLICT (login, ip_hash) DO UPDATE
SET
  fail_count = CASE WHEN EXCLUDED.updated_at - auth_limiter.updated_at > $3::interval THEN 1 ELSE auth_limiter.fail_count + 1 END,
  updated_at = now()
RETURNING fail_count`
	var fails int
	if err := l.pool.QueryRow(ctx, q, key, ipHash, l.policy.Window).Scan(&fails); err != nil {
		return false, 0, err
	}
	if fails >= l.policy.MaxFailures {
		blockUntil := now.Add(l.policy.BlockFor)
		const upd = `UPDATE auth_limiter SET blocked_until=$3 WHERE login=$1 AND ip_hash=$2`
		if _, err := l.pool.Exec(ctx, upd, key, ipHash, blockUntil); err != nil {
			return false, 0, err
		}
		return true, l.policy.BlockFor, nil
	}
	return false, 0, nil
}
