// Package token issues and verifies the HS256 session tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
)

// Claims are the session token claims.
type Claims struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a single symmetric key.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewManager constructs a Manager. key must be stable across restarts for tokens to survive them.
func NewManager(key []byte, ttl time.Duration) (*Manager, error) {
	if len(key) == 0 {
		return nil, errors.New("token: empty signing key")
	}
	if ttl <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	return &Manager{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue creates a signed token for u and returns it with its expiry.
func (m *Manager) Issue(u *model.User) (string, time.Time, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", time.Time{}, err
	}
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Roles:  u.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        jti.String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature and expiry and returns the claims. Any failure wraps errs.ErrUnauthorized.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	return &claims, nil
}

// SubjectID parses the token subject as a user id.
func (c *Claims) SubjectID() (uuid.UUID, error) {
	id, err := uuid.FromString(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return id, nil
}
