// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/authkeeper/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	// Create inserts a new session.
	Create(ctx context.Context, s *model.Session) error
	// GetByTokenAndUser loads the session holding token for userID.
	GetByTokenAndUser(ctx context.Context, token string, userID uuid.UUID) (*model.Session, error)
	// UpdateStatus overwrites the session status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error
}

// ClientRepository persists registered clients in their stored form.
type ClientRepository interface {
	Upsert(ctx context.Context, rec *ClientRecord) error
	GetByID(ctx context.Context, id string) (*ClientRecord, error)
	GetByClientID(ctx context.Context, clientID string) (*ClientRecord, error)
}

// ConsentRepository persists consents keyed by (registered client id, principal name).
type ConsentRepository interface {
	Upsert(ctx context.Context, rec *ConsentRecord) error
	// Delete removes the consent; deleting an absent row is not an error.
	Delete(ctx context.Context, registeredClientID, principalName string) error
	Get(ctx context.Context, registeredClientID, principalName string) (*ConsentRecord, error)
}

// AuthorizationRepository persists authorization records.
type AuthorizationRepository interface {
	Upsert(ctx context.Context, rec *AuthorizationRecord) error
	// Delete removes the record; deleting an absent row is not an error.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*AuthorizationRecord, error)
	// GetByToken finds the record holding value in the slot named by tokenType,
	// or in any slot when tokenType is model.TokenTypeAny.
	GetByToken(ctx context.Context, value string, tokenType model.TokenType) (*AuthorizationRecord, error)
}
