// Package model defines domain entities used by services, stores and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DefaultRole is assigned to users created without explicit roles.
const DefaultRole = "USER"

// User represents an account stored on the server. The password is never stored in plaintext.
type User struct {
	ID        uuid.UUID // PK
	Email     string    // unique
	PwdHash   string    // bcrypt hash
	Roles     []string
	CreatedAt time.Time
}

// Profile returns the public projection of u.
func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Roles: append([]string(nil), u.Roles...)}
}

// UserProfile is what callers outside the service get to see about a user.
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Roles []string  `json:"roles"`
}

// SessionStatus is the lifecycle state of a login session.
type SessionStatus string

const (
	SessionActive SessionStatus = "ACTIVE"
	SessionEnded  SessionStatus = "ENDED"
)

// Session binds an issued token to a user. Status only ever moves from ACTIVE to ENDED.
type Session struct {
	ID         uuid.UUID
	Token      string // unique
	ExpiringAt time.Time
	UserID     uuid.UUID
	Status     SessionStatus
}

// Active reports whether the session has not been ended.
func (s *Session) Active() bool { return s.Status == SessionActive }

// LoginResult is returned by a successful login. The token travels separately from the profile.
type LoginResult struct {
	User      UserProfile
	Token     string
	ExpiresAt time.Time
}
