// Package service contains application services for accounts and login sessions.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/authkeeper/internal/crypto"
	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/limiter"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/and161185/authkeeper/internal/token"
)

// AuthService defines account and session operations.
type AuthService interface {
	// SignUp creates a new user. No session is opened.
	SignUp(ctx context.Context, email, password string) (model.UserProfile, error)
	// Login applies rate-limiting, checks credentials and opens a session.
	Login(ctx context.Context, email, password, ip string) (model.LoginResult, error)
	// Logout ends the session identified by (token, userID).
	Logout(ctx context.Context, token string, userID uuid.UUID) error
	// Validate reports the status of the session identified by (token, userID).
	Validate(ctx context.Context, token string, userID uuid.UUID) (model.SessionStatus, error)
	// Authenticate resolves a bearer token to the user owning an active session for it.
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
	// GetUser returns the public profile of a user.
	GetUser(ctx context.Context, userID uuid.UUID) (model.UserProfile, error)
	// LoadPrincipal returns the full user record for an email, for use by the authorization engine.
	LoadPrincipal(ctx context.Context, email string) (*model.User, error)
}

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Issue(u *model.User) (string, time.Time, error)
	Parse(tok string) (*token.Claims, error)
}

var _ TokenManager = (*token.Manager)(nil)

// dummyPassword is hashed once per service so that logins for unknown emails cost one Verify.
const dummyPassword = "authkeeper-no-such-user"

type signUpInput struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=72"`
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   pkgcrypto.PasswordHasher
	tokens   TokenManager
	lim      limiter.Limiter
	validate *validator.Validate
	log      *zap.Logger

	dummyHash string
}

var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService constructs AuthService with required dependencies. A nil logger disables logging.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	hasher pkgcrypto.PasswordHasher,
	tokens TokenManager,
	lim limiter.Limiter,
	log *zap.Logger,
) *AuthServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Warn("dummy password hash unavailable", zap.Error(err))
	}
	return &AuthServiceImpl{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		tokens:    tokens,
		lim:       lim,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
		dummyHash: dummy,
	}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// SignUp validates input, hashes the password and stores the user with the default role.
func (s *AuthServiceImpl) SignUp(ctx context.Context, email, password string) (model.UserProfile, error) {
	in := signUpInput{Email: normalizeEmail(email), Password: password}
	if err := s.validate.Struct(in); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.UserProfile{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		ID:      uid,
		Email:   in.Email,
		PwdHash: hash,
		Roles:   []string{model.DefaultRole},
	}
	if err := s.users.Create(ctx, u); err != nil {
		return model.UserProfile{}, err
	}
	s.log.Info("user signed up", zap.String("user_id", uid.String()))
	return u.Profile(), nil
}

// Login authenticates with rate limiting by (email, ip). Unknown email and wrong password fail
// identically with errs.ErrUnauthorized and leave no session behind.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, ip string) (model.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return model.LoginResult{}, fmt.Errorf("%w: email and password are required", errs.ErrInvalidArgument)
	}
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.LoginResult{}, err
	}
	if !allowed {
		return model.LoginResult{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.LoginResult{}, err
	}
	// Unknown emails verify against the dummy hash so both failures take the same time.
	hash := s.dummyHash
	if u != nil {
		hash = u.PwdHash
	}
	if ok := s.hasher.Verify(password, hash); u == nil || !ok {
		blocked, _, ferr := s.lim.Failure(ctx, email, ipHash)
		if ferr != nil {
			s.log.Warn("limiter failure not recorded", zap.Error(ferr))
		}
		if blocked {
			return model.LoginResult{}, errs.ErrRateLimited
		}
		return model.LoginResult{}, errs.ErrUnauthorized
	}

	signed, exp, err := s.tokens.Issue(u)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	sid, err := uuid.NewV4()
	if err != nil {
		return model.LoginResult{}, err
	}
	sess := &model.Session{
		ID:         sid,
		Token:      signed,
		ExpiringAt: exp,
		UserID:     u.ID,
		Status:     model.SessionActive,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return model.LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	if err := s.lim.Success(ctx, email, ipHash); err != nil {
		s.log.Warn("limiter reset failed", zap.Error(err))
	}
	s.log.Info("user logged in", zap.String("user_id", u.ID.String()), zap.String("session_id", sid.String()))
	return model.LoginResult{User: u.Profile(), Token: signed, ExpiresAt: exp}, nil
}

func (s *AuthServiceImpl) activeSession(ctx context.Context, tok string, userID uuid.UUID) (*model.Session, error) {
	if tok == "" || userID == uuid.Nil {
		return nil, fmt.Errorf("%w: token and user id are required", errs.ErrInvalidArgument)
	}
	sess, err := s.sessions.GetByTokenAndUser(ctx, tok, userID)
	if err != nil {
		return nil, err
	}
	if !sess.Active() {
		return nil, fmt.Errorf("session ended: %w", errs.ErrNotFound)
	}
	return sess, nil
}

// Logout marks the session ENDED. A missing or already ended session yields errs.ErrNotFound.
func (s *AuthServiceImpl) Logout(ctx context.Context, tok string, userID uuid.UUID) error {
	sess, err := s.activeSession(ctx, tok, userID)
	if err != nil {
		return err
	}
	if err := s.sessions.UpdateStatus(ctx, sess.ID, model.SessionEnded); err != nil {
		return err
	}
	s.log.Info("user logged out", zap.String("user_id", userID.String()), zap.String("session_id", sess.ID.String()))
	return nil
}

// Validate checks the stored session first, then the token signature, expiry and subject.
func (s *AuthServiceImpl) Validate(ctx context.Context, tok string, userID uuid.UUID) (model.SessionStatus, error) {
	if _, err := s.activeSession(ctx, tok, userID); err != nil {
		return "", err
	}
	claims, err := s.tokens.Parse(tok)
	if err != nil {
		return "", err
	}
	if err := checkSubject(claims, userID); err != nil {
		return "", err
	}
	return model.SessionActive, nil
}

func checkSubject(claims *token.Claims, userID uuid.UUID) error {
	sub, err := claims.SubjectID()
	if err != nil {
		return err
	}
	if sub != userID {
		return fmt.Errorf("%w: token issued for another user", errs.ErrUnauthorized)
	}
	return nil
}

// Authenticate verifies a bearer token once and requires its session to be active.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, tok string) (uuid.UUID, error) {
	claims, err := s.tokens.Parse(tok)
	if err != nil {
		return uuid.Nil, err
	}
	uid, err := claims.SubjectID()
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.activeSession(ctx, tok, uid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%w: no active session", errs.ErrUnauthorized)
		}
		return uuid.Nil, err
	}
	return uid, nil
}

// GetUser returns the public profile for userID.
func (s *AuthServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (model.UserProfile, error) {
	if userID == uuid.Nil {
		return model.UserProfile{}, fmt.Errorf("%w: user id is required", errs.ErrInvalidArgument)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	return u.Profile(), nil
}

// LoadPrincipal looks a user up by email.
func (s *AuthServiceImpl) LoadPrincipal(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrInvalidArgument)
	}
	return s.users.GetByEmail(ctx, email)
}
