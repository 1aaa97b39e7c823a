package store

import (
	"context"
	"fmt"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/and161185/authkeeper/internal/settings"
	"go.uber.org/zap"
)

// AuthorizationStore persists authorization records and finds them by id or token value.
type AuthorizationStore struct {
	repo    repository.AuthorizationRepository
	clients ClientFinder
	log     *zap.Logger
}

// NewAuthorizationStore constructs an authorization store. A nil logger disables logging.
func NewAuthorizationStore(repo repository.AuthorizationRepository, clients ClientFinder, log *zap.Logger) *AuthorizationStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthorizationStore{repo: repo, clients: clients, log: log}
}

// Save upserts a by id. The registered client must exist; a token value held by another record
// fails with errs.ErrConflict.
func (s *AuthorizationStore) Save(ctx context.Context, a *model.Authorization) error {
	if a == nil {
		return fmt.Errorf("%w: authorization is nil", errs.ErrInvalidArgument)
	}
	if a.ID == "" || a.RegisteredClientID == "" {
		return fmt.Errorf("%w: authorization id and registered client id are required", errs.ErrInvalidArgument)
	}
	rec, err := authorizationToRecord(a)
	if err != nil {
		return err
	}
	if err := resolveClient(ctx, s.clients, s.log, "authorization", a.ID, a.RegisteredClientID); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save authorization: %w", err)
	}
	s.log.Debug("authorization saved", zap.String("id", a.ID), zap.String("registered_client_id", a.RegisteredClientID))
	return nil
}

// Remove deletes a by id. Removing an absent record succeeds.
func (s *AuthorizationStore) Remove(ctx context.Context, a *model.Authorization) error {
	if a == nil {
		return fmt.Errorf("%w: authorization is nil", errs.ErrInvalidArgument)
	}
	if a.ID == "" {
		return fmt.Errorf("%w: authorization id is required", errs.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return fmt.Errorf("remove authorization: %w", err)
	}
	return nil
}

// FindByID loads an authorization by id.
func (s *AuthorizationStore) FindByID(ctx context.Context, id string) (*model.Authorization, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", errs.ErrInvalidArgument)
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find authorization: %w", err)
	}
	return s.load(ctx, rec)
}

// FindByToken loads the authorization holding value. With model.TokenTypeAny the state and every
// token slot are searched in the order state, authorization code, access token, refresh token,
// ID token, user code, device code.
func (s *AuthorizationStore) FindByToken(ctx context.Context, value string, tokenType model.TokenType) (*model.Authorization, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: token is required", errs.ErrInvalidArgument)
	}
	rec, err := s.repo.GetByToken(ctx, value, tokenType)
	if err != nil {
		return nil, fmt.Errorf("find authorization by token: %w", err)
	}
	return s.load(ctx, rec)
}

func (s *AuthorizationStore) load(ctx context.Context, rec *repository.AuthorizationRecord) (*model.Authorization, error) {
	if err := resolveClient(ctx, s.clients, s.log, "authorization", rec.ID, rec.RegisteredClientID); err != nil {
		return nil, err
	}
	return authorizationFromRecord(rec)
}

func authorizationToRecord(a *model.Authorization) (*repository.AuthorizationRecord, error) {
	attrs, err := settings.Encode(a.Attributes)
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}
	rec := &repository.AuthorizationRecord{
		ID:                     a.ID,
		RegisteredClientID:     a.RegisteredClientID,
		PrincipalName:          a.PrincipalName,
		AuthorizationGrantType: string(a.GrantType),
		AuthorizedScopes:       encodeSet(a.AuthorizedScopes),
		Attributes:             attrs,
		State:                  optional(a.State),
	}
	if rec.AuthorizationCode, err = tokenToColumns(a.AuthorizationCode); err != nil {
		return nil, fmt.Errorf("authorization code: %w", err)
	}
	if a.AccessToken != nil {
		if rec.AccessToken, err = tokenToColumns(&a.AccessToken.Token); err != nil {
			return nil, fmt.Errorf("access token: %w", err)
		}
		rec.AccessTokenType = optional(a.AccessToken.TokenType)
		rec.AccessTokenScopes = optional(encodeSet(a.AccessToken.Scopes))
	}
	if a.IDToken != nil {
		if rec.OIDCIDToken, err = tokenToColumns(&a.IDToken.Token); err != nil {
			return nil, fmt.Errorf("id token: %w", err)
		}
		claims, err := settings.Encode(a.IDToken.Claims)
		if err != nil {
			return nil, fmt.Errorf("id token claims: %w", err)
		}
		rec.OIDCIDTokenClaims = &claims
	}
	if rec.RefreshToken, err = tokenToColumns(a.RefreshToken); err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	if rec.UserCode, err = tokenToColumns(a.UserCode); err != nil {
		return nil, fmt.Errorf("user code: %w", err)
	}
	if rec.DeviceCode, err = tokenToColumns(a.DeviceCode); err != nil {
		return nil, fmt.Errorf("device code: %w", err)
	}
	return rec, nil
}

func authorizationFromRecord(rec *repository.AuthorizationRecord) (*model.Authorization, error) {
	attrs, err := settings.Decode(rec.Attributes)
	if err != nil {
		return nil, fmt.Errorf("authorization %q attributes: %w", rec.ID, err)
	}
	a := &model.Authorization{
		ID:                 rec.ID,
		RegisteredClientID: rec.RegisteredClientID,
		PrincipalName:      rec.PrincipalName,
		GrantType:          model.ResolveGrantType(rec.AuthorizationGrantType),
		AuthorizedScopes:   decodeSet(rec.AuthorizedScopes, identity),
		Attributes:         attrs,
		State:              deref(rec.State),
	}
	if a.AuthorizationCode, err = tokenFromColumns(rec.AuthorizationCode); err != nil {
		return nil, fmt.Errorf("authorization %q code: %w", rec.ID, err)
	}
	at, err := tokenFromColumns(rec.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("authorization %q access token: %w", rec.ID, err)
	}
	if at != nil {
		a.AccessToken = &model.AccessToken{
			Token:     *at,
			TokenType: deref(rec.AccessTokenType),
			Scopes:    decodeSet(deref(rec.AccessTokenScopes), identity),
		}
	}
	idt, err := tokenFromColumns(rec.OIDCIDToken)
	if err != nil {
		return nil, fmt.Errorf("authorization %q id token: %w", rec.ID, err)
	}
	if idt != nil {
		claims, err := settings.Decode(deref(rec.OIDCIDTokenClaims))
		if err != nil {
			return nil, fmt.Errorf("authorization %q id token claims: %w", rec.ID, err)
		}
		a.IDToken = &model.IDToken{Token: *idt, Claims: claims}
	}
	if a.RefreshToken, err = tokenFromColumns(rec.RefreshToken); err != nil {
		return nil, fmt.Errorf("authorization %q refresh token: %w", rec.ID, err)
	}
	if a.UserCode, err = tokenFromColumns(rec.UserCode); err != nil {
		return nil, fmt.Errorf("authorization %q user code: %w", rec.ID, err)
	}
	if a.DeviceCode, err = tokenFromColumns(rec.DeviceCode); err != nil {
		return nil, fmt.Errorf("authorization %q device code: %w", rec.ID, err)
	}
	return a, nil
}

func tokenToColumns(t *model.Token) (repository.TokenColumns, error) {
	if t == nil || t.Value == "" {
		return repository.TokenColumns{}, nil
	}
	meta, err := settings.Encode(t.Metadata)
	if err != nil {
		return repository.TokenColumns{}, err
	}
	value := t.Value
	return repository.TokenColumns{Value: &value, IssuedAt: t.IssuedAt, ExpiresAt: t.ExpiresAt, Metadata: &meta}, nil
}

func tokenFromColumns(c repository.TokenColumns) (*model.Token, error) {
	if c.Value == nil {
		return nil, nil
	}
	meta, err := settings.Decode(deref(c.Metadata))
	if err != nil {
		return nil, err
	}
	return &model.Token{Value: *c.Value, IssuedAt: c.IssuedAt, ExpiresAt: c.ExpiresAt, Metadata: meta}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
