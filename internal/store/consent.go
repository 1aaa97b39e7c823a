package store

import (
	"context"
	"fmt"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
	"go.uber.org/zap"
)

// ConsentStore persists consent decisions.
type ConsentStore struct {
	repo    repository.ConsentRepository
	clients ClientFinder
	log     *zap.Logger
}

// NewConsentStore constructs a consent store. A nil logger disables logging.
func NewConsentStore(repo repository.ConsentRepository, clients ClientFinder, log *zap.Logger) *ConsentStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConsentStore{repo: repo, clients: clients, log: log}
}

func validKey(k model.ConsentKey) error {
	if k.RegisteredClientID == "" || k.PrincipalName == "" {
		return fmt.Errorf("%w: registered client id and principal name are required", errs.ErrInvalidArgument)
	}
	return nil
}

// Save upserts c by its composite key. The registered client must exist; an empty authority set
// is stored as is.
func (s *ConsentStore) Save(ctx context.Context, c *model.Consent) error {
	if c == nil {
		return fmt.Errorf("%w: consent is nil", errs.ErrInvalidArgument)
	}
	if err := validKey(c.ConsentKey); err != nil {
		return err
	}
	rec := &repository.ConsentRecord{
		RegisteredClientID: c.RegisteredClientID,
		PrincipalName:      c.PrincipalName,
		Authorities:        encodeSet(c.Authorities),
	}
	if err := resolveClient(ctx, s.clients, s.log, "consent", c.PrincipalName, c.RegisteredClientID); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	return nil
}

// Remove deletes the consent with c's key. Removing an absent consent succeeds.
func (s *ConsentStore) Remove(ctx context.Context, c *model.Consent) error {
	if c == nil {
		return fmt.Errorf("%w: consent is nil", errs.ErrInvalidArgument)
	}
	if err := validKey(c.ConsentKey); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c.RegisteredClientID, c.PrincipalName); err != nil {
		return fmt.Errorf("remove consent: %w", err)
	}
	return nil
}

// FindByID loads a consent. The referenced client must exist; a consent without stored
// authorities reports model.DefaultAuthority.
func (s *ConsentStore) FindByID(ctx context.Context, registeredClientID, principalName string) (*model.Consent, error) {
	key := model.ConsentKey{RegisteredClientID: registeredClientID, PrincipalName: principalName}
	if err := validKey(key); err != nil {
		return nil, err
	}
	rec, err := s.repo.Get(ctx, registeredClientID, principalName)
	if err != nil {
		return nil, fmt.Errorf("find consent: %w", err)
	}
	if err := resolveClient(ctx, s.clients, s.log, "consent", rec.PrincipalName, rec.RegisteredClientID); err != nil {
		return nil, err
	}
	authorities := decodeSet(rec.Authorities, identity)
	if len(authorities) == 0 {
		authorities = []string{model.DefaultAuthority}
	}
	return &model.Consent{
		ConsentKey:  model.ConsentKey{RegisteredClientID: rec.RegisteredClientID, PrincipalName: rec.PrincipalName},
		Authorities: authorities,
	}, nil
}
