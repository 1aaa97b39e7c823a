package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
	"github.com/and161185/authkeeper/internal/settings"
	"go.uber.org/zap"
)

// ClientFinder resolves registered clients by internal id.
type ClientFinder interface {
	FindByID(ctx context.Context, id string) (*model.RegisteredClient, error)
}

// resolveClient loads the client a record points at. A missing client is errs.ErrDataIntegrity.
func resolveClient(ctx context.Context, clients ClientFinder, log *zap.Logger, kind, id, registeredClientID string) error {
	if _, err := clients.FindByID(ctx, registeredClientID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Warn(kind+" references unknown client",
				zap.String("id", id), zap.String("registered_client_id", registeredClientID))
			return fmt.Errorf("%w: registered client %q not found", errs.ErrDataIntegrity, registeredClientID)
		}
		return err
	}
	return nil
}

// ClientStore persists and loads registered clients.
type ClientStore struct {
	repo repository.ClientRepository
	log  *zap.Logger
}

var _ ClientFinder = (*ClientStore)(nil)

// NewClientStore constructs a client store. A nil logger disables logging.
func NewClientStore(repo repository.ClientRepository, log *zap.Logger) *ClientStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClientStore{repo: repo, log: log}
}

// Save upserts c by id. Grant types and authentication methods are stored as given.
func (s *ClientStore) Save(ctx context.Context, c *model.RegisteredClient) error {
	if c == nil {
		return fmt.Errorf("%w: client is nil", errs.ErrInvalidArgument)
	}
	if c.ID == "" || c.ClientID == "" {
		return fmt.Errorf("%w: client id and client_id are required", errs.ErrInvalidArgument)
	}
	rec, err := clientToRecord(c)
	if err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save client %q: %w", c.ID, err)
	}
	s.log.Debug("client saved", zap.String("id", c.ID), zap.String("client_id", c.ClientID))
	return nil
}

// FindByID loads a client by internal id.
func (s *ClientStore) FindByID(ctx context.Context, id string) (*model.RegisteredClient, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", errs.ErrInvalidArgument)
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find client %q: %w", id, err)
	}
	return clientFromRecord(rec)
}

// FindByClientID loads a client by its public client_id.
func (s *ClientStore) FindByClientID(ctx context.Context, clientID string) (*model.RegisteredClient, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client_id is required", errs.ErrInvalidArgument)
	}
	rec, err := s.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("find client_id %q: %w", clientID, err)
	}
	return clientFromRecord(rec)
}

func clientToRecord(c *model.RegisteredClient) (*repository.ClientRecord, error) {
	clientSettings, err := settings.Encode(c.ClientSettings)
	if err != nil {
		return nil, fmt.Errorf("client settings: %w", err)
	}
	tokenSettings, err := settings.Encode(c.TokenSettings)
	if err != nil {
		return nil, fmt.Errorf("token settings: %w", err)
	}
	rec := &repository.ClientRecord{
		ID:                          c.ID,
		ClientID:                    c.ClientID,
		ClientIDIssuedAt:            c.ClientIDIssuedAt,
		ClientSecretExpiresAt:       c.ClientSecretExpiresAt,
		ClientName:                  c.Name,
		ClientAuthenticationMethods: encodeSet(c.AuthenticationMethods),
		AuthorizationGrantTypes:     encodeSet(c.GrantTypes),
		RedirectURIs:                encodeSet(c.RedirectURIs),
		PostLogoutRedirectURIs:      encodeSet(c.PostLogoutRedirectURIs),
		Scopes:                      encodeSet(c.Scopes),
		ClientSettings:              clientSettings,
		TokenSettings:               tokenSettings,
	}
	if c.ClientSecret != "" {
		secret := c.ClientSecret
		rec.ClientSecret = &secret
	}
	return rec, nil
}

func clientFromRecord(rec *repository.ClientRecord) (*model.RegisteredClient, error) {
	clientSettings, err := settings.Decode(rec.ClientSettings)
	if err != nil {
		return nil, fmt.Errorf("client %q settings: %w", rec.ID, err)
	}
	tokenSettings, err := settings.Decode(rec.TokenSettings)
	if err != nil {
		return nil, fmt.Errorf("client %q token settings: %w", rec.ID, err)
	}
	c := &model.RegisteredClient{
		ID:                     rec.ID,
		ClientID:               rec.ClientID,
		ClientIDIssuedAt:       rec.ClientIDIssuedAt,
		ClientSecretExpiresAt:  rec.ClientSecretExpiresAt,
		Name:                   rec.ClientName,
		AuthenticationMethods:  decodeSet(rec.ClientAuthenticationMethods, model.ResolveAuthenticationMethod),
		GrantTypes:             decodeSet(rec.AuthorizationGrantTypes, model.ResolveGrantType),
		RedirectURIs:           decodeSet(rec.RedirectURIs, identity),
		PostLogoutRedirectURIs: decodeSet(rec.PostLogoutRedirectURIs, identity),
		Scopes:                 decodeSet(rec.Scopes, identity),
		ClientSettings:         clientSettings,
		TokenSettings:          tokenSettings,
	}
	if rec.ClientSecret != nil {
		c.ClientSecret = *rec.ClientSecret
	}
	return c, nil
}
