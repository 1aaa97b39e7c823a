package store

import (
	"context"
	"fmt"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository"
)

type fakeClients struct {
	byID map[string]repository.ClientRecord
	err  error
}

var _ repository.ClientRepository = (*fakeClients)(nil)

func (f *fakeClients) Upsert(_ context.Context, rec *repository.ClientRecord) error {
	if f.err != nil {
		return f.err
	}
	if f.byID == nil {
		f.byID = map[string]repository.ClientRecord{}
	}
	for id, c := range f.byID {
		if id != rec.ID && c.ClientID == rec.ClientID {
			return errs.ErrConflict
		}
	}
	f.byID[rec.ID] = *rec
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*repository.ClientRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (f *fakeClients) GetByClientID(_ context.Context, clientID string) (*repository.ClientRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.byID {
		if c.ClientID == clientID {
			cpy := c
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

type fakeConsents struct {
	rows  map[model.ConsentKey]repository.ConsentRecord
	calls int
}

var _ repository.ConsentRepository = (*fakeConsents)(nil)

func (f *fakeConsents) Upsert(_ context.Context, rec *repository.ConsentRecord) error {
	f.calls++
	if f.rows == nil {
		f.rows = map[model.ConsentKey]repository.ConsentRecord{}
	}
	f.rows[model.ConsentKey{RegisteredClientID: rec.RegisteredClientID, PrincipalName: rec.PrincipalName}] = *rec
	return nil
}

func (f *fakeConsents) Delete(_ context.Context, registeredClientID, principalName string) error {
	f.calls++
	delete(f.rows, model.ConsentKey{RegisteredClientID: registeredClientID, PrincipalName: principalName})
	return nil
}

func (f *fakeConsents) Get(_ context.Context, registeredClientID, principalName string) (*repository.ConsentRecord, error) {
	f.calls++
	rec, ok := f.rows[model.ConsentKey{RegisteredClientID: registeredClientID, PrincipalName: principalName}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &rec, nil
}

// fakeAuthorizations mimics the unique indexes on token values and the slot scan order.
type fakeAuthorizations struct {
	rows  map[string]repository.AuthorizationRecord
	calls int
}

var _ repository.AuthorizationRepository = (*fakeAuthorizations)(nil)

func slotValues(rec repository.AuthorizationRecord) []*string {
	return []*string{
		rec.AuthorizationCode.Value,
		rec.AccessToken.Value,
		rec.RefreshToken.Value,
		rec.OIDCIDToken.Value,
		rec.UserCode.Value,
		rec.DeviceCode.Value,
	}
}

func (f *fakeAuthorizations) Upsert(_ context.Context, rec *repository.AuthorizationRecord) error {
	f.calls++
	if f.rows == nil {
		f.rows = map[string]repository.AuthorizationRecord{}
	}
	for id, other := range f.rows {
		if id == rec.ID {
			continue
		}
		for _, mine := range slotValues(*rec) {
			for _, theirs := range slotValues(other) {
				if mine != nil && theirs != nil && *mine == *theirs {
					return fmt.Errorf("token value in use: %w", errs.ErrConflict)
				}
			}
		}
	}
	f.rows[rec.ID] = *rec
	return nil
}

func (f *fakeAuthorizations) Delete(_ context.Context, id string) error {
	f.calls++
	delete(f.rows, id)
	return nil
}

func (f *fakeAuthorizations) GetByID(_ context.Context, id string) (*repository.AuthorizationRecord, error) {
	f.calls++
	rec, ok := f.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &rec, nil
}

func column(rec repository.AuthorizationRecord, t model.TokenType) *string {
	switch t {
	case model.TokenTypeState:
		return rec.State
	case model.TokenTypeCode:
		return rec.AuthorizationCode.Value
	case model.TokenTypeAccessToken:
		return rec.AccessToken.Value
	case model.TokenTypeRefreshToken:
		return rec.RefreshToken.Value
	case model.TokenTypeIDToken:
		return rec.OIDCIDToken.Value
	case model.TokenTypeUserCode:
		return rec.UserCode.Value
	case model.TokenTypeDeviceCode:
		return rec.DeviceCode.Value
	}
	return nil
}

var scanOrder = []model.TokenType{
	model.TokenTypeState, model.TokenTypeCode, model.TokenTypeAccessToken, model.TokenTypeRefreshToken,
	model.TokenTypeIDToken, model.TokenTypeUserCode, model.TokenTypeDeviceCode,
}

func (f *fakeAuthorizations) GetByToken(_ context.Context, value string, t model.TokenType) (*repository.AuthorizationRecord, error) {
	f.calls++
	types := scanOrder
	if t != model.TokenTypeAny {
		types = []model.TokenType{t}
	}
	for _, tt := range types {
		for _, rec := range f.rows {
			if v := column(rec, tt); v != nil && *v == value {
				return &rec, nil
			}
		}
	}
	return nil, errs.ErrNotFound
}
