package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/settings"
)

func newAuthorizationStore(t *testing.T) (*AuthorizationStore, *fakeAuthorizations, *fakeClients) {
	t.Helper()
	clients := &fakeClients{}
	cs := NewClientStore(clients, nil)
	require.NoError(t, cs.Save(context.Background(), demoClient()))
	repo := &fakeAuthorizations{}
	return NewAuthorizationStore(repo, cs, zaptest.NewLogger(t)), repo, clients
}

func fullAuthorization(id, accessToken string) *model.Authorization {
	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	expires := issued.Add(5 * time.Minute)
	return &model.Authorization{
		ID:                 id,
		RegisteredClientID: "c-1",
		PrincipalName:      "alice@example.com",
		GrantType:          model.GrantAuthorizationCode,
		AuthorizedScopes:   []string{"openid", "profile"},
		Attributes:         settings.Settings{"java.security.Principal": map[string]any{"name": "alice"}},
		State:              "st-" + id,
		AuthorizationCode: &model.Token{
			Value: "code-" + id, IssuedAt: &issued, ExpiresAt: &expires,
			Metadata: settings.Settings{"metadata.token.invalidated": true},
		},
		AccessToken: &model.AccessToken{
			Token:     model.Token{Value: accessToken, IssuedAt: &issued, ExpiresAt: &expires, Metadata: settings.Settings{}},
			TokenType: "Bearer",
			Scopes:    []string{"openid", "profile"},
		},
		RefreshToken: &model.Token{Value: "rt-" + id, IssuedAt: &issued, Metadata: settings.Settings{}},
		IDToken: &model.IDToken{
			Token:  model.Token{Value: "idt-" + id, IssuedAt: &issued, ExpiresAt: &expires, Metadata: settings.Settings{}},
			Claims: settings.Settings{"sub": "alice", "aud": []any{"oidc-client"}},
		},
	}
}

func TestAuthorizationStore_RoundTrip(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()
	in := fullAuthorization("a1", "AT1")

	require.NoError(t, s.Save(ctx, in))
	out, err := s.FindByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Nil(t, out.UserCode)
	require.Nil(t, out.DeviceCode)
}

func TestAuthorizationStore_EmptySlotsAndSets(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()

	in := &model.Authorization{
		ID:                 "a-min",
		RegisteredClientID: "c-1",
		PrincipalName:      "svc",
		GrantType:          model.GrantClientCredentials,
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.FindByID(ctx, "a-min")
	require.NoError(t, err)
	require.Empty(t, out.AuthorizedScopes)
	require.NotNil(t, out.Attributes)
	require.Empty(t, out.State)
	require.Nil(t, out.AuthorizationCode)
	require.Nil(t, out.AccessToken)
	require.Nil(t, out.RefreshToken)
	require.Nil(t, out.IDToken)
}

func TestAuthorizationStore_FindByToken(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, fullAuthorization("a1", "AT1")))

	got, err := s.FindByToken(ctx, "AT1", model.TokenTypeAny)
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)

	got, err = s.FindByToken(ctx, "AT1", model.TokenTypeAccessToken)
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)

	got, err = s.FindByToken(ctx, "st-a1", model.TokenTypeAny)
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)

	_, err = s.FindByToken(ctx, "AT1", model.TokenTypeRefreshToken)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = s.FindByToken(ctx, "unknown", model.TokenTypeAny)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = s.FindByToken(ctx, "", model.TokenTypeAny)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestAuthorizationStore_DuplicateAccessTokenConflicts(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, fullAuthorization("a1", "AT1")))

	err := s.Save(ctx, fullAuthorization("a2", "AT1"))
	require.ErrorIs(t, err, errs.ErrConflict)

	// original is untouched
	got, err := s.FindByToken(ctx, "AT1", model.TokenTypeAny)
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)
	_, err = s.FindByID(ctx, "a2")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAuthorizationStore_SaveSameIDReplaces(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, fullAuthorization("a1", "AT1")))

	next := fullAuthorization("a1", "AT2")
	require.NoError(t, s.Save(ctx, next))

	_, err := s.FindByToken(ctx, "AT1", model.TokenTypeAccessToken)
	require.ErrorIs(t, err, errs.ErrNotFound)
	got, err := s.FindByToken(ctx, "AT2", model.TokenTypeAccessToken)
	require.NoError(t, err)
	require.Equal(t, next, got)
}

func TestAuthorizationStore_MissingClientIsIntegrityError(t *testing.T) {
	s, _, clients := newAuthorizationStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, fullAuthorization("a1", "AT1")))
	delete(clients.byID, "c-1")

	_, err := s.FindByID(ctx, "a1")
	require.ErrorIs(t, err, errs.ErrDataIntegrity)
	_, err = s.FindByToken(ctx, "AT1", model.TokenTypeAny)
	require.ErrorIs(t, err, errs.ErrDataIntegrity)
}

func TestAuthorizationStore_Remove(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()
	a := fullAuthorization("a1", "AT1")
	require.NoError(t, s.Save(ctx, a))

	require.NoError(t, s.Remove(ctx, a))
	require.NoError(t, s.Remove(ctx, a))
	_, err := s.FindByID(ctx, "a1")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAuthorizationStore_InvalidArgumentsBeforeIO(t *testing.T) {
	s, repo, _ := newAuthorizationStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Save(ctx, nil), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.Save(ctx, &model.Authorization{}), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.Remove(ctx, nil), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.Remove(ctx, &model.Authorization{}), errs.ErrInvalidArgument)
	_, err := s.FindByID(ctx, "")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	require.Zero(t, repo.calls)
}

func TestAuthorizationStore_CorruptMetadata(t *testing.T) {
	s, repo, _ := newAuthorizationStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, fullAuthorization("a1", "AT1")))

	rec := repo.rows["a1"]
	bad := "[broken"
	rec.AccessToken.Metadata = &bad
	repo.rows["a1"] = rec

	_, err := s.FindByID(ctx, "a1")
	require.ErrorIs(t, err, errs.ErrCorruptSettings)
}

func TestAuthorizationStore_SettingsNumbersRoundTrip(t *testing.T) {
	s, _, _ := newAuthorizationStore(t)
	ctx := context.Background()

	in := fullAuthorization("a1", "AT1")
	in.Attributes = settings.Settings{"nonce-counter": int64(1<<53 + 1), "weights": []any{0.1, 2.0, int64(3)}}
	in.AccessToken.Metadata = settings.Settings{"exp": int64(1717236300), "nested": map[string]any{"n": int64(-9)}}
	in.IDToken.Claims = settings.Settings{"sub": "alice", "auth_time": int64(1717236000)}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.FindByToken(ctx, "AT1", model.TokenTypeAccessToken)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestAuthorizationStore_SaveRequiresKnownClient(t *testing.T) {
	s, repo, _ := newAuthorizationStore(t)
	ctx := context.Background()

	a := fullAuthorization("a1", "AT1")
	a.RegisteredClientID = "missing"
	require.ErrorIs(t, s.Save(ctx, a), errs.ErrDataIntegrity)

	a.RegisteredClientID = ""
	require.ErrorIs(t, s.Save(ctx, a), errs.ErrInvalidArgument)
	require.Zero(t, repo.calls)
}
