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

func demoClient() *model.RegisteredClient {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.RegisteredClient{
		ID:                    "c-1",
		ClientID:              "oidc-client",
		ClientIDIssuedAt:      &issued,
		ClientSecret:          "$2a$10$hash",
		Name:                  "Démo клиент",
		AuthenticationMethods: []model.ClientAuthenticationMethod{model.AuthMethodClientSecretBasic},
		GrantTypes: []model.AuthorizationGrantType{
			model.GrantClientCredentials, model.GrantAuthorizationCode,
		},
		RedirectURIs:           []string{"https://oauth.pstmn.io/v1/callback", "http://127.0.0.1:8080/login/oauth2/code/oidc-client"},
		PostLogoutRedirectURIs: []string{"http://127.0.0.1:8080/"},
		Scopes:                 []string{"openid", "profile"},
		ClientSettings:         settings.Settings{"settings.client.require-authorization-consent": true},
		TokenSettings:          settings.Settings{"settings.token.access-token-time-to-live": 300.0},
	}
}

func TestClientStore_SaveFind_RoundTrip(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, zaptest.NewLogger(t))
	ctx := context.Background()
	in := demoClient()

	require.NoError(t, s.Save(ctx, in))

	byID, err := s.FindByID(ctx, "c-1")
	require.NoError(t, err)
	byClientID, err := s.FindByClientID(ctx, "oidc-client")
	require.NoError(t, err)
	require.Equal(t, byID, byClientID)

	require.Equal(t, in.ClientID, byID.ClientID)
	require.Equal(t, in.ClientSecret, byID.ClientSecret)
	require.Equal(t, in.Name, byID.Name)
	require.Equal(t, in.ClientIDIssuedAt, byID.ClientIDIssuedAt)
	require.ElementsMatch(t, in.GrantTypes, byID.GrantTypes)
	require.ElementsMatch(t, in.AuthenticationMethods, byID.AuthenticationMethods)
	require.ElementsMatch(t, in.RedirectURIs, byID.RedirectURIs)
	require.ElementsMatch(t, in.PostLogoutRedirectURIs, byID.PostLogoutRedirectURIs)
	require.ElementsMatch(t, in.Scopes, byID.Scopes)
	require.Equal(t, in.ClientSettings, byID.ClientSettings)
	require.Equal(t, in.TokenSettings, byID.TokenSettings)
}

func TestClientStore_GrantTypeOrderIrrelevant(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()

	a := demoClient()
	a.GrantTypes = []model.AuthorizationGrantType{model.GrantAuthorizationCode, model.GrantClientCredentials}
	require.NoError(t, s.Save(ctx, a))
	storedA := repo.byID["c-1"].AuthorizationGrantTypes

	b := demoClient()
	b.GrantTypes = []model.AuthorizationGrantType{model.GrantClientCredentials, model.GrantAuthorizationCode, model.GrantClientCredentials}
	require.NoError(t, s.Save(ctx, b))
	storedB := repo.byID["c-1"].AuthorizationGrantTypes

	require.Equal(t, storedA, storedB)
	require.Equal(t, "authorization_code,client_credentials", storedA)
}

func TestClientStore_EmptySetsAndNoSecret(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()

	in := &model.RegisteredClient{ID: "c-2", ClientID: "public", Name: "Public"}
	require.NoError(t, s.Save(ctx, in))
	require.Nil(t, repo.byID["c-2"].ClientSecret)
	require.Equal(t, "{}", repo.byID["c-2"].ClientSettings)

	out, err := s.FindByID(ctx, "c-2")
	require.NoError(t, err)
	require.Empty(t, out.ClientSecret)
	require.Empty(t, out.Scopes)
	require.Empty(t, out.RedirectURIs)
	require.Empty(t, out.GrantTypes)
	require.NotNil(t, out.ClientSettings)
	require.Empty(t, out.ClientSettings)
}

func TestClientStore_CustomValuesPreserved(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()

	in := demoClient()
	in.GrantTypes = []model.AuthorizationGrantType{"urn:example:custom-grant"}
	in.AuthenticationMethods = []model.ClientAuthenticationMethod{"tls_client_auth"}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.FindByID(ctx, in.ID)
	require.NoError(t, err)
	require.Equal(t, []model.AuthorizationGrantType{"urn:example:custom-grant"}, out.GrantTypes)
	require.True(t, out.GrantTypes[0].IsCustom())
	require.True(t, out.AuthenticationMethods[0].IsCustom())
}

func TestClientStore_InvalidArguments(t *testing.T) {
	s := NewClientStore(&fakeClients{}, nil)
	ctx := context.Background()

	require.ErrorIs(t, s.Save(ctx, nil), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.Save(ctx, &model.RegisteredClient{ClientID: "x"}), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.Save(ctx, &model.RegisteredClient{ID: "x"}), errs.ErrInvalidArgument)

	_, err := s.FindByID(ctx, "")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.FindByClientID(ctx, "")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestClientStore_NotFoundAndConflict(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()

	_, err := s.FindByID(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.FindByClientID(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, s.Save(ctx, demoClient()))
	dup := demoClient()
	dup.ID = "c-other"
	require.ErrorIs(t, s.Save(ctx, dup), errs.ErrConflict)
}

func TestClientStore_CorruptSettings(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, demoClient()))

	rec := repo.byID["c-1"]
	rec.TokenSettings = "{not json"
	repo.byID["c-1"] = rec

	_, err := s.FindByID(ctx, "c-1")
	require.ErrorIs(t, err, errs.ErrCorruptSettings)
}

func TestClientStore_UnsupportedSettingValue(t *testing.T) {
	s := NewClientStore(&fakeClients{}, nil)
	in := demoClient()
	in.ClientSettings = settings.Settings{"fn": func() {}}
	require.ErrorIs(t, s.Save(context.Background(), in), errs.ErrInvalidArgument)
}

func TestSetCodec(t *testing.T) {
	require.Equal(t, "", encodeSet([]string(nil)))
	require.Equal(t, "a,b", encodeSet([]string{" b ", "a", "", "b"}))
	require.Equal(t, []string{}, decodeSet("", identity))
	require.Equal(t, []string{"a", "b"}, decodeSet("a, b,,a", identity))
}

func TestClientStore_SettingsNumbersRoundTrip(t *testing.T) {
	repo := &fakeClients{}
	s := NewClientStore(repo, nil)
	ctx := context.Background()

	in := demoClient()
	in.TokenSettings = settings.Settings{
		"settings.token.access-token-time-to-live": int64(300),
		"settings.token.max-id":                    int64(1<<53 + 1),
		"settings.token.ratio":                     0.5,
		"settings.token.whole-float":               60.0,
	}
	in.ClientSettings = settings.Settings{
		"nested": map[string]any{"limits": []any{int64(1<<62 + 7), 2.0}},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.FindByID(ctx, "c-1")
	require.NoError(t, err)
	require.Equal(t, in.TokenSettings, out.TokenSettings)
	require.Equal(t, in.ClientSettings, out.ClientSettings)
}
