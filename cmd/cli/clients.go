package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/and161185/authkeeper/internal/crypto"
	"github.com/and161185/authkeeper/internal/model"
	"github.com/and161185/authkeeper/internal/repository/postgres"
	"github.com/and161185/authkeeper/internal/settings"
	"github.com/and161185/authkeeper/internal/store"
)

const (
	settingRequireConsent = "settings.client.require-authorization-consent"
	settingRequirePKCE    = "settings.client.require-proof-key"
	settingAccessTTL      = "settings.token.access-token-time-to-live"
	settingRefreshTTL     = "settings.token.refresh-token-time-to-live"
)

type clientAddCmd struct {
	ID             string        `long:"id" description:"internal id (uuid generated when empty)"`
	ClientID       string        `long:"client-id" required:"true" description:"public client_id"`
	Secret         string        `long:"secret" description:"client secret; generated and printed when empty"`
	Public         bool          `long:"public" description:"no secret, authentication method none"`
	Name           string        `long:"name" description:"display name (defaults to client-id)"`
	AuthMethods    []string      `long:"auth-method" description:"client authentication method (repeatable)"`
	GrantTypes     []string      `long:"grant-type" description:"authorization grant type (repeatable)"`
	RedirectURIs   []string      `long:"redirect-uri" description:"redirect URI (repeatable)"`
	PostLogoutURIs []string      `long:"post-logout-uri" description:"post-logout redirect URI (repeatable)"`
	Scopes         []string      `long:"scope" description:"scope (repeatable)"`
	RequireConsent bool          `long:"require-consent" description:"ask the user for consent"`
	RequirePKCE    bool          `long:"require-pkce" description:"require a proof key"`
	AccessTTL      time.Duration `long:"access-ttl" default:"5m" description:"access token lifetime"`
	RefreshTTL     time.Duration `long:"refresh-ttl" default:"1h" description:"refresh token lifetime"`
	BcryptCost     int           `long:"bcrypt-cost" default:"10" description:"bcrypt cost for the secret"`

	g *globalOptions
}

// validRedirectURI accepts absolute URIs without a fragment.
func validRedirectURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != "" && u.Fragment == ""
}

func generateSecret() (string, error) {
	b, err := pkgcrypto.RandBytes(32)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// build assembles the client and returns the plaintext secret to show once (empty for public clients).
func (c *clientAddCmd) build(now time.Time, hasher pkgcrypto.PasswordHasher) (*model.RegisteredClient, string, error) {
	for _, u := range append(append([]string(nil), c.RedirectURIs...), c.PostLogoutURIs...) {
		if !validRedirectURI(u) {
			return nil, "", fmt.Errorf("bad redirect uri %q", u)
		}
	}
	grants := make([]model.AuthorizationGrantType, 0, len(c.GrantTypes))
	for _, g := range c.GrantTypes {
		if g = strings.TrimSpace(g); g != "" {
			grants = append(grants, model.ResolveGrantType(g))
		}
	}
	if len(grants) == 0 {
		grants = []model.AuthorizationGrantType{model.GrantAuthorizationCode, model.GrantRefreshToken}
	}

	methods := make([]model.ClientAuthenticationMethod, 0, len(c.AuthMethods))
	for _, m := range c.AuthMethods {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, model.ResolveAuthenticationMethod(m))
		}
	}

	id := c.ID
	if id == "" {
		v, err := uuid.NewV4()
		if err != nil {
			return nil, "", err
		}
		id = v.String()
	}

	issued := now.UTC()
	rc := &model.RegisteredClient{
		ID:                     id,
		ClientID:               c.ClientID,
		ClientIDIssuedAt:       &issued,
		Name:                   choose(c.Name, c.ClientID),
		GrantTypes:             grants,
		RedirectURIs:           c.RedirectURIs,
		PostLogoutRedirectURIs: c.PostLogoutURIs,
		Scopes:                 c.Scopes,
		ClientSettings: settings.Settings{
			settingRequireConsent: c.RequireConsent,
			settingRequirePKCE:    c.RequirePKCE || c.Public,
		},
		TokenSettings: settings.Settings{
			settingAccessTTL:  int64(c.AccessTTL / time.Second),
			settingRefreshTTL: int64(c.RefreshTTL / time.Second),
		},
	}

	if c.Public {
		if c.Secret != "" {
			return nil, "", errors.New("--public and --secret are exclusive")
		}
		if len(methods) == 0 {
			methods = []model.ClientAuthenticationMethod{model.AuthMethodNone}
		}
		rc.AuthenticationMethods = methods
		return rc, "", nil
	}

	if len(methods) == 0 {
		methods = []model.ClientAuthenticationMethod{model.AuthMethodClientSecretBasic}
	}
	rc.AuthenticationMethods = methods

	secret := c.Secret
	if secret == "" {
		var err error
		if secret, err = generateSecret(); err != nil {
			return nil, "", err
		}
	}
	hash, err := hasher.Hash(secret)
	if err != nil {
		return nil, "", fmt.Errorf("hash secret: %w", err)
	}
	rc.ClientSecret = hash
	if c.Secret != "" {
		// caller already knows it
		secret = ""
	}
	return rc, secret, nil
}

func openClientStore(ctx context.Context, g *globalOptions) (*store.ClientStore, func(), error) {
	if g.DSN == "" {
		return nil, nil, errors.New("need --dsn or AUTHKEEPER_POSTGRES_DSN")
	}
	db, err := postgres.New(ctx, g.DSN)
	if err != nil {
		return nil, nil, err
	}
	return store.NewClientStore(postgres.NewClientRepo(db), nil), db.Close, nil
}

// Execute registers the client and prints it, plus a generated secret if one was made.
func (c *clientAddCmd) Execute([]string) error {
	rc, secret, err := c.build(time.Now(), pkgcrypto.NewBcryptHasher(c.BcryptCost))
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout()
	defer cancel()
	clients, closeDB, err := openClientStore(ctx, c.g)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := clients.Save(ctx, rc); err != nil {
		return err
	}
	out := map[string]any{"id": rc.ID, "clientId": rc.ClientID}
	if secret != "" {
		out["clientSecret"] = secret
	}
	printJSON(out)
	return nil
}

type clientShowCmd struct {
	ID       string `long:"id" description:"internal id"`
	ClientID string `long:"client-id" description:"public client_id"`

	g *globalOptions
}

func (c *clientShowCmd) Execute([]string) error {
	if (c.ID == "") == (c.ClientID == "") {
		return errors.New("need exactly one of --id or --client-id")
	}
	ctx, cancel := withTimeout()
	defer cancel()
	clients, closeDB, err := openClientStore(ctx, c.g)
	if err != nil {
		return err
	}
	defer closeDB()

	var rc *model.RegisteredClient
	if c.ID != "" {
		rc, err = clients.FindByID(ctx, c.ID)
	} else {
		rc, err = clients.FindByClientID(ctx, c.ClientID)
	}
	if err != nil {
		return err
	}
	if rc.ClientSecret != "" {
		rc.ClientSecret = "(hashed)"
	}
	printJSON(rc)
	return nil
}
