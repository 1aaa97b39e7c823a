package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

const secret = "0123456789abcdef-secret"

func TestLoad_DefaultsPlusEnv(t *testing.T) {
	cfg, err := load("", environ(
		"AUTHKEEPER_POSTGRES_DSN=postgres://u:p@db/auth",
		"AUTHKEEPER_AUTH_SIGNINGSECRET="+secret,
		"AUTHKEEPER_AUTH_TOKENTTL=30m",
		"AUTHKEEPER_LIMITER_MAXFAILURES=3",
		"UNRELATED=1",
	))
	require.NoError(t, err)
	require.Equal(t, ":8443", cfg.Server.Addr)
	require.Equal(t, "postgres://u:p@db/auth", cfg.Postgres.DSN)
	require.Equal(t, secret, cfg.Auth.SigningSecret)
	require.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 3, cfg.Limiter.MaxFailures)
	require.Equal(t, 15*time.Minute, cfg.Limiter.Window)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Backend.APIKey)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
server:
  addr: ":9000"
  dev: true
postgres:
  dsn: "postgres://file/db"
auth:
  signingSecret: "` + secret + `"
  tokenTTL: 2h
backend:
  apiKey: "backend-key-0123456789"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := load(path, environ("AUTHKEEPER_SERVER_ADDR=:9100"))
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.Server.Addr)
	require.True(t, cfg.Server.Dev)
	require.Equal(t, "postgres://file/db", cfg.Postgres.DSN)
	require.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "backend-key-0123456789", cfg.Backend.APIKey)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load("", environ("AUTHKEEPER_AUTH_SIGNINGSECRET="+secret))
	require.Error(t, err, "dsn is required")

	_, err = load("", environ("AUTHKEEPER_POSTGRES_DSN=x", "AUTHKEEPER_AUTH_SIGNINGSECRET=short"))
	require.Error(t, err, "secret too short")

	_, err = load("", environ("AUTHKEEPER_POSTGRES_DSN=x", "AUTHKEEPER_AUTH_SIGNINGSECRET="+secret, "AUTHKEEPER_LOG_LEVEL=loud"))
	require.Error(t, err, "bad log level")

	_, err = load("", environ("AUTHKEEPER_POSTGRES_DSN=x", "AUTHKEEPER_AUTH_SIGNINGSECRET="+secret, "AUTHKEEPER_SERVER_TLSCERT=cert.pem"))
	require.Error(t, err, "cert without key")

	_, err = load(filepath.Join(t.TempDir(), "missing.yaml"), environ())
	require.Error(t, err)
}

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth":    map[string]any{"signingSecret": "", "tokenTTL": "1h"},
		"server":  map[string]any{"tlsCert": ""},
		"backend": map[string]any{"apiKey": ""},
	}
	tests := map[string]string{
		"AUTH_SIGNINGSECRET": "auth.signingSecret",
		"AUTH_TOKENTTL":      "auth.tokenTTL",
		"SERVER_TLSCERT":     "server.tlsCert",
		"BACKEND_APIKEY":     "backend.apiKey",
		"NEW_FEATURE_FLAG":   "new.feature.flag",
	}
	for in, want := range tests {
		if got := canonicalizeEnvKey(in, existing); got != want {
			t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", in, got, want)
		}
	}
}
