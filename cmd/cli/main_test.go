package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "authkeeper")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	_ = withTmpConfig(t)
	got := cfgDir()
	base := os.Getenv("XDG_CONFIG_HOME") + "/authkeeper"
	if got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
	if !strings.HasPrefix(userIDPath(), base) || !strings.HasSuffix(userIDPath(), "user_id") {
		t.Fatalf("userIDPath unexpected: %s", userIDPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken("tok", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken()
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	st, err := os.Stat(tokenPath())
	if err != nil || st.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode: %v %v", st, err)
	}
	if err := saveToken("tok2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_saveLoadUserID_And_Clear(t *testing.T) {
	base := withTmpConfig(t)

	if _, err := loadUserID(); err == nil {
		t.Fatalf("expected error when user_id missing")
	}
	if err := saveUserID("abc-123\n"); err != nil {
		t.Fatalf("saveUserID: %v", err)
	}
	got, err := loadUserID()
	if err != nil || got != "abc-123" {
		t.Fatalf("loadUserID: %q %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(base, "user_id")); err != nil {
		t.Fatalf("user_id file missing: %v", err)
	}

	_ = saveToken("tok", time.Now().Add(time.Minute))
	clearSession()
	if _, err := loadUserID(); err == nil {
		t.Fatalf("user id must be gone after clearSession")
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("token must be gone after clearSession")
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	printJSON(map[string]any{"a": 1})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if json.Unmarshal(out, &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", string(out))
	}
	if !bytes.Contains(out, []byte("\n")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_printProto_UsesFieldNames(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	printProto(&pb.UserProfile{Id: "u-1", Email: "a@example.com", Roles: []string{"USER"}})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("printProto produced invalid json: %s", string(out))
	}
	if m["id"] != "u-1" || m["email"] != "a@example.com" {
		t.Fatalf("unexpected fields: %v", m)
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS when secure")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext bearerCreds must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}

	if _, err := loadTLS(filepath.Join(t.TempDir(), "missing.pem"), false); err == nil {
		t.Fatalf("missing CA should error")
	}
}

func Test_choose(t *testing.T) {
	t.Parallel()
	if choose("a", "b") != "a" {
		t.Fatalf("choose a")
	}
	if choose("", "b") != "b" {
		t.Fatalf("choose b")
	}
}

func Test_withTimeout(t *testing.T) {
	t.Parallel()
	ctx, cancel := withTimeout()
	defer cancel()
	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("deadline not set")
	}
	if rem := time.Until(dl); rem < 25*time.Second || rem > 35*time.Second {
		t.Fatalf("unexpected timeout window: %v", rem)
	}
}

func Test_newParser_Commands(t *testing.T) {
	t.Parallel()

	var g globalOptions
	p := newParser(&g)
	for _, name := range []string{"version", "signup", "login", "logout", "validate", "whoami", "client-add", "client-show"} {
		if p.Find(name) == nil {
			t.Fatalf("command %s not registered", name)
		}
	}
	if _, err := p.ParseArgs([]string{"--plaintext", "--addr", "h:1", "version"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Addr != "h:1" || !g.Plaintext {
		t.Fatalf("globals not parsed: %+v", g)
	}
}
