package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFS_MigrationsHaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) < 3 {
		t.Fatalf("expected at least 3 migrations, got %v", files)
	}
	for _, f := range files {
		b, err := fs.ReadFile(FS, f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") || !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s: missing goose annotations", f)
		}
	}
}

func TestFS_TokenColumnsAreUnique(t *testing.T) {
	b, err := fs.ReadFile(FS, "00003_oauth2.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, col := range []string{
		"state", "authorization_code_value", "access_token_value", "refresh_token_value",
		"oidc_id_token_value", "user_code_value", "device_code_value",
	} {
		if !strings.Contains(string(b), "(md5("+col+"))") {
			t.Fatalf("no unique index on %s", col)
		}
	}
}
