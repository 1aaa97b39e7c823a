// Package migrate applies embedded SQL migrations on startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/and161185/authkeeper/migrations"
)

// Up runs all pending migrations from the embedded filesystem and logs each applied version.
func Up(ctx context.Context, dsn string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := newProvider(db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied",
			zap.Int64("version", r.Source.Version),
			zap.String("file", r.Source.Path),
			zap.Duration("took", r.Duration),
		)
	}
	if len(results) == 0 {
		log.Debug("schema up to date")
	}
	return nil
}

func newProvider(db *sql.DB, fsys fs.FS) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}
