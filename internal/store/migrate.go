package store

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/flightrec/migrations"
)

// ApplyMigrations runs every embedded .sql file not yet recorded in
// schema_migrations. Each file is applied and recorded in one transaction.
func (s *BaseStore) ApplyMigrations(ctx context.Context) error {
	return s.applyMigrations(ctx, migrations.FS)
}

func (s *BaseStore) applyMigrations(ctx context.Context, fsys fs.FS) error {
	if _, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied BIGINT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, path.Ext(name))

		var count int
		err := s.DB.GetContext(ctx, &count, s.Converter(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`), version)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", version, err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		sql := string(content)
		if s.TranslateSQL != nil {
			sql = s.TranslateSQL(sql)
		}

		err = s.inTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, sql); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				s.Converter(`INSERT INTO schema_migrations (version, applied) VALUES (?, ?)`),
				version, time.Now().Unix())
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		logger.Info.Printf("Applied migration %s", version)
	}

	return nil
}
