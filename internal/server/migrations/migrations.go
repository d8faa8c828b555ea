// Package migrations embeds the goose SQL migrations for every supported
// database driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, fsys fs.FS, dialect string) error {
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetLogger(goose.NopLogger())
	return goose.UpContext(ctx, db, ".")
}

// Apply runs every pending migration for driver ("pgx" or "sqlite").
func Apply(ctx context.Context, db *sql.DB, driver string) error {
	dir, dialect, err := dirFor(driver)
	if err != nil {
		return err
	}
	sub, err := fs.Sub(files, dir)
	if err != nil {
		return err
	}
	if err := gooseUp(ctx, db, sub, dialect); err != nil {
		return fmt.Errorf("apply %s migrations: %w", dir, err)
	}
	return nil
}

func dirFor(driver string) (dir, dialect string, err error) {
	switch driver {
	case "pgx", "postgres":
		return "postgres", "pgx", nil
	case "sqlite", "sqlite3":
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}
