// Package storage opens the server database for the configured driver,
// applies the embedded goose migrations and vends the SQL table gateway
// bound to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// applyMigrations is a seam for testing migrations.Apply.
var applyMigrations = migrations.Apply

// Manager owns the database handle for the lifetime of the server.
type Manager struct {
	db      *sql.DB
	driver  string
	dialect gateway.Dialect
}

// Open connects with driver ("pgx" or "sqlite"), verifies the connection
// and brings the schema up to date.
func Open(ctx context.Context, driver, dsn string) (*Manager, error) {
	dialect, err := gateway.DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if dialect == gateway.SQLite {
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := applyMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Manager{db: db, driver: driver, dialect: dialect}, nil
}

func (m *Manager) DB() *sql.DB { return m.db }

func (m *Manager) Driver() string { return m.driver }

// Gateway returns a table gateway over the default admin schema.
func (m *Manager) Gateway(opts ...gateway.Option) *gateway.SQLGateway {
	return gateway.NewSQLGateway(m.db, m.dialect, gateway.DefaultSchema(), opts...)
}

func (m *Manager) Close() error {
	return m.db.Close()
}
