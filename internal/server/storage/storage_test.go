package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memDSN(t *testing.T) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name())
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()

	m, err := Open(ctx, "sqlite", memDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	assert.Equal(t, "sqlite", m.Driver())

	gw := m.Gateway()
	row, err := gw.Insert(ctx, models.TableMessages, models.Row{
		"name":  "Ann",
		"email": "ann@example.com",
		"body":  "Hello",
	})
	require.NoError(t, err)

	rows, err := gw.List(ctx, models.TableMessages, gateway.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID(), rows[0].ID())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn")
	require.Error(t, err)
}

func TestOpen_MigrationError(t *testing.T) {
	orig := applyMigrations
	t.Cleanup(func() { applyMigrations = orig })

	boom := errors.New("boom")
	var gotDriver string
	applyMigrations = func(ctx context.Context, db *sql.DB, driver string) error {
		gotDriver = driver
		return boom
	}

	_, err := Open(context.Background(), "sqlite", memDSN(t))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "sqlite", gotDriver)
}
