package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/cryptox"
	"github.com/dmitrijs2005/landkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.GRPCAddress = "127.0.0.1:0"
	c.MetricsAddress = "127.0.0.1:0"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name())
	c.BlobBackend = config.BlobsMemory
	c.AdminEmail = "owner@example.com"
	c.AdminPasswordHash = cryptox.HashPassword("hunter22")
	c.LogFormat = "text"
	return c
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := testConfig(t)
	c.AdminEmail = ""

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin email")
}

func TestNewApp_SQLiteUsesPublishingFeed(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storage.Close() })

	assert.Nil(t, app.listener, "sqlite has no notification listener")
	assert.NotNil(t, app.sweeper)
	assert.NotNil(t, app.sessions)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Equal(t, 0, app.sessions.Len())
}

func TestApp_RunRejectsBadSchedule(t *testing.T) {
	c := testConfig(t)
	c.SweepSchedule = "not a schedule"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storage.Close() })

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule sweep")
}
