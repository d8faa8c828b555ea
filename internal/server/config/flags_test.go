package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := []string{
		"-a", ":6000",
		"-m=",
		"-driver", "sqlite",
		"-d", "data.db",
		"-s", "flag-secret",
		"-t", "90",
		"-admin", "owner@example.com",
		"-blobs", "memory",
		"-e", "http://s3.local",
		"-sweep", "@hourly",
		"-log", "zap",
		"-test.v", "ignored",
	}
	require.NoError(t, parseFlags(cfg, args))

	assert.Equal(t, ":6000", cfg.GRPCAddress)
	assert.Equal(t, "", cfg.MetricsAddress)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "data.db", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
	assert.Equal(t, BlobsMemory, cfg.BlobBackend)
	assert.Equal(t, "http://s3.local", cfg.S3Endpoint)
	assert.Equal(t, "@hourly", cfg.SweepSchedule)
	assert.Equal(t, "zap", cfg.LogFormat)
}

func Test_parseFlags_KeepsTokenTTL(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFlags(cfg, nil))
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
}

func Test_parseFlags_BadValue(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.Error(t, parseFlags(cfg, []string{"-t", "soon"}))
}
