package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.GRPCAddress)
	assert.Equal(t, ":9090", c.MetricsAddress)
	assert.Equal(t, "pgx", c.DatabaseDriver)
	assert.Equal(t, 10*time.Second, c.GatewayTimeout)
	assert.Equal(t, 12*time.Hour, c.TokenTTL)
	assert.Equal(t, BlobsS3, c.BlobBackend)
	assert.Equal(t, 15*time.Minute, c.SignedURLTTL)
	assert.Equal(t, 2*time.Minute, c.BlobTimeout)
	assert.Equal(t, 10, c.MaxUploadFiles)
	assert.Equal(t, 50<<20, c.MaxUploadBytes)
	assert.Equal(t, "@every 6h", c.SweepSchedule)
	assert.Equal(t, 24*time.Hour, c.SweepGrace)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		c.AdminEmail = "owner@example.com"
		c.AdminPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"
		return c
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"driver", func(c *Config) { c.DatabaseDriver = "mysql" }, "database driver"},
		{"blobs", func(c *Config) { c.BlobBackend = "gcs" }, "blob backend"},
		{"secret", func(c *Config) { c.JWTSecret = "" }, "jwt secret"},
		{"ttl", func(c *Config) { c.TokenTTL = 0 }, "token ttl"},
		{"admin", func(c *Config) { c.AdminEmail = " " }, "admin email"},
		{"hash", func(c *Config) { c.AdminPasswordHash = "" }, "password hash"},
		{"grace", func(c *Config) { c.SweepGrace = 10 * time.Minute }, "sweep grace"},
		{"uploads", func(c *Config) { c.MaxUploadFiles = 50 }, "upload limits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"grpc_address": ":7000",
		"database_dsn": "file.db",
		"token_ttl":    "30m",
		"blob_backend": "memory",
		"sweep_grace":  "1h",
		"admin_email":  "owner@example.com",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", ":8000", "-unknown", "x"})
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.GRPCAddress, "flag beats json")
	assert.Equal(t, "file.db", cfg.DatabaseDSN)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, BlobsMemory, cfg.BlobBackend)
	assert.Equal(t, time.Hour, cfg.SweepGrace)
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
	assert.Equal(t, ":9090", cfg.MetricsAddress, "default kept")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig([]string{"-config", "/nonexistent/landkeeper.json"})
	require.Error(t, err)
}
