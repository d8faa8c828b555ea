package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/flagx"
	"github.com/dmitrijs2005/landkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Interval
// fields use timex.Duration so both "15m" and integer nanoseconds parse.
// Absent fields keep their current value.
type JsonConfig struct {
	GRPCAddress       *string         `json:"grpc_address"`
	MetricsAddress    *string         `json:"metrics_address"`
	DatabaseDriver    *string         `json:"database_driver"`
	DatabaseDSN       *string         `json:"database_dsn"`
	GatewayTimeout    *timex.Duration `json:"gateway_timeout"`
	JWTSecret         *string         `json:"jwt_secret"`
	TokenTTL          *timex.Duration `json:"token_ttl"`
	AdminEmail        *string         `json:"admin_email"`
	AdminPasswordHash *string         `json:"admin_password_hash"`
	BlobBackend       *string         `json:"blob_backend"`
	S3AccessKey       *string         `json:"s3_access_key"`
	S3SecretKey       *string         `json:"s3_secret_key"`
	S3Region          *string         `json:"s3_region"`
	S3Endpoint        *string         `json:"s3_endpoint"`
	S3PublicBaseURL   *string         `json:"s3_public_base_url"`
	S3UsePathStyle    *bool           `json:"s3_use_path_style"`
	SignedURLTTL      *timex.Duration `json:"signed_url_ttl"`
	BlobTimeout       *timex.Duration `json:"blob_timeout"`
	MaxUploadFiles    *int            `json:"max_upload_files"`
	MaxUploadBytes    *int            `json:"max_upload_bytes"`
	SweepSchedule     *string         `json:"sweep_schedule"`
	SweepGrace        *timex.Duration `json:"sweep_grace"`
	LogFormat         *string         `json:"log_format"`
}

// parseJson overlays the file named by -c/-config, if any, onto config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.GRPCAddress, c.GRPCAddress)
	setString(&config.MetricsAddress, c.MetricsAddress)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setDuration(&config.GatewayTimeout, c.GatewayTimeout)
	setString(&config.JWTSecret, c.JWTSecret)
	setDuration(&config.TokenTTL, c.TokenTTL)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPasswordHash, c.AdminPasswordHash)
	setString(&config.BlobBackend, c.BlobBackend)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3Endpoint, c.S3Endpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	if c.S3UsePathStyle != nil {
		config.S3UsePathStyle = *c.S3UsePathStyle
	}
	setDuration(&config.SignedURLTTL, c.SignedURLTTL)
	setDuration(&config.BlobTimeout, c.BlobTimeout)
	if c.MaxUploadFiles != nil {
		config.MaxUploadFiles = *c.MaxUploadFiles
	}
	if c.MaxUploadBytes != nil {
		config.MaxUploadBytes = *c.MaxUploadBytes
	}
	setString(&config.SweepSchedule, c.SweepSchedule)
	setDuration(&config.SweepGrace, c.SweepGrace)
	setString(&config.LogFormat, c.LogFormat)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
