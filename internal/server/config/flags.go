package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/flagx"
)

var knownFlags = []string{
	"-a", "-m", "-driver", "-d", "-s", "-t", "-admin", "-admin-hash",
	"-blobs", "-u", "-p", "-g", "-e", "-public-url", "-sweep", "-log",
}

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-a string            gRPC bind address (e.g., ":50051")
//	-m string            metrics bind address, empty to disable
//	-driver string       database driver: pgx or sqlite
//	-d string            database DSN
//	-s string            JWT HMAC secret key
//	-t int               session token validity, minutes
//	-admin string        admin email
//	-admin-hash string   admin argon2id password hash
//	-blobs string        blob backend: s3 or memory
//	-u / -p string       S3 access key / secret key
//	-g string            S3 region
//	-e string            S3 endpoint (e.g., "http://127.0.0.1:9000")
//	-public-url string   base URL public objects are served from
//	-sweep string        orphan sweep cron spec
//	-log string          log format: json, text or zap
//
// Unknown flags are filtered out by flagx.FilterArgs so other components
// can share the command line.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.GRPCAddress, "a", config.GRPCAddress, "address and port to run server")
	fs.StringVar(&config.MetricsAddress, "m", config.MetricsAddress, "metrics address")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "secret key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.AdminEmail, "admin", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminPasswordHash, "admin-hash", config.AdminPasswordHash, "admin password hash")
	fs.StringVar(&config.BlobBackend, "blobs", config.BlobBackend, "blob backend")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3Endpoint, "e", config.S3Endpoint, "S3 endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "public-url", config.S3PublicBaseURL, "public object base URL")
	fs.StringVar(&config.SweepSchedule, "sweep", config.SweepSchedule, "orphan sweep schedule")
	fs.StringVar(&config.LogFormat, "log", config.LogFormat, "log format")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
	return nil
}
