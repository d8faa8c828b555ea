package config

import "time"

// Config holds runtime settings for the landkeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the AdminService gRPC endpoint.
//   - Email: admin email offered at the sign-in prompt.
//   - RequestTimeout: bound on every unary call.
//   - Watch: stream new notices to the terminal while signed in.
type Config struct {
	ServerEndpointAddr string
	Email              string
	RequestTimeout     time.Duration
	Watch              bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 30 * time.Second
	c.Watch = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
