package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/landkeeper/internal/flagx"
	"github.com/dmitrijs2005/landkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// accept "30s" strings or integer nanoseconds via timex.Duration.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	Email              *string         `json:"email"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	Watch              *bool           `json:"watch"`
}

// parseJson overlays cfg with the file named by -c or -config. Absent keys
// keep their current value.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.Email != nil {
		cfg.Email = *jc.Email
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Watch != nil {
		cfg.Watch = *jc.Watch
	}
	return nil
}
