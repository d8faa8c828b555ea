package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-e string   admin email
//	-t int      request timeout in seconds
//	-w bool     stream notices while signed in
//
// Other flags are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Email, "e", cfg.Email, "admin email")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Watch, "w", cfg.Watch, "stream notices")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-e", "-t", "-w"})); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
