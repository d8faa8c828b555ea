// Package config loads runtime configuration for the landkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-e string   admin email
//	-t int      request timeout (seconds)
//	-w bool     stream notices while signed in
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "email": "owner@example.com",
//	  "request_timeout": "30s",
//	  "watch": true
//	}
package config
