// Package client talks to the landkeeper AdminService.
//
// The package provides:
//  1. The Client interface the CLI is written against.
//  2. GRPCClient, which manages the connection, attaches the session token
//     to every call and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrSessionExpired, ErrNotFound.
// Validation and conflict failures carry the server's message verbatim.
package client
