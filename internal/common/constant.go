// Package common contains shared constants and error types used across
// landkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// admin session token on inbound requests.
const AccessTokenHeaderName = "access_token"
