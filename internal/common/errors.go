// Package common defines shared constants and error values used by the
// gateways, controllers and transport layers. Callers should use errors.Is
// and errors.As to match these values.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Gateway-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// GatewayError is the tagged failure returned by the remote table and blob
// gateways. Message is safe to show to the admin.
type GatewayError struct {
	Op      string
	Target  string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Target, e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NewGatewayError wraps err, keeping its text as the human-readable message.
func NewGatewayError(op, target string, err error) *GatewayError {
	return &GatewayError{Op: op, Target: target, Message: err.Error(), Err: err}
}

// ValidationError reports local, per-field input problems found before any
// network call. Fields maps a field name to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, k := range names {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrorValidation }

// Add records a message for field. The first message for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil returns e when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
