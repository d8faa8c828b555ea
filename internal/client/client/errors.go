package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired, sign in again")
	ErrNotFound       = errors.New("not found")
	ErrNotSignedIn    = errors.New("not signed in")
)
