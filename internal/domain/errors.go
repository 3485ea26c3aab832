package domain

import "errors"

// Sentinel errors for the whole core. Storage and usecase layers wrap these
// with %w; the handler layer maps them onto HTTP statuses. Raw storage
// errors (including unique-constraint races) must be translated to one of
// these before they cross a port boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrNoToken            = errors.New("request does not contain an access token")
	ErrInvalidToken       = errors.New("signature verification failed")
	ErrExpiredToken       = errors.New("session expired")
)
