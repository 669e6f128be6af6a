package auth

import "errors"

var (
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("authorization token required")

	// ErrInvalidCredentials is returned on login with a bad username/password
	// pair. One error for both cases so callers cannot probe usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
