package secrets

import "errors"

var (
	// ErrEmptySecret is returned when a zero-length secret is supplied.
	ErrEmptySecret = errors.New("secrets: empty secret")

	ErrEncryptionFailed     = errors.New("secrets: encryption failed")
	ErrMalformedEncoding    = errors.New("secrets: malformed encoding")
	ErrAuthenticationFailed = errors.New("secrets: authentication failed")
)
