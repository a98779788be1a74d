package token

import "errors"

var (
	ErrDecryptFailed    = errors.New("token: decrypt failed")
	ErrMalformedPayload = errors.New("token: malformed payload")
	ErrEmptySubject     = errors.New("token: empty subject")
)
