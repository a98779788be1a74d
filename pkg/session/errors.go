package session

import (
	"errors"
	"net/http"
)

var (
	ErrNoSecret        = errors.New("session.no_secret")
	ErrNoAccountLookup = errors.New("session.no_account_lookup")

	ErrMissingCredential   = errors.New("session.missing_credential")
	ErrMalformedCredential = errors.New("session.malformed_credential")
	ErrUnsupportedScheme   = errors.New("session.unsupported_scheme")
	ErrExpired             = errors.New("session.expired")
	ErrSubjectMismatch     = errors.New("session.subject_mismatch")
	ErrUnknownAccount      = errors.New("session.unknown_account")
	ErrForbidden           = errors.New("session.forbidden")

	// ErrAccountNotFound is returned by AccountLookup implementations on a miss.
	ErrAccountNotFound = errors.New("session.account_not_found")
)

// Challenge header values.
const (
	ChallengeCookie = "Cookie"
)

// AuthError is a rejected credential. Status is 401 or 403; Challenge is the
// WWW-Authenticate value and is empty for authorization failures.
type AuthError struct {
	Err       error
	Status    int
	Challenge string
	Reason    string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return e.Err.Error() + ": " + e.Reason
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// Respond writes the status and challenge. The body is empty.
func (e *AuthError) Respond(w http.ResponseWriter) {
	if e.Challenge != "" {
		w.Header().Set("WWW-Authenticate", e.Challenge)
	}
	w.WriteHeader(e.Status)
}

// WriteError renders err. Non-auth errors become a bare 500.
func WriteError(w http.ResponseWriter, err error) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		authErr.Respond(w)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

func unauthorized(err error, reason string) *AuthError {
	return &AuthError{
		Err:       err,
		Status:    http.StatusUnauthorized,
		Challenge: ChallengeCookie,
		Reason:    reason,
	}
}

func bearerError(err error, code string) *AuthError {
	return &AuthError{
		Err:       err,
		Status:    http.StatusUnauthorized,
		Challenge: `Bearer error="` + code + `"`,
		Reason:    code,
	}
}

func forbidden() *AuthError {
	return &AuthError{Err: ErrForbidden, Status: http.StatusForbidden}
}
