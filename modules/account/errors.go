package account

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/route"
)

var (
	ErrDuplicateID   = errors.New("account.duplicate_id")
	ErrInvalidID     = errors.New("account.invalid_id")
	ErrEmptyPassword = errors.New("account.empty_password")

	ErrNoStore         = errors.New("account.no_store")
	ErrNoAuthenticator = errors.New("account.no_authenticator")
)

var (
	errMissingCredentials = route.NewHTTPError(http.StatusBadRequest, "missing_credentials")
	errInvalidForm        = route.NewHTTPError(http.StatusBadRequest, "invalid_form")
	errAccountExists      = route.NewHTTPError(http.StatusConflict, "account_exists")
)

// basicChallenge is a 401 asking for HTTP Basic credentials.
type basicChallenge struct {
	realm string
}

func (e basicChallenge) Error() string { return "account: basic auth " + e.realm }

func (e basicChallenge) Respond(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+e.realm+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}

var (
	errBasicMalformed        = basicChallenge{realm: "malformed"}
	errBasicPasswordMismatch = basicChallenge{realm: "password-mismatch"}
)

// tooManyAttempts is a 429 telling the client when to retry.
type tooManyAttempts struct {
	retryAfter time.Duration
}

func (e tooManyAttempts) Error() string { return "account: too many login attempts" }

func (e tooManyAttempts) Respond(w http.ResponseWriter) {
	secs := max(int(math.Ceil(e.retryAfter.Seconds())), 1)
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	route.NewHTTPError(http.StatusTooManyRequests, "too_many_attempts").Respond(w)
}
