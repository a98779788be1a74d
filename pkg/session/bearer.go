package session

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/wordchain/pkg/token"
)

// Bearer challenge error codes.
const (
	BearerMissing     = "missing"
	BearerMalformed   = "malformed"
	BearerUnsupported = "unsupported"
	BearerUnparsable  = "unparsable"
	BearerExpired     = "expired"
)

// Authorize checks the legacy "Authorization: Bearer <token>" header and
// requires the token subject to equal expectedID, usually the resource owner
// taken from the path. Authentication failures are 401 with a Bearer
// challenge; a valid token for another subject is 403.
//
// Kept for clients that predate the cookie pair; new handlers use Validate.
func (a *Authenticator) Authorize(expectedID string, r *http.Request) error {
	p, err := a.AuthenticateBearer(r)
	if err != nil {
		return err
	}
	if p.Subject != expectedID {
		return forbidden()
	}
	return nil
}

// AuthenticateBearer decodes the bearer token and enforces AccessTTL.
func (a *Authenticator) AuthenticateBearer(r *http.Request) (token.Payload, error) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 {
		return token.Payload{}, bearerError(ErrMissingCredential, BearerMissing)
	}

	header := values[0]
	if !isVisibleASCII(header) {
		return token.Payload{}, bearerError(ErrMalformedCredential, BearerMalformed)
	}

	terms := strings.Split(header, " ")
	if len(terms) != 2 {
		return token.Payload{}, bearerError(ErrMalformedCredential, BearerMalformed)
	}
	if terms[0] != "Bearer" {
		return token.Payload{}, bearerError(ErrUnsupportedScheme, BearerUnsupported)
	}

	p, err := token.Decode(a.secret, terms[1])
	if err != nil {
		return token.Payload{}, bearerError(ErrMalformedCredential, BearerUnparsable)
	}

	if p.Age(a.now()) > a.config.AccessTTL {
		return token.Payload{}, bearerError(ErrExpired, BearerExpired)
	}

	return p, nil
}

func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
