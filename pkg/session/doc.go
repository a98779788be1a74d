// Package session implements the stateless access/refresh token protocol.
//
// No session record is kept on the server. A login mints a pair of tokens,
// an access token valid for AccessTTL (15 minutes by default) and a refresh
// token valid for RefreshTTL (90 days), both sealed payloads for the same
// subject and delivered as the HttpOnly cookies access_token and
// refresh_token. Validity is derived from the token contents and the clock.
//
// # Validation
//
// Validate walks the request through NoCredential, Fresh, NeedsRefresh and
// Rotated:
//
//  1. a missing access cookie is rejected with 401 and "WWW-Authenticate: Cookie";
//  2. an access token that does not decode is rejected;
//  3. a fresh access token resolves the identity with no further work;
//  4. a stale one requires a refresh token that decodes, is younger than
//     RefreshTTL and names the same subject;
//  5. the subject is looked up in the account store and a brand-new pair is
//     written to the response before the handler runs.
//
// A subject mismatch between the two cookies is rejected on every path.
//
// The refresh token consumed by a rotation stays valid until it expires
// naturally. Making it single use needs a server-side revocation record and is
// tracked separately.
//
// # Legacy bearer flow
//
// Authorize checks "Authorization: Bearer <token>" against a resource owner id
// taken from the path. It exists for older clients; new code uses Validate.
//
// # Usage
//
//	auth, err := session.New(secret, accounts,
//	    session.WithConfig(cfg),
//	    session.WithLogger(log),
//	)
//
//	// login
//	pair, err := auth.Issue(w, account.ID)
//
//	// protected handler
//	id, err := auth.Validate(r.Context(), w, r)
//	if err != nil {
//	    session.WriteError(w, err)
//	    return
//	}
//
// # Errors
//
// Rejections are *AuthError values wrapping one of the sentinel errors, so
// errors.Is works against ErrMissingCredential, ErrMalformedCredential,
// ErrExpired, ErrSubjectMismatch, ErrUnknownAccount and ErrForbidden. Their
// Respond method writes the status and challenge header without revealing
// which crypto check failed.
package session
