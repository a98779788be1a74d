package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/wordchain/pkg/logger"
)

// RequireSession validates the cookie pair before calling next. Rotated
// cookies are already on w when next runs; rejections are rendered with
// WriteError.
func (a *Authenticator) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.Validate(r.Context(), w, r)
		if err != nil {
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				a.logger.ErrorContext(r.Context(), "session validation failed", logger.Error(err))
			}
			WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
