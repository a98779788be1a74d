package session

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/wordchain/pkg/logger"
)

type identityContextKey struct{}

// WithIdentity adds a validated identity to the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext retrieves the identity from the context
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// SubjectFromContext returns the authenticated subject or "".
func SubjectFromContext(ctx context.Context) string {
	id, _ := IdentityFromContext(ctx)
	return id.Subject
}

// LoggerExtractor adds the authenticated subject to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if s := SubjectFromContext(ctx); s != "" {
			return logger.Subject(s), true
		}
		return slog.Attr{}, false
	}
}
