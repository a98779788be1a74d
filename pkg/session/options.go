package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/cookie"
)

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithConfig replaces the configuration. Zero durations and cookie names
// fall back to the defaults.
func WithConfig(cfg Config) Option {
	return func(a *Authenticator) {
		a.config = cfg.withDefaults()
	}
}

// WithCookieManager sets the manager used to write token cookies. When unset
// one is built from the configuration.
func WithCookieManager(m *cookie.Manager) Option {
	return func(a *Authenticator) {
		a.cookies = m
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}
