package session

import "time"

// Config holds session token configuration
type Config struct {
	// AccessTTL is how long an access token is accepted without rotation.
	AccessTTL time.Duration `env:"SESSION_ACCESS_TTL" envDefault:"15m"`

	// RefreshTTL is how long a refresh token can rotate a stale access token.
	RefreshTTL time.Duration `env:"SESSION_REFRESH_TTL" envDefault:"2160h"`

	AccessCookie  string `env:"SESSION_ACCESS_COOKIE" envDefault:"access_token"`
	RefreshCookie string `env:"SESSION_REFRESH_COOKIE" envDefault:"refresh_token"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    90 * 24 * time.Hour,
		AccessCookie:  "access_token",
		RefreshCookie: "refresh_token",
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AccessTTL <= 0 {
		c.AccessTTL = d.AccessTTL
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = d.RefreshTTL
	}
	if c.AccessCookie == "" {
		c.AccessCookie = d.AccessCookie
	}
	if c.RefreshCookie == "" {
		c.RefreshCookie = d.RefreshCookie
	}
	return c
}
