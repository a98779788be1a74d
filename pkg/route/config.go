package route

import "time"

// Config holds dispatcher settings.
type Config struct {
	// MaxBodyBytes caps request bodies; larger bodies are answered with 413.
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"65536"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"HTTP_TRUST_PROXY_HEADERS" envDefault:"false"`

	CORSAllowOrigin      string        `env:"CORS_ALLOW_ORIGIN"`
	CORSAllowMethods     []string      `env:"CORS_ALLOW_METHODS" envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	CORSAllowHeaders     []string      `env:"CORS_ALLOW_HEADERS" envSeparator:"," envDefault:"Authorization,Content-Type"`
	CORSAllowCredentials bool          `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	CORSMaxAge           time.Duration `env:"CORS_MAX_AGE" envDefault:"10m"`
}

// DefaultMaxBodyBytes is used when MaxBodyBytes is not positive.
const DefaultMaxBodyBytes = 64 << 10

// ResponseOptions returns the CORS headers derived from c.
func (c Config) ResponseOptions() ResponseOptions {
	return NewResponseOptions(c.CORSAllowOrigin, c.CORSAllowMethods, c.CORSAllowHeaders, c.CORSAllowCredentials, c.CORSMaxAge)
}
