package cookie

import "net/http"

// Option adjusts the attributes of a cookie before it is written. Options
// never see the name or value.
type Option func(*http.Cookie)

func WithPath(path string) Option {
	return func(c *http.Cookie) { c.Path = path }
}

func WithDomain(domain string) Option {
	return func(c *http.Cookie) { c.Domain = domain }
}

// WithMaxAge sets Max-Age in seconds; zero leaves a session cookie.
func WithMaxAge(seconds int) Option {
	return func(c *http.Cookie) { c.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(c *http.Cookie) { c.Secure = secure }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(c *http.Cookie) { c.SameSite = sameSite }
}
