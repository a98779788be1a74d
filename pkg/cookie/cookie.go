package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes HttpOnly cookies from a fixed attribute template.
type Manager struct {
	template http.Cookie
}

// New returns a Manager with Secure, SameSite=Lax and Path "/" defaults,
// adjusted by opts. HttpOnly cannot be turned off.
func New(opts ...Option) *Manager {
	m := &Manager{template: http.Cookie{
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}}
	for _, opt := range opts {
		opt(&m.template)
	}
	m.template.HttpOnly = true
	return m
}

// Defaults returns a copy of the attribute template.
func (m *Manager) Defaults() http.Cookie {
	return m.template
}

// Build returns the cookie Set would write.
func (m *Manager) Build(name, value string, opts ...Option) *http.Cookie {
	c := m.template
	for _, opt := range opts {
		opt(&c)
	}
	c.Name = name
	c.Value = value
	c.HttpOnly = true
	return &c
}

// Set appends a Set-Cookie header to w. Existing Set-Cookie headers are kept.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}
	http.SetCookie(w, m.Build(name, value, opts...))
	return nil
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrCookieNotFound
	}
	return c.Value, nil
}

// Delete expires the named cookie on the client.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.Build(name, "", WithMaxAge(-1))
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}
