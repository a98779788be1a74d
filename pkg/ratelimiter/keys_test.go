package ratelimiter_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wordchain/pkg/ratelimiter"
)

func TestRemoteIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	r.Header.Set("X-Real-IP", "203.0.113.9")
	r.Header.Set("X-Forwarded-For", "203.0.113.10")
	assert.Equal(t, "192.0.2.1", ratelimiter.RemoteIP(r), "forwarding headers are ignored")

	r.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", ratelimiter.RemoteIP(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", ratelimiter.RemoteIP(r))
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "192.0.2.1:5555"

	key := ratelimiter.Composite(ratelimiter.Prefix("login"), ratelimiter.RemoteIP)
	assert.Equal(t, "login:192.0.2.1", key(r))

	empty := ratelimiter.Composite(ratelimiter.Prefix(""), ratelimiter.Prefix(""))
	assert.Empty(t, empty(r))

	skips := ratelimiter.Composite(ratelimiter.Prefix(""), ratelimiter.RemoteIP)
	assert.Equal(t, "192.0.2.1", skips(r))

	long := ratelimiter.Composite(ratelimiter.Prefix(strings.Repeat("a", 70)), ratelimiter.RemoteIP)
	hashed := long(r)
	assert.LessOrEqual(t, len(hashed), 13)
	assert.NotContains(t, hashed, ":")
	assert.Equal(t, hashed, long(r))
}
