package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/cookie"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	d := cookie.New().Defaults()
	assert.Equal(t, "/", d.Path)
	assert.True(t, d.HttpOnly)
	assert.True(t, d.Secure)
	assert.Equal(t, http.SameSiteLaxMode, d.SameSite)

	d = cookie.New(cookie.WithSecure(false), cookie.WithDomain("example.com")).Defaults()
	assert.False(t, d.Secure)
	assert.Equal(t, "example.com", d.Domain)
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "access_token", "abc123"))
	require.NoError(t, m.Set(w, "refresh_token", "def456"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "refresh_token", cookies[1].Name)
	for _, c := range cookies {
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, "/", c.Path)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	v, err := m.Get(r, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)

	v, err = m.Get(r, "refresh_token")
	require.NoError(t, err)
	assert.Equal(t, "def456", v)
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Get(r, "access_token")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)

	r.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
	_, err = m.Get(r, "access_token")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_SetEmptyName(t *testing.T) {
	t.Parallel()

	err := cookie.New().Set(httptest.NewRecorder(), "", "v")
	assert.ErrorIs(t, err, cookie.ErrEmptyName)
}

func TestManager_OptionsDoNotMutateDefaults(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	c := m.Build("name", "value", cookie.WithSecure(false), cookie.WithMaxAge(60))
	assert.False(t, c.Secure)
	assert.Equal(t, 60, c.MaxAge)

	assert.True(t, m.Defaults().Secure)
	assert.Equal(t, 0, m.Defaults().MaxAge)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	m.Delete(w, "access_token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{Path: "/api", Insecure: true})
	d := m.Defaults()
	assert.Equal(t, "/api", d.Path)
	assert.False(t, d.Secure)
	assert.True(t, d.HttpOnly)

	d = cookie.NewFromConfig(cookie.DefaultConfig()).Defaults()
	assert.True(t, d.Secure)
	assert.Equal(t, http.SameSiteLaxMode, d.SameSite)

	d = cookie.NewFromConfig(cookie.Config{}).Defaults()
	assert.True(t, d.Secure, "zero config stays secure")
	assert.Equal(t, "/", d.Path)
	assert.Equal(t, http.SameSiteLaxMode, d.SameSite)
}

func TestManager_BuildKeepsNameAndHTTPOnly(t *testing.T) {
	t.Parallel()

	rename := func(c *http.Cookie) {
		c.Name = "other"
		c.Value = "other"
		c.HttpOnly = false
	}
	c := cookie.New(rename).Build("access_token", "v", rename)
	assert.Equal(t, "access_token", c.Name)
	assert.Equal(t, "v", c.Value)
	assert.True(t, c.HttpOnly)
}
