package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

func TestRequireSession(t *testing.T) {
	t.Parallel()
	clk := newClock()
	a := newAuthenticator(t, clk, nil)

	var got session.Identity
	h := a.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.IdentityFromContext(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	}))

	cookies := issue(t, a, "alice")
	clk.Advance(time.Hour)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestWith(cookies))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, session.Identity{Subject: "alice", Rotated: true}, got)
	assert.Len(t, w.Result().Cookies(), 2)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestWith(nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, session.ChallengeCookie, w.Header().Get("WWW-Authenticate"))
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := session.IdentityFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, session.SubjectFromContext(ctx))

	ctx = session.WithIdentity(ctx, session.Identity{Subject: "alice"})
	assert.Equal(t, "alice", session.SubjectFromContext(ctx))

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(session.LoggerExtractor()))
	log.InfoContext(ctx, "hello")
	assert.Contains(t, buf.String(), `"subject":"alice"`)
}

func TestRotationIsLogged(t *testing.T) {
	t.Parallel()
	clk := newClock()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	a, err := session.New(secret, accounts{"alice": {ID: "alice"}}, session.WithClock(clk.Now), session.WithLogger(log))
	require.NoError(t, err)

	cookies := issue(t, a, "alice")
	clk.Advance(time.Hour)

	_, err = a.Validate(context.Background(), httptest.NewRecorder(), requestWith(cookies))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "session rotated")
	assert.Contains(t, buf.String(), `"subject":"alice"`)
}

func TestRequireSession_LogsLookupFailure(t *testing.T) {
	t.Parallel()
	clk := newClock()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	failing := session.AccountLookupFunc(func(context.Context, string) (session.Account, error) {
		return session.Account{}, errors.New("connection refused")
	})
	a, err := session.New(secret, failing, session.WithClock(clk.Now), session.WithLogger(log))
	require.NoError(t, err)

	cookies := issue(t, a, "alice")
	clk.Advance(time.Hour)

	h := a.RequireSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next must not run")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestWith(cookies))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "session validation failed")
	assert.Contains(t, buf.String(), "connection refused")

	buf.Reset()
	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestWith(nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, buf.String(), "rejections are not errors")
}
