package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/httpserver"
	"github.com/dmitrymomot/wordchain/pkg/logger"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		require.FailNow(t, "Run did not return")
		return nil
	}
}

func TestRun_ServesAndShutsDownInOrder(t *testing.T) {
	t.Parallel()
	ln := listen(t)

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	srv := httpserver.New(
		httpserver.WithListener(ln),
		httpserver.WithLogger(logger.Discard()),
		httpserver.WithPreShutdownHook(func(ctx context.Context) error {
			record("first")
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		}),
		httpserver.WithPreShutdownHook(func(context.Context) error {
			record("second")
			return errors.New("logged, not fatal")
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, waitRun(t, done))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRun_HookTimeoutBoundsHooks(t *testing.T) {
	t.Parallel()
	ln := listen(t)

	srv := httpserver.New(
		httpserver.WithListener(ln),
		httpserver.WithHookTimeout(50*time.Millisecond),
		httpserver.WithPreShutdownHook(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	// wait until serving
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)

	start := time.Now()
	cancel()
	require.NoError(t, waitRun(t, done))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRun_ForceClosesSlowRequests(t *testing.T) {
	t.Parallel()
	ln := listen(t)

	release := make(chan struct{})
	defer close(release)
	entered := make(chan struct{})

	srv := httpserver.New(
		httpserver.WithListener(ln),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
		}))
	}()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			_ = resp.Body.Close()
		}
	}()

	<-entered
	cancel()
	err := waitRun(t, done)
	require.ErrorIs(t, err, httpserver.ErrShutdown)
}

func TestRun_ListenFailure(t *testing.T) {
	t.Parallel()
	ln := listen(t)
	defer ln.Close()

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
	err := srv.Run(context.Background(), nil)
	require.ErrorIs(t, err, httpserver.ErrStart)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	ln := listen(t)

	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		HookTimeout:     time.Second,
	}, httpserver.WithListener(ln))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	cancel()
	require.NoError(t, waitRun(t, done))
}

func TestOptionsPanicOnInvalidInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithHookTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(-1) })
	assert.Panics(t, func() { httpserver.WithPreShutdownHook(nil) })
	assert.Panics(t, func() { httpserver.WithListener(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []httpserver.Check
		code   int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []httpserver.Check{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{"not ready", []httpserver.Check{
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("db down") },
		}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(logger.Discard(), tt.checks...).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
