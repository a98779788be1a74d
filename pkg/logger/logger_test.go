package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/logger"
)

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)

	attr = logger.Errors(nil, errors.New("a"), errors.New("b"))
	assert.Equal(t, "errors", attr.Key)
	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "1", group[0].Key)
	assert.Equal(t, "2", group[1].Key)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "subject", logger.Subject("alice").Key)
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
	assert.Equal(t, "request_id", logger.RequestID("r1").Key)
	assert.Equal(t, "/account/*", logger.Route("/account/*").Value.String())
	assert.Equal(t, int64(404), logger.Status(404).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "GET", logger.Method("GET").Value.String())

	g := logger.Group("req", logger.Method("GET"), logger.Status(200))
	assert.Len(t, g.Value.Group(), 2)
}

type ctxKey struct{}

func TestNewJSONWithExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "wordchain")),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("subject", v), ok
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "alice")
	log.InfoContext(ctx, "hello")
	log.DebugContext(ctx, "dropped")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "wordchain", rec["service"])
	assert.Equal(t, "alice", rec["subject"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		want    string
		isDebug bool
	}{
		{"production", "env=production", false},
		{"prod", "env=production", false},
		{"stage", "env=staging", false},
		{"dev", "env=development", true},
		{"", "env=development", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logger.New(logger.WithEnvironment(tt.env, "svc"), logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

			log.Info("x")
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "service=svc")
			assert.Equal(t, tt.isDebug, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestDecoratorKeepsExtractorsAcrossWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
			return slog.String("request_id", "r1"), true
		}),
	).With("component", "route").WithGroup("g")

	log.InfoContext(context.Background(), "m", "k", "v")
	assert.Contains(t, buf.String(), `"component":"route"`)
	assert.Contains(t, buf.String(), `"request_id":"r1"`)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError+4))
}
