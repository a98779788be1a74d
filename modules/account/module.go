package account

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/ratelimiter"
	"github.com/dmitrymomot/wordchain/pkg/route"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// Module builds the account route tree.
type Module struct {
	cfg    Config
	store  Store
	schema Schema
	auth   *session.Authenticator
	log    *slog.Logger

	limiter  *ratelimiter.Bucket
	loginKey ratelimiter.KeyFunc
	now      func() time.Time
}

// Option configures a Module.
type Option func(*Module)

// WithLoginLimiter throttles /login per client IP.
func WithLoginLimiter(b *ratelimiter.Bucket) Option {
	return func(m *Module) {
		m.limiter = b
	}
}

// WithClock overrides the time source used for Retry-After.
func WithClock(now func() time.Time) Option {
	return func(m *Module) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a Module. schema may be nil when the storage needs no
// provisioning.
func New(cfg Config, store Store, schema Schema, auth *session.Authenticator, log *slog.Logger, opts ...Option) (*Module, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if auth == nil {
		return nil, ErrNoAuthenticator
	}
	if log == nil {
		log = logger.Discard()
	}
	if cfg.MaxIDLength <= 0 {
		cfg.MaxIDLength = DefaultConfig().MaxIDLength
	}

	m := &Module{
		cfg:    cfg,
		store:  store,
		schema: schema,
		auth:   auth,
		log:    log.With(logger.Component("account")),
		now:    time.Now,

		loginKey: ratelimiter.Composite(ratelimiter.Prefix("login"), ratelimiter.RemoteIP),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Root returns a fresh tree. The root itself answers 404.
func (m *Module) Root() route.Node {
	return &route.Static{
		Nodes: []route.Node{
			&accountNode{m: m, children: []route.Node{&infoNode{m: m}}},
			&loginNode{m: m},
			&logoutNode{m: m},
			newSessionNode(m),
		},
	}
}

func (m *Module) migrate(ctx context.Context) error {
	if m.schema == nil {
		return nil
	}
	return m.schema.Migrate(ctx)
}

func (m *Module) reset(ctx context.Context) error {
	if m.schema == nil || !m.cfg.ResetOnShutdown {
		return nil
	}
	m.log.WarnContext(ctx, "dropping account schema")
	return m.schema.Reset(ctx)
}

// throttle takes a login token for the client. Limiter failures let the
// attempt through.
func (m *Module) throttle(r *http.Request) error {
	if m.limiter == nil {
		return nil
	}

	res, err := m.limiter.Allow(r.Context(), m.loginKey(r))
	if err != nil {
		m.log.WarnContext(r.Context(), "login limiter unavailable", logger.Error(err))
		return nil
	}
	if !res.Allowed() {
		return tooManyAttempts{retryAfter: res.RetryAfter(m.now())}
	}
	return nil
}
