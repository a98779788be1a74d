package route

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/requestid"
)

// Dispatcher serves a validated route tree.
type Dispatcher struct {
	root    Node
	log     *slog.Logger
	maxBody int64
	cors    ResponseOptions
	proxied bool
	handler http.Handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig applies body limit, proxy trust and CORS settings.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		if cfg.MaxBodyBytes > 0 {
			d.maxBody = cfg.MaxBodyBytes
		}
		d.proxied = cfg.TrustProxyHeaders
		d.cors = cfg.ResponseOptions()
	}
}

// WithTrustProxyHeaders rewrites RemoteAddr from forwarding headers.
func WithTrustProxyHeaders(trust bool) Option {
	return func(d *Dispatcher) { d.proxied = trust }
}

func WithMaxBodyBytes(n int64) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxBody = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDispatcher validates root and builds the handler chain.
func NewDispatcher(root Node, opts ...Option) (*Dispatcher, error) {
	if err := Validate(root); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		root:    root,
		log:     logger.Discard(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handler = middleware.Recoverer(
		requestid.Middleware(http.HandlerFunc(d.dispatch)),
	)
	if d.proxied {
		d.handler = middleware.RealIP(d.handler)
	}

	return d, nil
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.handler.ServeHTTP(w, r)
}

func (d *Dispatcher) dispatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	ctx := r.Context()

	d.cors.Apply(ww.Header())

	pattern := ""
	defer func() {
		d.log.DebugContext(ctx, "request served",
			logger.Method(r.Method),
			logger.Route(pattern),
			logger.Status(ww.Status()),
			logger.Duration(time.Since(start)),
		)
	}()

	if d.cors.Enabled() && isPreflight(r) {
		ww.WriteHeader(http.StatusNoContent)
		return
	}

	if r.ContentLength > d.maxBody {
		ErrPayloadTooLarge.Respond(ww)
		return
	}
	if r.Body != nil {
		r.Body = http.MaxBytesReader(ww, r.Body, d.maxBody)
	}

	m, ok := Resolve(r.URL.Path, d.root)
	if !ok {
		ErrNotFound.Respond(ww)
		return
	}
	pattern = m.Pattern

	if err := m.Node.Handle(ww, r.WithContext(WithMatch(ctx, m))); err != nil {
		d.writeError(ww, r, m, err)
	}
}

func (d *Dispatcher) writeError(w middleware.WrapResponseWriter, r *http.Request, m *Match, err error) {
	if w.Status() != 0 {
		// handler already started the response
		d.log.WarnContext(r.Context(), "handler error after response started",
			logger.Route(m.Pattern), logger.Error(err))
		return
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		ErrPayloadTooLarge.Respond(w)
		return
	}

	var responder Responder
	if errors.As(err, &responder) {
		responder.Respond(w)
		return
	}

	d.log.ErrorContext(r.Context(), "request failed",
		logger.Component("route"),
		logger.Method(r.Method),
		logger.Route(m.Pattern),
		logger.Error(err),
	)
	w.WriteHeader(http.StatusInternalServerError)
}
