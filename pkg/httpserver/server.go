package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/logger"
)

// Server wraps http.Server with the shutdown sequence described in the
// package documentation.
type Server struct {
	cfg config

	mu      sync.Mutex
	running bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := config{
		addr:            ":8080",
		hookTimeout:     10 * time.Second,
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{cfg: cfg}
}

// Run serves handler until ctx is cancelled or a termination signal
// arrives. It returns nil after a clean shutdown, ErrShutdown when
// connections had to be force-closed, and ErrStart when serving failed.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if handler == nil {
		handler = http.NotFoundHandler()
	}

	ln := s.cfg.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.cfg.addr); err != nil {
			return errors.Join(ErrStart, err)
		}
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       s.cfg.readTimeout,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		IdleTimeout:       s.cfg.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	log := s.cfg.logger
	log.InfoContext(ctx, "http server started", logger.Component("httpserver"), "addr", ln.Addr().String())

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-sigCtx.Done():
	}

	log.InfoContext(ctx, "shutdown requested", logger.Component("httpserver"))
	s.runHooks(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WarnContext(ctx, "forcing connections closed", logger.Component("httpserver"), logger.Error(err))
		_ = srv.Close()
		<-errCh
		return errors.Join(ErrShutdown, err)
	}
	<-errCh

	log.InfoContext(ctx, "http server stopped", logger.Component("httpserver"))
	return nil
}

func (s *Server) runHooks(ctx context.Context) {
	if len(s.cfg.hooks) == 0 {
		return
	}

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.hookTimeout)
	defer cancel()

	start := time.Now()
	for _, h := range s.cfg.hooks {
		if err := h(hookCtx); err != nil {
			s.cfg.logger.ErrorContext(ctx, "pre-shutdown hook failed",
				logger.Component("httpserver"), logger.Error(err))
		}
	}
	s.cfg.logger.DebugContext(ctx, "pre-shutdown hooks done",
		logger.Component("httpserver"), logger.Duration(time.Since(start)))
}
