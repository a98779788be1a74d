package httpserver

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// Option configures the server.
type Option func(*config)

// Hook runs before the server drains. ctx carries the hook deadline.
type Hook func(ctx context.Context) error

type config struct {
	addr              string
	listener          net.Listener
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	hookTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	hooks             []Hook
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr: empty address")
	}
	return func(c *config) { c.addr = addr }
}

// WithListener serves on ln instead of listening on the configured address.
func WithListener(ln net.Listener) Option {
	if ln == nil {
		panic("httpserver: WithListener: nil listener")
	}
	return func(c *config) { c.listener = ln }
}

// WithTimeouts sets the http.Server timeouts. Zero leaves a timeout unset.
func WithTimeouts(read, readHeader, write, idle time.Duration) Option {
	return func(c *config) {
		c.readTimeout = read
		c.readHeaderTimeout = readHeader
		c.writeTimeout = write
		c.idleTimeout = idle
	}
}

func WithHookTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithHookTimeout: duration must be > 0")
	}
	return func(c *config) { c.hookTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithShutdownTimeout: duration must be > 0")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPreShutdownHook registers h to run, in registration order, after the
// shutdown signal and before the server stops accepting connections.
func WithPreShutdownHook(h Hook) Option {
	if h == nil {
		panic("httpserver: WithPreShutdownHook: nil hook")
	}
	return func(c *config) { c.hooks = append(c.hooks, h) }
}
