package httpserver

import "errors"

var (
	ErrStart    = errors.New("httpserver: failed to start")
	ErrShutdown = errors.New("httpserver: graceful shutdown timed out")
	ErrRunning  = errors.New("httpserver: already running")
)
