// Package httpserver runs an http.Handler with an ordered shutdown.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then:
//
//  1. runs the pre-shutdown hooks (registered with WithPreShutdownHook) under
//     a single HookTimeout deadline. Hook errors are logged and do not stop
//     the sequence;
//  2. calls http.Server.Shutdown so the listener stops accepting and
//     in-flight requests get ShutdownTimeout to finish;
//  3. force-closes remaining connections if that deadline passes.
//
// The wordchain binary registers the route tree teardown as its pre-shutdown
// hook so every node's Down runs before the server drains.
//
// HealthCheckHandler serves liveness (no checks) and readiness (all checks
// must pass) probes.
package httpserver
