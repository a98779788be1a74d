// Package requestid tags every request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID supplied by the client or
// generates a UUIDv7, stores it in the request context and echoes it in the
// response header. LoggerExtractor exposes the id to logger.New so every
// record written while serving the request carries "request_id".
package requestid
