package route

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ResponseOptions is an immutable set of CORS headers added to every
// response. The zero value adds nothing.
type ResponseOptions struct {
	origin      string
	methods     string
	headers     string
	credentials bool
	maxAge      string
}

// NewResponseOptions builds ResponseOptions. An empty origin disables CORS.
// Credentials are never allowed for the "*" origin.
func NewResponseOptions(origin string, methods, headers []string, credentials bool, maxAge time.Duration) ResponseOptions {
	if origin == "" {
		return ResponseOptions{}
	}
	o := ResponseOptions{
		origin:      origin,
		methods:     strings.Join(slices.Clone(methods), ", "),
		headers:     strings.Join(slices.Clone(headers), ", "),
		credentials: credentials && origin != "*",
	}
	if maxAge > 0 {
		o.maxAge = strconv.Itoa(int(maxAge.Seconds()))
	}
	return o
}

// Enabled reports whether any header is added.
func (o ResponseOptions) Enabled() bool {
	return o.origin != ""
}

// Apply sets the CORS headers on h.
func (o ResponseOptions) Apply(h http.Header) {
	if !o.Enabled() {
		return
	}
	h.Set("Access-Control-Allow-Origin", o.origin)
	if o.origin != "*" {
		h.Add("Vary", "Origin")
	}
	if o.methods != "" {
		h.Set("Access-Control-Allow-Methods", o.methods)
	}
	if o.headers != "" {
		h.Set("Access-Control-Allow-Headers", o.headers)
	}
	if o.credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if o.maxAge != "" {
		h.Set("Access-Control-Max-Age", o.maxAge)
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
