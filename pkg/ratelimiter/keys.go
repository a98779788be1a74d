package ratelimiter

import (
	"hash/fnv"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// maxKeyLength caps composite keys; longer keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a bucket key from the request. An empty key means the
// request carries nothing to limit on.
type KeyFunc func(r *http.Request) string

// Prefix returns a KeyFunc yielding a fixed namespace.
func Prefix(name string) KeyFunc {
	return func(*http.Request) string { return name }
}

// RemoteIP keys on the host part of r.RemoteAddr. Forwarding headers are
// ignored; a trusted proxy must rewrite RemoteAddr before this runs.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Composite joins the non-empty keys with ':'. Keys over maxKeyLength are
// hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}

		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}
