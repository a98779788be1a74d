package route

import "context"

type matchContextKey struct{}

// WithMatch stores the resolved match in ctx.
func WithMatch(ctx context.Context, m *Match) context.Context {
	return context.WithValue(ctx, matchContextKey{}, m)
}

// MatchFromContext returns the match the dispatcher resolved for the
// request, or nil.
func MatchFromContext(ctx context.Context) *Match {
	m, _ := ctx.Value(matchContextKey{}).(*Match)
	return m
}

// Params returns every segment captured by wildcard nodes.
func Params(ctx context.Context) []string {
	if m := MatchFromContext(ctx); m != nil {
		return m.Params
	}
	return nil
}

// Param returns the segment captured by the innermost wildcard, or "".
func Param(ctx context.Context) string {
	p := Params(ctx)
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
