// Package route dispatches requests through a tree of named nodes.
//
// Every Node has a name, an ordered list of children, Up/Down lifecycle
// hooks and a handler. A request path is split into non-empty segments and
// walked from the root: at each level the child whose name equals the
// segment is chosen, falling back to the single wildcard child ("*") when no
// exact name matches. A node without children ends the walk, so extra
// segments never match. Wildcard segments are captured and exposed to
// handlers through Param and Params.
//
// The tree is built once at startup, checked with Validate and never mutated
// afterwards, so it is read concurrently without locks.
//
// Bootstrap runs every Up hook in pre-order (node, then children left to
// right) and stops at the first failure without rolling back. Shutdown does
// the same with Down hooks but only logs the failure.
//
// Dispatcher is the http.Handler in front of the tree. It assigns request
// ids, limits body size, applies CORS headers, renders handler errors and
// recovers from panics:
//
//	root := &route.Static{Nodes: []route.Node{accounts, login}}
//	d, err := route.NewDispatcher(root, route.WithLogger(log), route.WithConfig(cfg))
//
// Handler errors implementing Responder (HTTPError, session.AuthError) render
// themselves; an oversized body becomes 413; anything else is logged and
// answered with a bare 500 so error text never reaches the client.
package route
