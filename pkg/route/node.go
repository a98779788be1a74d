package route

import (
	"context"
	"net/http"
)

// Wildcard is the name of a child that matches any single segment.
const Wildcard = "*"

// Node is a route in the dispatch tree.
type Node interface {
	Name() string
	Children() []Node
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Handle(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc is the handler shape used by nodes.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Leaf can be embedded by nodes without children.
type Leaf struct{}

func (Leaf) Children() []Node { return nil }

// Stateless can be embedded by nodes without lifecycle hooks.
type Stateless struct{}

func (Stateless) Up(context.Context) error   { return nil }
func (Stateless) Down(context.Context) error { return nil }

// Static is a Node assembled from plain values. A nil Handler answers 404,
// which suits the root and pure grouping nodes.
type Static struct {
	Path    string
	Nodes   []Node
	Handler HandlerFunc
	OnUp    func(ctx context.Context) error
	OnDown  func(ctx context.Context) error
}

func (s *Static) Name() string     { return s.Path }
func (s *Static) Children() []Node { return s.Nodes }

func (s *Static) Up(ctx context.Context) error {
	if s.OnUp == nil {
		return nil
	}
	return s.OnUp(ctx)
}

func (s *Static) Down(ctx context.Context) error {
	if s.OnDown == nil {
		return nil
	}
	return s.OnDown(ctx)
}

func (s *Static) Handle(w http.ResponseWriter, r *http.Request) error {
	if s.Handler == nil {
		return ErrNotFound
	}
	return s.Handler(w, r)
}
