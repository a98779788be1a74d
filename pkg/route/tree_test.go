package route_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/route"
)

func accountTree() (root, account, wildcard *route.Static) {
	wildcard = &route.Static{Path: route.Wildcard}
	account = &route.Static{Path: "account", Nodes: []route.Node{wildcard}}
	root = &route.Static{Nodes: []route.Node{account, &route.Static{Path: "login"}}}
	return root, account, wildcard
}

func TestResolve(t *testing.T) {
	t.Parallel()
	root, account, wildcard := accountTree()

	tests := []struct {
		path    string
		want    route.Node
		pattern string
		params  []string
	}{
		{"/", root, "/", nil},
		{"", root, "/", nil},
		{"/account", account, "/account", nil},
		{"/account/", account, "/account", nil},
		{"//account//99", wildcard, "/account/*", []string{"99"}},
		{"/account/99", wildcard, "/account/*", []string{"99"}},
		{"/login", nil, "/login", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			m, ok := route.Resolve(tt.path, root)
			require.True(t, ok)
			if tt.want != nil {
				assert.Same(t, tt.want, m.Node)
			}
			assert.Equal(t, tt.pattern, m.Pattern)
			assert.Equal(t, tt.params, m.Params)
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	t.Parallel()
	root, _, _ := accountTree()

	for _, path := range []string{"/unknown", "/account/99/extra", "/login/x", "/Account"} {
		_, ok := route.Resolve(path, root)
		assert.False(t, ok, path)
	}
}

func TestResolve_ExactBeatsWildcard(t *testing.T) {
	t.Parallel()

	me := &route.Static{Path: "me"}
	wild := &route.Static{Path: route.Wildcard}
	// wildcard listed first must still lose to the exact name
	root := &route.Static{Nodes: []route.Node{
		&route.Static{Path: "account", Nodes: []route.Node{wild, me}},
	}}

	m, ok := route.Resolve("/account/me", root)
	require.True(t, ok)
	assert.Same(t, me, m.Node)

	m, ok = route.Resolve("/account/you", root)
	require.True(t, ok)
	assert.Same(t, wild, m.Node)
	assert.Equal(t, []string{"you"}, m.Params)
}

func TestResolve_NestedWildcards(t *testing.T) {
	t.Parallel()

	root := &route.Static{Nodes: []route.Node{
		&route.Static{Path: route.Wildcard, Nodes: []route.Node{
			&route.Static{Path: "words", Nodes: []route.Node{
				&route.Static{Path: route.Wildcard},
			}},
		}},
	}}

	m, ok := route.Resolve("/alice/words/42", root)
	require.True(t, ok)
	assert.Equal(t, "/*/words/*", m.Pattern)
	assert.Equal(t, []string{"alice", "42"}, m.Params)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	root, _, _ := accountTree()
	require.NoError(t, route.Validate(root))

	tests := []struct {
		name string
		root route.Node
		err  error
	}{
		{"nil root", nil, route.ErrNilNode},
		{"nil child", &route.Static{Nodes: []route.Node{nil}}, route.ErrNilNode},
		{"empty name", &route.Static{Nodes: []route.Node{&route.Static{}}}, route.ErrInvalidName},
		{"slash in name", &route.Static{Nodes: []route.Node{&route.Static{Path: "a/b"}}}, route.ErrInvalidName},
		{"duplicate name", &route.Static{Nodes: []route.Node{
			&route.Static{Path: "a"}, &route.Static{Path: "a"},
		}}, route.ErrDuplicateRoute},
		{"duplicate wildcard deep", &route.Static{Nodes: []route.Node{
			&route.Static{Path: "a", Nodes: []route.Node{
				&route.Static{Path: route.Wildcard}, &route.Static{Path: route.Wildcard},
			}},
		}}, route.ErrDuplicateWildcard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, route.Validate(tt.root), tt.err)
		})
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()
	root, _, _ := accountTree()

	assert.Equal(t, []string{"/", "/account", "/account/*", "/login"}, route.Paths(root))
}

func TestStatic_DefaultHandlerIsNotFound(t *testing.T) {
	t.Parallel()

	n := &route.Static{Path: "x"}
	assert.ErrorIs(t, n.Handle(nil, nil), route.ErrNotFound)
	assert.NoError(t, n.Up(context.Background()))
	assert.NoError(t, n.Down(context.Background()))
}

type leafNode struct {
	route.Leaf
	route.Stateless
}

func (leafNode) Name() string                                        { return "leaf" }
func (leafNode) Handle(w http.ResponseWriter, _ *http.Request) error { return nil }

func TestEmbeddableHelpers(t *testing.T) {
	t.Parallel()

	var n route.Node = leafNode{}
	assert.Empty(t, n.Children())
	assert.NoError(t, n.Up(context.Background()))
	assert.NoError(t, n.Down(context.Background()))

	root := &route.Static{Nodes: []route.Node{n}}
	require.NoError(t, route.Validate(root))
	_, ok := route.Resolve("/leaf/more", root)
	assert.False(t, ok)
}
