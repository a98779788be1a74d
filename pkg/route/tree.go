package route

import (
	"fmt"
	"strings"
)

// Match is the result of resolving a path against the tree.
type Match struct {
	Node Node
	// Pattern is the matched route, e.g. "/account/*".
	Pattern string
	// Params holds the segments captured by wildcard nodes, outermost first.
	Params []string
}

// Validate checks the tree shape: no nil nodes, no empty or slash-containing
// child names, at most one child per name and at most one wildcard child per
// parent.
func Validate(root Node) error {
	if root == nil {
		return ErrNilNode
	}
	return validate(root, "")
}

func validate(n Node, path string) error {
	seen := make(map[string]struct{}, len(n.Children()))
	for _, child := range n.Children() {
		if child == nil {
			return fmt.Errorf("%w: under %q", ErrNilNode, display(path))
		}

		name := child.Name()
		if name == "" || strings.Contains(name, "/") {
			return fmt.Errorf("%w: %q under %q", ErrInvalidName, name, display(path))
		}
		if _, dup := seen[name]; dup {
			if name == Wildcard {
				return fmt.Errorf("%w: under %q", ErrDuplicateWildcard, display(path))
			}
			return fmt.Errorf("%w: %q under %q", ErrDuplicateRoute, name, display(path))
		}
		seen[name] = struct{}{}

		if err := validate(child, path+"/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Resolve walks path from root. The second result is false when no node
// matches.
func Resolve(path string, root Node) (*Match, bool) {
	m := &Match{Node: root}
	var pattern strings.Builder

	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}

		children := m.Node.Children()
		if len(children) == 0 {
			return nil, false
		}

		var exact, wildcard Node
		for _, child := range children {
			switch child.Name() {
			case segment:
				exact = child
			case Wildcard:
				wildcard = child
			}
			if exact != nil {
				break
			}
		}

		switch {
		case exact != nil:
			m.Node = exact
			pattern.WriteString("/" + exact.Name())
		case wildcard != nil:
			m.Node = wildcard
			m.Params = append(m.Params, segment)
			pattern.WriteString("/" + Wildcard)
		default:
			return nil, false
		}
	}

	m.Pattern = display(pattern.String())
	return m, true
}

// Walk visits the tree in pre-order, passing each node with its route
// pattern. Returning an error from fn stops the walk and returns it.
func Walk(root Node, fn func(pattern string, n Node) error) error {
	return walk(root, "", fn)
}

func walk(n Node, path string, fn func(string, Node) error) error {
	if err := fn(display(path), n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := walk(child, path+"/"+child.Name(), fn); err != nil {
			return err
		}
	}
	return nil
}

// Paths lists every route pattern in pre-order.
func Paths(root Node) []string {
	var out []string
	_ = Walk(root, func(pattern string, _ Node) error {
		out = append(out, pattern)
		return nil
	})
	return out
}

func display(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
