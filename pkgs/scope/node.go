// Package scope implements the context node tree, built alongside the
// intermediate representation, used to resolve !super and named
// cross-scope references.
package scope

import "github.com/aledsdavies/xsrc/pkgs/seexpr"

// Node is one entry in the context tree: a named scope with an optional
// parent, a set of named child scopes, and a local scope of bound
// expressions.
type Node struct {
	Name     string
	Parent   *Node
	Children map[string]*Node
	Local    map[string]seexpr.Expr
}

// New creates a detached root node with the given name.
func New(name string) *Node {
	return &Node{
		Name:     name,
		Children: make(map[string]*Node),
		Local:    make(map[string]seexpr.Expr),
	}
}

// AddChild creates and links a new child node under n.
func (n *Node) AddChild(name string) *Node {
	child := New(name)
	child.Parent = n
	n.Children[name] = child
	return child
}

// Bind records expr as the value for key in this node's local scope.
func (n *Node) Bind(key string, expr seexpr.Expr) {
	n.Local[key] = expr
}

// Path returns the sequence of node names from the root down to n,
// inclusive, used to render a LookupError's diagnostic context.
func (n *Node) Path() []string {
	if n == nil {
		return nil
	}
	var names []string
	for cur := n; cur != nil; cur = cur.Parent {
		names = append([]string{cur.Name}, names...)
	}
	return names
}
