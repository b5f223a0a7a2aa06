// Package seexpr parses the small string-expression language embedded in
// schema fields: literal text interleaved with ${...} scope references and
// <name:type> bound parameters.
package seexpr

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Member is one segment of a Ref path: either the !super delegation marker
// or a named member.
type Member struct {
	Super bool
	Name  string
}

func (m Member) String() string {
	if m.Super {
		return "!super"
	}
	return m.Name
}

// Expr is a parsed string expression. The four variants are closed over
// this package via the unexported isExpr marker method.
type Expr interface {
	isExpr()
	String() string
}

// Lit is a literal text fragment.
type Lit struct {
	Text string
}

func (Lit) isExpr()        {}
func (l Lit) String() string { return fmt.Sprintf("Lit(%q)", l.Text) }

// Var is a reference to a bound parameter; the parser emits one in place
// of each <name:type> form.
type Var struct {
	Name string
}

func (Var) isExpr()        {}
func (v Var) String() string { return fmt.Sprintf("Var(%s)", v.Name) }

// Ref is a cross-scope reference, e.g. ${!super.url}.
type Ref struct {
	Path []Member
}

func (Ref) isExpr() {}
func (r Ref) String() string {
	parts := make([]string, len(r.Path))
	for i, m := range r.Path {
		parts[i] = m.String()
	}
	return fmt.Sprintf("Ref(%s)", strings.Join(parts, "."))
}

// Concat is a left-associative concatenation of two expressions.
type Concat struct {
	Left, Right Expr
}

func (Concat) isExpr() {}
func (c Concat) String() string {
	return fmt.Sprintf("Concat(%s, %s)", c.Left, c.Right)
}

// Param describes a bound parameter introduced by a <name:type> form.
// Type is the empty string when the form omits the ":type" suffix.
type Param struct {
	Name string
	Type string
}

// BoundVars is the insertion-ordered set of parameters an expression
// introduces, keyed by name.
type BoundVars = *orderedmap.OrderedMap[string, Param]

// NewBoundVars returns an empty, insertion-ordered BoundVars.
func NewBoundVars() BoundVars {
	return orderedmap.New[string, Param]()
}
