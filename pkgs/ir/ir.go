// Package ir builds the scope-bound intermediate representation: a tree
// of root/group/endpoint nodes, each carrying its parsed URL expression,
// its merged set of bound parameters, and a matching node in the context
// tree (pkgs/scope) so later stages can resolve cross-scope references.
package ir

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aledsdavies/xsrc/pkgs/schema"
	"github.com/aledsdavies/xsrc/pkgs/scope"
	"github.com/aledsdavies/xsrc/pkgs/seexpr"
)

// RootIR is the root of the generated client's class tree.
type RootIR struct {
	ClassName string
	URL       seexpr.Expr
	Bound     seexpr.BoundVars
	Children  ChildMap
	Context   *scope.Node
}

// GroupIR is a nested API set.
type GroupIR struct {
	Name     string
	URL      seexpr.Expr
	Bound    seexpr.BoundVars
	Children ChildMap
	Context  *scope.Node
}

// EndpointIR is a leaf API call.
type EndpointIR struct {
	Name    string
	Method  schema.Method
	URL     seexpr.Expr
	Bound   seexpr.BoundVars
	Params  seexpr.BoundVars
	Data    seexpr.BoundVars
	Context *scope.Node
}

// ChildKind distinguishes the two kinds of entries a RootIR or GroupIR
// may contain.
type ChildKind int

const (
	ChildEndpoint ChildKind = iota
	ChildGroup
)

// ChildIR is a tagged union over Group/Endpoint children, mirroring
// schema.Child one level down the pipeline.
type ChildIR struct {
	Kind     ChildKind
	Group    *GroupIR
	Endpoint *EndpointIR
}

// ChildMap preserves schema declaration order.
type ChildMap = *orderedmap.OrderedMap[string, ChildIR]
