package ir

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aledsdavies/xsrc/pkgs/invariant"
	"github.com/aledsdavies/xsrc/pkgs/schema"
	"github.com/aledsdavies/xsrc/pkgs/scope"
	"github.com/aledsdavies/xsrc/pkgs/seexpr"
)

// Transform walks a parsed schema document and builds its scope-bound IR,
// parsing every embedded expression and constructing the parallel context
// tree in the same pass.
func Transform(root *schema.Root) (*RootIR, error) {
	ctx := scope.New(root.ClassName)

	var urlExpr seexpr.Expr
	var urlBound seexpr.BoundVars
	if root.URL == "" {
		urlExpr = seexpr.Var{Name: "url"}
		urlBound = seexpr.NewBoundVars()
		urlBound.Set("url", seexpr.Param{Name: "url", Type: "string"})
	} else {
		var err error
		urlExpr, urlBound, err = seexpr.Parse(root.URL)
		if err != nil {
			return nil, fmt.Errorf("root $url: %w", err)
		}
	}
	ctx.Bind("url", urlExpr)

	bound := cloneBound(urlBound)

	children, err := transformChildren(ctx, root.Children, bound, "root")
	if err != nil {
		return nil, err
	}

	return &RootIR{
		ClassName: root.ClassName,
		URL:       urlExpr,
		Bound:     bound,
		Children:  children,
		Context:   ctx,
	}, nil
}

func transformChildren(parentCtx *scope.Node, children schema.ChildMap, parentBound seexpr.BoundVars, parentName string) (ChildMap, error) {
	result := orderedmap.New[string, ChildIR]()
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		name, child := pair.Key, pair.Value
		childCtx := parentCtx.AddChild(name)

		switch child.Kind {
		case schema.ChildGroup:
			group, err := transformGroup(childCtx, name, child.Group)
			if err != nil {
				return nil, err
			}
			result.Set(name, ChildIR{Kind: ChildGroup, Group: group})
		case schema.ChildEndpoint:
			endpoint, err := transformEndpoint(childCtx, name, child.Endpoint)
			if err != nil {
				return nil, err
			}
			result.Set(name, ChildIR{Kind: ChildEndpoint, Endpoint: endpoint})
		}
	}
	return result, nil
}

func transformGroup(ctx *scope.Node, name string, g *schema.Group) (*GroupIR, error) {
	urlExpr, urlBound, err := seexpr.Parse(g.URL)
	if err != nil {
		return nil, fmt.Errorf("group %q $url: %w", name, err)
	}
	ctx.Bind("url", urlExpr)

	bound := cloneBound(urlBound)

	children, err := transformChildren(ctx, g.Children, bound, name)
	if err != nil {
		return nil, err
	}

	return &GroupIR{
		Name:     name,
		URL:      urlExpr,
		Bound:    bound,
		Children: children,
		Context:  ctx,
	}, nil
}

func transformEndpoint(ctx *scope.Node, name string, e *schema.Endpoint) (*EndpointIR, error) {
	invariant.Precondition(isRecognizedMethod(e.Method), "endpoint %q has unrecognized method %q", name, e.Method)

	urlExpr, urlBound, err := seexpr.Parse(e.URL)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q $url: %w", name, err)
	}
	ctx.Bind("url", urlExpr)

	bound := cloneBound(urlBound)

	params := seexpr.NewBoundVars()
	for pair := e.Params.Oldest(); pair != nil; pair = pair.Next() {
		p := seexpr.Param{Name: pair.Key, Type: pair.Value}
		params.Set(pair.Key, p)
		if err := mergeOne(bound, p, name); err != nil {
			return nil, err
		}
	}

	data := seexpr.NewBoundVars()
	for pair := e.Data.Oldest(); pair != nil; pair = pair.Next() {
		p := seexpr.Param{Name: pair.Key, Type: pair.Value}
		data.Set(pair.Key, p)
		if err := mergeOne(bound, p, name); err != nil {
			return nil, err
		}
	}

	return &EndpointIR{
		Name:    name,
		Method:  e.Method,
		URL:     urlExpr,
		Bound:   bound,
		Params:  params,
		Data:    data,
		Context: ctx,
	}, nil
}

func cloneBound(src seexpr.BoundVars) seexpr.BoundVars {
	dst := seexpr.NewBoundVars()
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}
	return dst
}

func mergeOne(into seexpr.BoundVars, p seexpr.Param, node string) error {
	before := into.Len()
	if _, present := into.Get(p.Name); present {
		return &MergeError{Node: node, Name: p.Name}
	}
	into.Set(p.Name, p)
	invariant.Postcondition(into.Len() == before+1, "%s: bound vars grew by more than one entry merging %q", node, p.Name)
	return nil
}

func isRecognizedMethod(m schema.Method) bool {
	switch m {
	case schema.MethodGet, schema.MethodPost, schema.MethodPut, schema.MethodDelete,
		schema.MethodHead, schema.MethodOptions, schema.MethodPatch:
		return true
	default:
		return false
	}
}
