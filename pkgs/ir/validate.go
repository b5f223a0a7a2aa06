package ir

import (
	"github.com/aledsdavies/xsrc/pkgs/scope"
	"github.com/aledsdavies/xsrc/pkgs/seexpr"
)

// Validate walks every expression in root and confirms each Ref resolves
// to some entry in the context tree via scope.Lookup, without evaluating
// it to a value. It returns every error found, not just the first, so a
// caller can report every broken reference in one pass.
func Validate(root *RootIR) []error {
	var errs []error
	errs = append(errs, validateExpr(root.Context, root.URL)...)
	errs = append(errs, validateChildren(root.Children)...)
	return errs
}

func validateChildren(children ChildMap) []error {
	var errs []error
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		switch child.Kind {
		case ChildGroup:
			errs = append(errs, validateExpr(child.Group.Context, child.Group.URL)...)
			errs = append(errs, validateChildren(child.Group.Children)...)
		case ChildEndpoint:
			errs = append(errs, validateExpr(child.Endpoint.Context, child.Endpoint.URL)...)
		}
	}
	return errs
}

func validateExpr(ctx *scope.Node, expr seexpr.Expr) []error {
	var errs []error
	for _, ref := range collectRefs(expr) {
		path := make([]string, len(ref.Path))
		for i, m := range ref.Path {
			path[i] = m.String()
		}
		if _, err := ctx.Lookup(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func collectRefs(expr seexpr.Expr) []seexpr.Ref {
	switch e := expr.(type) {
	case seexpr.Ref:
		return []seexpr.Ref{e}
	case seexpr.Concat:
		return append(collectRefs(e.Left), collectRefs(e.Right)...)
	default:
		return nil
	}
}
