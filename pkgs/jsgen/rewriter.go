// Package jsgen folds the scope-bound IR (pkgs/ir) into the target code
// model (pkgs/codemodel) and renders it to JavaScript source text.
package jsgen

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/xsrc/pkgs/codemodel"
	"github.com/aledsdavies/xsrc/pkgs/ir"
	"github.com/aledsdavies/xsrc/pkgs/seexpr"
)

// axiosImportPath is the single runtime dependency the generated file
// declares.
const axiosImportPath = "axios"

// Rewrite lowers root into a complete source file: an axios import,
// every nested group's class in post-order, and the default-exported
// root class.
func Rewrite(root *ir.RootIR) (*codemodel.Code, error) {
	groupClasses, err := collectGroupClasses(root.Children)
	if err != nil {
		return nil, err
	}

	rootClass, err := buildClass(root.ClassName, root.URL, root.Bound, root.Children, false)
	if err != nil {
		return nil, err
	}

	axios := codemodel.Ident("axios")
	stmts := []codemodel.Stmt{
		codemodel.StmtImport{Import: codemodel.Import{Default: &axios, Path: axiosImportPath}},
	}
	for _, c := range groupClasses {
		stmts = append(stmts, codemodel.StmtClass{Class: c})
	}
	stmts = append(stmts, codemodel.StmtExport{IsDefault: true, Inner: codemodel.StmtClass{Class: rootClass}})

	return &codemodel.Code{Stmts: stmts}, nil
}

// collectGroupClasses walks children and returns every nested group's
// class, deepest descendants first, so that a parent's constructor never
// references a class declared later in the file.
func collectGroupClasses(children ir.ChildMap) ([]codemodel.Class, error) {
	var classes []codemodel.Class
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		if child.Kind != ir.ChildGroup {
			continue
		}
		g := child.Group
		descendants, err := collectGroupClasses(g.Children)
		if err != nil {
			return nil, err
		}
		classes = append(classes, descendants...)

		class, err := buildClass(g.Name, g.URL, g.Bound, g.Children, true)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// buildClass constructs the class for a root or group node. hasSuper
// controls whether the constructor accepts and stores a _super
// back-reference.
func buildClass(className string, url seexpr.Expr, bound seexpr.BoundVars, children ir.ChildMap, hasSuper bool) (codemodel.Class, error) {
	var params []codemodel.Ident
	var ctorStmts []codemodel.Stmt

	if hasSuper {
		params = append(params, "_super")
		ctorStmts = append(ctorStmts, assignThis("_super", codemodel.ExprVar{Name: "_super"}))
	}

	for pair := bound.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		params = append(params, codemodel.Ident(name))
		if name == "url" {
			continue
		}
		ctorStmts = append(ctorStmts, assignThis("_"+name, codemodel.ExprVar{Name: codemodel.Ident(name)}))
	}

	ctorStmts = append(ctorStmts, assignThis("_url", lowerExpr(url)))

	var getters []codemodel.Getter
	getters = append(getters, codemodel.Getter{
		Ident: "url",
		Stmts: []codemodel.Stmt{codemodel.StmtReturn{Expr: thisField("_url")}},
	})
	for pair := bound.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		if name == "url" {
			continue
		}
		getters = append(getters, codemodel.Getter{
			Ident: name,
			Stmts: []codemodel.Stmt{codemodel.StmtReturn{Expr: thisField("_" + name)}},
		})
	}

	var methods []codemodel.Method
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		name, child := pair.Key, pair.Value
		switch child.Kind {
		case ir.ChildGroup:
			ctorStmts = append(ctorStmts, assignThis("_"+name, codemodel.ExprInstantiate{
				Constructor: codemodel.ExprVar{Name: codemodel.Ident(name)},
				Args:        []codemodel.Expr{codemodel.ExprVar{Name: "this"}},
			}))
			getters = append(getters, codemodel.Getter{
				Ident: name,
				Stmts: []codemodel.Stmt{codemodel.StmtReturn{Expr: thisField("_" + name)}},
			})
		case ir.ChildEndpoint:
			method, err := buildEndpointMethod(child.Endpoint)
			if err != nil {
				return codemodel.Class{}, err
			}
			methods = append(methods, method)
		}
	}

	return codemodel.Class{
		Ident: codemodel.Ident(className),
		Constructor: &codemodel.Constructor{
			Params: params,
			Stmts:  ctorStmts,
		},
		Methods: methods,
		Getters: getters,
	}, nil
}

func buildEndpointMethod(e *ir.EndpointIR) (codemodel.Method, error) {
	params := make([]string, 0, e.Bound.Len())
	for pair := e.Bound.Oldest(); pair != nil; pair = pair.Next() {
		params = append(params, pair.Key)
	}

	config := codemodel.NewObject()
	config.Set("method", codemodel.ExprLiteral{Literal: codemodel.StringLiteral(strings.ToLower(string(e.Method)))})
	config.Set("url", lowerExpr(e.URL))
	if e.Params.Len() > 0 {
		config.Set("params", buildParamObject(e.Params))
	}
	if e.Data.Len() > 0 {
		config.Set("data", buildParamObject(e.Data))
	}

	return codemodel.Method{
		Ident:  e.Name,
		Params: params,
		Async:  true,
		Stmts: []codemodel.Stmt{
			codemodel.StmtReturn{Expr: codemodel.ExprFuncCall{
				Callee: codemodel.ExprVar{Name: "axios"},
				Args:   []codemodel.Expr{codemodel.ExprObject{Fields: config}},
			}},
		},
	}, nil
}

func buildParamObject(params seexpr.BoundVars) codemodel.Expr {
	obj := codemodel.NewObject()
	for pair := params.Oldest(); pair != nil; pair = pair.Next() {
		obj.Set(pair.Key, codemodel.ExprVar{Name: codemodel.Ident(pair.Key)})
	}
	return codemodel.ExprObject{Fields: obj}
}

func assignThis(field string, expr codemodel.Expr) codemodel.Stmt {
	return codemodel.StmtAssign{Assign: codemodel.Assign{Ident: codemodel.Ident("this." + field), Expr: expr}}
}

func thisField(field string) codemodel.Expr {
	return codemodel.ExprMember{Base: codemodel.ExprVar{Name: "this"}, Member: field}
}

// lowerExpr implements E(): Lit -> string literal, Var -> bare
// identifier, Ref -> a this[._super]... member chain, Concat -> "+".
//
// Every path segment renders literally regardless of which kind of node
// owns the expression: a "!super" segment is always one "._super" hop,
// and a named segment always addresses the underscore-prefixed backing
// field, never the public getter. For an endpoint's own $url this can
// render a "!super" hop that has no corresponding class field when the
// endpoint's containing class is the root; that mismatch is preserved
// rather than special-cased away.
func lowerExpr(expr seexpr.Expr) codemodel.Expr {
	switch e := expr.(type) {
	case seexpr.Lit:
		return codemodel.ExprLiteral{Literal: codemodel.StringLiteral(e.Text)}
	case seexpr.Var:
		return codemodel.ExprVar{Name: codemodel.Ident(e.Name)}
	case seexpr.Ref:
		base := codemodel.Expr(codemodel.ExprVar{Name: "this"})
		for _, seg := range e.Path {
			if seg.Super {
				base = codemodel.ExprMember{Base: base, Member: "_super"}
			} else {
				base = codemodel.ExprMember{Base: base, Member: "_" + seg.Name}
			}
		}
		return base
	case seexpr.Concat:
		return codemodel.ExprArith{Op: "+", Left: lowerExpr(e.Left), Right: lowerExpr(e.Right)}
	default:
		panic(fmt.Sprintf("jsgen: unhandled expr type %T", expr))
	}
}
