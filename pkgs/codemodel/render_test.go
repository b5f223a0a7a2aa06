package codemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLiterals(t *testing.T) {
	assert.Equal(t, `"hi"`, ExprLiteral{Literal: StringLiteral("hi")}.render())
	assert.Equal(t, "42", ExprLiteral{Literal: NumberLiteral(42)}.render())
	assert.Equal(t, "true", ExprLiteral{Literal: BoolLiteral(true)}.render())
}

func TestRenderMemberChain(t *testing.T) {
	e := ExprMember{Base: ExprMember{Base: ExprVar{Name: "this"}, Member: "_super"}, Member: "url"}
	assert.Equal(t, "this._super.url", e.render())
}

func TestRenderInstantiate(t *testing.T) {
	e := ExprInstantiate{
		Constructor: ExprVar{Name: "Ratincren"},
		Args:        []Expr{ExprVar{Name: "this"}},
	}
	assert.Equal(t, "new Ratincren(this)", e.render())
}

func TestRenderArithConcat(t *testing.T) {
	e := ExprArith{Op: "+", Left: ExprLiteral{Literal: StringLiteral("a")}, Right: ExprVar{Name: "id"}}
	assert.Equal(t, `("a") + (id)`, e.render())
}

func TestRenderObjectPreservesKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("method", ExprLiteral{Literal: StringLiteral("GET")})
	obj.Set("url", ExprVar{Name: "url"})
	e := ExprObject{Fields: obj}
	assert.Equal(t, `{ method: "GET", url: url }`, e.render())
}

func TestRenderEndpointMethodBody(t *testing.T) {
	obj := NewObject()
	obj.Set("method", ExprLiteral{Literal: StringLiteral("GET")})
	obj.Set("url", ExprMember{Base: ExprVar{Name: "this"}, Member: "_url"})
	stmts := []Stmt{
		StmtReturn{Expr: ExprFuncCall{Callee: ExprVar{Name: "axios"}, Args: []Expr{ExprObject{Fields: obj}}}},
	}
	m := Method{Ident: "get", Stmts: stmts}
	assert.Equal(t, "get() {\nreturn axios({ method: \"GET\", url: this._url });\n}", m.render())
}

func TestRenderClassWithConstructorAndGetter(t *testing.T) {
	super := Ident("Object")
	c := Class{
		Ident:   "RatinaClient",
		Extends: &super,
		Constructor: &Constructor{
			Params: []Ident{"id"},
			Stmts: []Stmt{
				StmtAssign{Assign: Assign{Ident: "this._id", Expr: ExprVar{Name: "id"}}},
			},
		},
		Getters: []Getter{
			{Ident: "id", Stmts: []Stmt{StmtReturn{Expr: ExprMember{Base: ExprVar{Name: "this"}, Member: "_id"}}}},
		},
	}
	want := "class RatinaClient extends Object {\n" +
		"constructor(id) {\nthis._id = id;\n}\n" +
		"get id() {\nreturn this._id;\n}\n" +
		"}"
	assert.Equal(t, want, c.render())
}

func TestRenderImportVariants(t *testing.T) {
	def := Ident("axios")
	assert.Equal(t, `import axios from "axios";`, Import{Default: &def, Path: "axios"}.render())

	star := Ident("ns")
	assert.Equal(t, `import * as ns from "./mod";`, Import{Star: &star, Path: "./mod"}.render())

	alias := Ident("b")
	names := []ImportName{{Name: "a"}, {Name: "c", Alias: &alias}}
	assert.Equal(t, `import { a, c as b } from "./mod";`, Import{Names: names, Path: "./mod"}.render())

	assert.Equal(t, `import "./side-effect";`, Import{Path: "./side-effect"}.render())
}

func TestRenderForLoop(t *testing.T) {
	dt := DeclLet
	loop := StmtForLoop{
		Init:  StmtAssign{Assign: Assign{Type: &dt, Ident: "i", Expr: ExprLiteral{Literal: NumberLiteral(0)}}},
		Check: ExprComp{Op: "<", Left: ExprVar{Name: "i"}, Right: ExprVar{Name: "n"}},
		Incr:  StmtAssign{Assign: Assign{Ident: "i", Expr: ExprArith{Op: "+", Left: ExprVar{Name: "i"}, Right: ExprLiteral{Literal: NumberLiteral(1)}}}},
		Stmts: []Stmt{StmtExpr{Expr: ExprFuncCall{Callee: ExprVar{Name: "f"}, Args: []Expr{ExprVar{Name: "i"}}}}},
	}
	want := "for (let i = 0; (i) < (n); i = (i) + (1)) {\nf(i);\n}"
	assert.Equal(t, want, loop.render())
}

func TestRenderExportDefault(t *testing.T) {
	c := Class{Ident: "X"}
	stmt := StmtExport{IsDefault: true, Inner: StmtClass{Class: c}}
	assert.Equal(t, "export default class X {\n\n}", stmt.render())
}

func TestRenderCodeJoinsTopLevelStatementsWithNewline(t *testing.T) {
	def := Ident("axios")
	code := &Code{Stmts: []Stmt{
		StmtImport{Import: Import{Default: &def, Path: "axios"}},
		StmtExport{IsDefault: true, Inner: StmtClass{Class: Class{Ident: "X"}}},
	}}
	want := "import axios from \"axios\";\nexport default class X {\n\n}\n"
	assert.Equal(t, want, Render(code))
}
