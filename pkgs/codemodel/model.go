// Package codemodel is a small, language-agnostic structural model of a
// JavaScript-family source file — declarations, expressions, statements,
// classes, and imports — plus a deterministic renderer. Building the
// model and rendering it are separate steps: nothing here inspects or
// validates the target language's own grammar beyond the surface-form
// rules documented on each Render method.
package codemodel

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Ident is a bare identifier.
type Ident string

// DeclType distinguishes var/let/const declarations.
type DeclType int

const (
	DeclVar DeclType = iota
	DeclLet
	DeclConst
)

func (d DeclType) render() string {
	switch d {
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	default:
		return "var"
	}
}

// Literal is a constant value embedded in an expression.
type Literal struct {
	String *string
	Number *float64
	Bool   *bool
}

func StringLiteral(s string) Literal { return Literal{String: &s} }
func NumberLiteral(n float64) Literal { return Literal{Number: &n} }
func BoolLiteral(b bool) Literal      { return Literal{Bool: &b} }

// Object is an insertion-ordered set of key/expression pairs, rendered as
// a JavaScript object literal.
type Object = *orderedmap.OrderedMap[string, Expr]

func NewObject() Object { return orderedmap.New[string, Expr]() }
