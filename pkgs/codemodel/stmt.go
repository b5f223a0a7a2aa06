package codemodel

import "strings"

// Stmt is the closed set of target-language statements.
type Stmt interface {
	isStmt()
	render() string
}

// StmtExpr is a bare expression statement.
type StmtExpr struct{ Expr Expr }

func (StmtExpr) isStmt()          {}
func (s StmtExpr) render() string { return s.Expr.render() + ";" }

// Decl is a declaration with no initializer, e.g. "let x;".
type Decl struct {
	Type  DeclType
	Ident Ident
}

func (Decl) isStmt() {}
func (d Decl) render() string {
	return d.Type.render() + " " + string(d.Ident) + ";"
}

// StmtDecl wraps Decl as a statement.
type StmtDecl struct{ Decl Decl }

func (StmtDecl) isStmt()          {}
func (s StmtDecl) render() string { return s.Decl.render() }

// Assign is a declaration-with-initializer ("let x = expr;") when Type is
// non-nil, or a bare assignment ("x = expr;") when Type is nil.
type Assign struct {
	Type  *DeclType
	Ident Ident
	Expr  Expr
}

func (Assign) isStmt() {}
func (a Assign) render() string {
	if a.Type != nil {
		return a.Type.render() + " " + string(a.Ident) + " = " + a.Expr.render() + ";"
	}
	return string(a.Ident) + " = " + a.Expr.render() + ";"
}

// StmtAssign wraps Assign as a statement.
type StmtAssign struct{ Assign Assign }

func (StmtAssign) isStmt()          {}
func (s StmtAssign) render() string { return s.Assign.render() }

// StmtReturn is "return expr;".
type StmtReturn struct{ Expr Expr }

func (StmtReturn) isStmt()          {}
func (s StmtReturn) render() string { return "return " + s.Expr.render() + ";" }

// StmtForLoop is a classic three-clause for loop.
type StmtForLoop struct {
	Init  Stmt // e.g. StmtAssign; may be nil
	Check Expr
	Incr  Stmt // e.g. StmtAssign; may be nil
	Stmts []Stmt
}

func (StmtForLoop) isStmt() {}
func (s StmtForLoop) render() string {
	return "for (" + trimSemi(renderClause(s.Init)) + "; " + s.Check.render() + "; " + trimSemi(renderClause(s.Incr)) + ") {\n" + renderStmtBlock(s.Stmts) + "\n}"
}

func renderClause(s Stmt) string {
	if s == nil {
		return ""
	}
	return s.render()
}

func trimSemi(s string) string {
	return strings.TrimSuffix(s, ";")
}

// StmtImport wraps Import as a statement.
type StmtImport struct{ Import Import }

func (StmtImport) isStmt()          {}
func (s StmtImport) render() string { return s.Import.render() }

// StmtClass wraps Class as a statement.
type StmtClass struct{ Class Class }

func (StmtClass) isStmt()          {}
func (s StmtClass) render() string { return s.Class.render() }

// StmtExport is "export [default] inner".
type StmtExport struct {
	IsDefault bool
	Inner     Stmt
}

func (StmtExport) isStmt() {}
func (s StmtExport) render() string {
	if s.IsDefault {
		return "export default " + s.Inner.render()
	}
	return "export " + s.Inner.render()
}

func renderStmtBlock(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.render()
	}
	return strings.Join(parts, "\n")
}
