package codemodel

import "strings"

// Constructor is a class's constructor method.
type Constructor struct {
	Params []Ident
	Stmts  []Stmt
}

func (c Constructor) render() string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = string(p)
	}
	return "constructor(" + strings.Join(params, ", ") + ") {\n" + renderStmtBlock(c.Stmts) + "\n}"
}

// Method is an instance method.
type Method struct {
	Ident  string
	Params []string
	Stmts  []Stmt
	Async  bool
}

func (m Method) render() string {
	prefix := ""
	if m.Async {
		prefix = "async "
	}
	return prefix + m.Ident + "(" + strings.Join(m.Params, ", ") + ") {\n" + renderStmtBlock(m.Stmts) + "\n}"
}

// Getter is a "get ident()" accessor.
type Getter struct {
	Ident string
	Stmts []Stmt
}

func (g Getter) render() string {
	return "get " + g.Ident + "() {\n" + renderStmtBlock(g.Stmts) + "\n}"
}

// Class is a class declaration. Constructor is optional (nil when the
// class has none).
type Class struct {
	Ident       Ident
	Extends     *Ident
	Constructor *Constructor
	Methods     []Method
	Getters     []Getter
}

func (Class) isExpr() {}
func (c Class) render() string {
	extends := ""
	if c.Extends != nil {
		extends = "extends " + string(*c.Extends) + " "
	}

	var members []string
	if c.Constructor != nil {
		members = append(members, c.Constructor.render())
	}
	for _, m := range c.Methods {
		members = append(members, m.render())
	}
	for _, g := range c.Getters {
		members = append(members, g.render())
	}

	return "class " + string(c.Ident) + " " + extends + "{\n" + strings.Join(members, "\n") + "\n}"
}

// ImportName is one named import, e.g. "{ a }" or "{ a as b }".
type ImportName struct {
	Name  Ident
	Alias *Ident // nil for a plain (non-aliased) import
}

func (n ImportName) render() string {
	if n.Alias != nil {
		return string(n.Name) + " as " + string(*n.Alias)
	}
	return string(n.Name)
}

// Import is a single import statement. Default, Star, and Names may be
// combined per JavaScript's own import grammar (e.g. default + named).
type Import struct {
	Default *Ident
	Star    *Ident // namespace import alias, "* as Star"
	Names   []ImportName
	Path    string
}

func (i Import) render() string {
	var clauses []string
	if i.Default != nil {
		clauses = append(clauses, string(*i.Default))
	}
	if i.Star != nil {
		clauses = append(clauses, "* as "+string(*i.Star))
	}
	if len(i.Names) > 0 {
		parts := make([]string, len(i.Names))
		for idx, n := range i.Names {
			parts[idx] = n.render()
		}
		clauses = append(clauses, "{ "+strings.Join(parts, ", ")+" }")
	}

	if len(clauses) == 0 {
		return `import "` + i.Path + `";`
	}
	return "import " + strings.Join(clauses, ", ") + ` from "` + i.Path + `";`
}

// Code is a complete source file: a flat list of top-level statements.
type Code struct {
	Stmts []Stmt
}

// Render produces the final JavaScript source text for c.
func Render(c *Code) string {
	return renderStmtBlock(c.Stmts) + "\n"
}
