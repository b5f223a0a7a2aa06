package seexpr

// Parse scans s into a single Expr and the ordered set of bound parameters
// it introduces. Positions reported in errors are rune offsets into s,
// matching the original reference parser.
//
// Grammar (informal):
//
//	expr    := (lit | ref | param)*
//	ref     := "$" "{" member ("." member)* "}"
//	member  := "!super" | name
//	param   := "<" name (":" type)? ">"
//	lit     := any run of characters not starting a ref or param, with "\"
//	           escaping the following character literally
func Parse(s string) (Expr, BoundVars, error) {
	runes := []rune(s)
	var parts []Expr
	bound := NewBoundVars()

	var lit []rune
	flushLit := func() {
		if len(lit) > 0 {
			parts = append(parts, Lit{Text: string(lit)})
			lit = nil
		}
	}

	pos := 0
	for pos < len(runes) {
		ch := runes[pos]
		switch ch {
		case '$':
			flushLit()
			expr, next, err := parseRef(runes, pos+1)
			if err != nil {
				return nil, nil, err
			}
			parts = append(parts, expr)
			pos = next
		case '<':
			flushLit()
			expr, param, next, err := parseParam(runes, pos+1)
			if err != nil {
				return nil, nil, err
			}
			if _, present := bound.Get(param.Name); present {
				return nil, nil, errDuplicateParam(param.Name)
			}
			bound.Set(param.Name, param)
			parts = append(parts, expr)
			pos = next
		case '\\':
			if pos+1 >= len(runes) {
				return nil, nil, errUnexpectedEOF()
			}
			lit = append(lit, runes[pos+1])
			pos += 2
		default:
			lit = append(lit, ch)
			pos++
		}
	}
	flushLit()

	result, err := collectExprs(parts)
	if err != nil {
		return nil, nil, err
	}
	return result, bound, nil
}

// parseRef parses a "{member(.member)*}" body starting at pos, where pos
// points at the opening '{'. It returns the parsed Ref and the position
// just past the closing '}'.
func parseRef(runes []rune, pos int) (Expr, int, error) {
	if pos >= len(runes) {
		return nil, 0, errUnexpectedEOF()
	}
	if runes[pos] != '{' {
		return nil, 0, errUnexpectedToken(runes[pos], pos)
	}

	var path []Member
	var curr []rune
	i := pos + 1
	for {
		if i >= len(runes) {
			return nil, 0, errUnexpectedEOF()
		}
		ch := runes[i]
		switch ch {
		case '\\':
			return nil, 0, errUnexpectedToken(ch, i)
		case '}':
			if len(curr) == 0 {
				return nil, 0, errUnexpectedToken(ch, i)
			}
			path = append(path, identToMember(string(curr)))
			i++
			return Ref{Path: path}, i, nil
		case '.':
			if len(curr) == 0 {
				return nil, 0, errUnexpectedToken(ch, i)
			}
			path = append(path, identToMember(string(curr)))
			curr = nil
			i++
		default:
			curr = append(curr, ch)
			i++
		}
	}
}

func identToMember(s string) Member {
	if s == "!super" {
		return Member{Super: true}
	}
	return Member{Name: s}
}

// parseParam parses a "name(:type)?>" body starting at pos, where pos
// points just past the opening '<'. It returns the Var reference, the
// Param it introduces, and the position just past the closing '>'.
func parseParam(runes []rune, pos int) (Expr, Param, int, error) {
	var name, typ []rune
	inName := true
	i := pos
	for {
		if i >= len(runes) {
			return nil, Param{}, 0, errUnexpectedEOF()
		}
		ch := runes[i]
		switch ch {
		case '>':
			if len(name) == 0 {
				return nil, Param{}, 0, errUnexpectedToken(ch, i)
			}
			if !inName && len(typ) == 0 {
				// Saw ":" but no type text followed before ">".
				return nil, Param{}, 0, errUnexpectedEOF()
			}
			i++
			return Var{Name: string(name)}, Param{Name: string(name), Type: string(typ)}, i, nil
		case ':':
			if len(name) == 0 || !inName {
				return nil, Param{}, 0, errUnexpectedToken(ch, i)
			}
			inName = false
		default:
			if inName {
				name = append(name, ch)
			} else {
				typ = append(typ, ch)
			}
		}
		i++
	}
}

func collectExprs(exprs []Expr) (Expr, error) {
	if len(exprs) == 0 {
		return nil, errEmptyExpr()
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = Concat{Left: result, Right: e}
	}
	return result, nil
}
