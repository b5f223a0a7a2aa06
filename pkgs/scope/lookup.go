package scope

import "github.com/aledsdavies/xsrc/pkgs/seexpr"

// Lookup resolves path relative to n. "!super" segments climb to the
// parent context and delegate unconditionally, with whatever remains of
// path after it; any other segment either descends into a named child
// (when more segments follow) or resolves against the local scope (when
// it is the final segment).
//
//  1. An empty path is a LookupError of kind EmptyKey.
//  2. A "!super" segment at a node with no parent is NoSuchMember.
//  3. A "!super" segment delegates to the parent's Lookup with the rest
//     of path, even when nothing remains (yielding EmptyKey at the
//     parent, per rule 1).
//  4. A non-final segment matching a local scope entry rather than a
//     child context is LookupOnValue.
//  5. Any segment matching neither a child nor (when final) a local
//     scope entry is NoSuchMember.
func (n *Node) Lookup(path []string) (seexpr.Expr, error) {
	if len(path) == 0 {
		return nil, errEmptyKey(n.Path())
	}

	head, rest := path[0], path[1:]

	if head == "!super" {
		if n.Parent == nil {
			return nil, errNoSuchMember(head, n.Path())
		}
		return n.Parent.Lookup(rest)
	}

	if len(rest) == 0 {
		if val, ok := n.Local[head]; ok {
			return val, nil
		}
		return nil, errNoSuchMember(head, n.Path())
	}

	if child, ok := n.Children[head]; ok {
		return child.Lookup(rest)
	}
	if val, ok := n.Local[head]; ok {
		return nil, errLookupOnValue(head, val.String(), n.Path())
	}
	return nil, errNoSuchMember(head, n.Path())
}
