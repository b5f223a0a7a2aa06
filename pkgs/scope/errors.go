package scope

import "strings"

// LookupErrorKind enumerates the closed set of lookup failures.
type LookupErrorKind int

const (
	// KindNoSuchMember: the named member does not exist at the point the
	// path reached, or "!super" was used at a node with no parent.
	KindNoSuchMember LookupErrorKind = iota
	// KindEmptyKey: the lookup path had no segments.
	KindEmptyKey
	// KindLookupOnValue: a non-terminal path segment named a local scope
	// entry (a scalar expression) rather than a child context, so the
	// remaining path segments have nothing to descend into.
	KindLookupOnValue
)

// LookupError is the sentinel type for every failure Node.Lookup can
// produce.
type LookupError struct {
	Kind        LookupErrorKind
	Member      string
	ContextPath []string
	Value       string // set for KindLookupOnValue: the stringified scalar found
}

func (e *LookupError) Error() string {
	path := strings.Join(e.ContextPath, ".")
	switch e.Kind {
	case KindNoSuchMember:
		if path == "" {
			return "no such member " + e.Member
		}
		return "no such member " + e.Member + " at " + path
	case KindEmptyKey:
		return "lookup path is empty at " + path
	case KindLookupOnValue:
		return "cannot look up " + e.Member + " on value " + e.Value + " at " + path
	default:
		return "unknown lookup error"
	}
}

func errNoSuchMember(member string, path []string) error {
	return &LookupError{Kind: KindNoSuchMember, Member: member, ContextPath: path}
}

func errEmptyKey(path []string) error {
	return &LookupError{Kind: KindEmptyKey, ContextPath: path}
}

func errLookupOnValue(member, value string, path []string) error {
	return &LookupError{Kind: KindLookupOnValue, Member: member, Value: value, ContextPath: path}
}
