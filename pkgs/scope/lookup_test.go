package scope

import (
	"testing"

	"github.com/aledsdavies/xsrc/pkgs/seexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() (*Node, *Node, *Node) {
	root := New("root")
	root.Bind("url", seexpr.Lit{Text: "http://example.org"})

	group := root.AddChild("ahcro")
	group.Bind("url", seexpr.Ref{Path: []seexpr.Member{{Super: true}, {Name: "url"}}})

	endpoint := group.AddChild("get")
	endpoint.Bind("url", seexpr.Ref{Path: []seexpr.Member{{Super: true}, {Name: "url"}}})

	return root, group, endpoint
}

func TestLookupSuperToParentScope(t *testing.T) {
	_, group, _ := buildTree()
	val, err := group.Lookup([]string{"!super", "url"})
	require.NoError(t, err)
	assert.Equal(t, seexpr.Lit{Text: "http://example.org"}, val)
}

func TestLookupLocalScope(t *testing.T) {
	root, _, _ := buildTree()
	val, err := root.Lookup([]string{"url"})
	require.NoError(t, err)
	assert.Equal(t, seexpr.Lit{Text: "http://example.org"}, val)
}

func TestLookupSuperAtRootIsNoSuchMember(t *testing.T) {
	root, _, _ := buildTree()
	_, err := root.Lookup([]string{"!super", "url"})
	le := requireLookupError(t, err)
	assert.Equal(t, KindNoSuchMember, le.Kind)
	assert.Equal(t, "!super", le.Member)
}

func TestLookupSuperAsFinalSegment(t *testing.T) {
	root, group, _ := buildTree()
	_, err := group.Lookup([]string{"!super"})
	le := requireLookupError(t, err)
	assert.Equal(t, KindEmptyKey, le.Kind)
	assert.Equal(t, root.Path(), le.ContextPath)
}

func TestLookupOnValueWhenDescendingThroughScalar(t *testing.T) {
	root, _, _ := buildTree()
	_, err := root.Lookup([]string{"url", "nested"})
	le := requireLookupError(t, err)
	assert.Equal(t, KindLookupOnValue, le.Kind)
	assert.Equal(t, "url", le.Member)
}

func TestLookupNoSuchMember(t *testing.T) {
	root, _, _ := buildTree()
	_, err := root.Lookup([]string{"missing"})
	le := requireLookupError(t, err)
	assert.Equal(t, KindNoSuchMember, le.Kind)
	assert.Equal(t, "missing", le.Member)
}

func TestLookupEmptyPath(t *testing.T) {
	root, _, _ := buildTree()
	_, err := root.Lookup(nil)
	le := requireLookupError(t, err)
	assert.Equal(t, KindEmptyKey, le.Kind)
}

func TestLookupThroughTwoAncestors(t *testing.T) {
	_, _, endpoint := buildTree()
	val, err := endpoint.Lookup([]string{"!super", "!super", "url"})
	require.NoError(t, err)
	assert.Equal(t, seexpr.Lit{Text: "http://example.org"}, val)
}

func TestLookupPastRootIsNoSuchMember(t *testing.T) {
	_, _, endpoint := buildTree()
	_, err := endpoint.Lookup([]string{"!super", "!super", "!super", "url"})
	le := requireLookupError(t, err)
	assert.Equal(t, KindNoSuchMember, le.Kind)
	assert.Equal(t, "!super", le.Member)
}

func requireLookupError(t *testing.T, err error) *LookupError {
	t.Helper()
	require.Error(t, err)
	le, ok := err.(*LookupError)
	require.True(t, ok, "expected *LookupError, got %T", err)
	return le
}
