package jsgen

import (
	"testing"

	"github.com/aledsdavies/xsrc/pkgs/codemodel"
	"github.com/aledsdavies/xsrc/pkgs/ir"
	"github.com/aledsdavies/xsrc/pkgs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuildIR(t *testing.T, doc string) *ir.RootIR {
	t.Helper()
	s, err := schema.Parse([]byte(doc))
	require.NoError(t, err)
	root, err := ir.Transform(s)
	require.NoError(t, err)
	return root
}

const ratinaDoc = `
$url: "http://ratina.org/<id:int>"
$as: RatinaClient
ahcro:
  $method: GET
~ratincren:
  $url: "${!super.url}/ratincren"
  get:
    $method: GET
    $params:
      limit: int
`

func TestRewriteEmitsImportGroupsThenDefaultExport(t *testing.T) {
	root := mustBuildIR(t, ratinaDoc)
	code, err := Rewrite(root)
	require.NoError(t, err)

	require.Len(t, code.Stmts, 3)
	_, isImport := code.Stmts[0].(codemodel.StmtImport)
	assert.True(t, isImport)
	_, isGroup := code.Stmts[1].(codemodel.StmtClass)
	assert.True(t, isGroup)
	export, isExport := code.Stmts[2].(codemodel.StmtExport)
	require.True(t, isExport)
	assert.True(t, export.IsDefault)
}

func TestRewriteRootConstructorAssignsURLUnconditionally(t *testing.T) {
	root := mustBuildIR(t, ratinaDoc)
	code, err := Rewrite(root)
	require.NoError(t, err)

	rendered := codemodel.Render(code)
	assert.Contains(t, rendered, `this._url = ("http://ratina.org/") + (id);`)
	assert.Contains(t, rendered, "constructor(id)")
}

func TestRewriteGroupReferencesParentViaSuperChain(t *testing.T) {
	root := mustBuildIR(t, ratinaDoc)
	code, err := Rewrite(root)
	require.NoError(t, err)

	rendered := codemodel.Render(code)
	assert.Contains(t, rendered, "this._url = (this._super._url) + (\"/ratincren\");")
	assert.Contains(t, rendered, "class ratincren {")
	assert.Contains(t, rendered, "this._ratincren = new ratincren(this);")
}

func TestRewriteEndpointMethodEmitsOrderedAxiosConfig(t *testing.T) {
	root := mustBuildIR(t, ratinaDoc)
	code, err := Rewrite(root)
	require.NoError(t, err)

	rendered := codemodel.Render(code)
	assert.Contains(t, rendered, `async get(limit) {`)
	assert.Contains(t, rendered, `{ method: "get", url: this._super._url, params: { limit: limit } }`)
}

func TestRewriteEmptyRootSynthesizesURLParam(t *testing.T) {
	root := mustBuildIR(t, "{}")
	code, err := Rewrite(root)
	require.NoError(t, err)

	rendered := codemodel.Render(code)
	assert.Contains(t, rendered, "constructor(url)")
	assert.Contains(t, rendered, "this._url = url;")
}

func TestRewriteNoParamEndpointTakesNoArgs(t *testing.T) {
	root := mustBuildIR(t, ratinaDoc)
	code, err := Rewrite(root)
	require.NoError(t, err)

	rendered := codemodel.Render(code)
	assert.Contains(t, rendered, "async ahcro() {")
}
