package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `
$url: "http://example.org"
$as: ExampleClient
list:
  $method: GET
`

func TestRunGeneratesOutputFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	outPath := filepath.Join(dir, "client.js")
	require.NoError(t, os.WriteFile(schemaPath, []byte(sampleSchema), 0o644))

	schemaFile, target, outFile = schemaPath, "js", outPath
	defer func() { schemaFile, target, outFile = "", "", "" }()

	err := run(nil, nil)
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "export default class ExampleClient")
	assert.Contains(t, string(out), "async list()")
}

func TestRunRejectsUnsupportedTarget(t *testing.T) {
	schemaFile, target, outFile = "unused.yaml", "python", "unused.js"
	defer func() { schemaFile, target, outFile = "", "", "" }()

	err := run(nil, nil)
	require.Error(t, err)
}
