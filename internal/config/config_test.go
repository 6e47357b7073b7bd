package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaquot/internal/config"
)

func TestDefaults(t *testing.T) {
	names := config.Default()
	assert.Equal(t, "Ast", names.AstModule)
	assert.Equal(t, "Ty", names.TyModule)
	assert.Equal(t, "Stdlib.append", names.Append)
	assert.Equal(t, "Loc.current", names.DefaultLocation)
	assert.Equal(t, "Reference", names.Reference)
	assert.Equal(t, "Submission", names.Submission)
	assert.Equal(t, "Printable", names.Printable)
}

func TestLoadFillsUnsetEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(`
[harness]
ast_module = "Tree"
append = "List.concat"
`), 0o644))

	names, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Tree", names.AstModule)
	assert.Equal(t, "List.concat", names.Append)
	// unset entries keep their defaults
	assert.Equal(t, "Ty", names.TyModule)
	assert.Equal(t, "Loc.current", names.DefaultLocation)
}

func TestLoadRejectsMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(`[harness`), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFindSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "exercises", "week3")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestName), []byte(`
[harness]
reference = "Solution"
`), 0o644))

	names, err := config.Find(nested)
	require.NoError(t, err)
	assert.Equal(t, "Solution", names.Reference)
	assert.Equal(t, "Submission", names.Submission)
}

func TestFindWithoutManifestUsesDefaults(t *testing.T) {
	names, err := config.Find(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), names)
}
