package configschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadDefaultsFromGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/shop\n\ngo 1.24.0\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "github.com/example/shop", cfg.ModulePrefix)
	assert.Equal(t, DefaultModulesDir, cfg.ModulesDir)
	assert.Equal(t, DefaultAPIPrefix, cfg.APIPrefix)
}

func TestLoadSangoYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `
project_name: shop
module_prefix: github.com/example/shop
modules_dir: apiapp/modules
api_prefix: /api/v1
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.ProjectName)
	assert.Equal(t, "github.com/example/shop", cfg.ModulePrefix)
	assert.Equal(t, "apiapp/modules", cfg.ModulesDir)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
}

func TestLoadFailsOutsideProject(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module_prefix")
}

func TestLoadRejectsAbsoluteModulesDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "module_prefix: github.com/example/shop\nmodules_dir: /tmp/modules\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modules_dir")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "modules_dir: [unterminated\n")

	_, err := Load(dir)
	require.Error(t, err)
}
