package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sango-kit/sango/internal/configschema"
	"github.com/sango-kit/sango/internal/naming"
	"github.com/sango-kit/sango/internal/projectfs"
)

func newTestGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &configschema.Config{
		ModulePrefix: "github.com/example/shop",
		ModulesDir:   "modules",
		APIPrefix:    "/v1",
	}
	return New(projectfs.New(dir), cfg), dir
}

func listTree(t *testing.T, dir string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			paths = append(paths, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return paths
}

func TestPlanProducesSixFixedFiles(t *testing.T) {
	gen, dir := newTestGenerator(t)

	plan, err := gen.Plan("order_items")
	require.NoError(t, err)

	want := []string{
		"modules/order_items/model.go",
		"modules/order_items/schemas.go",
		"modules/order_items/repository.go",
		"modules/order_items/use_case.go",
		"modules/order_items/router.go",
		"modules/order_items/doc.go",
	}
	require.Len(t, plan.Entries, len(want))
	for i, entry := range plan.Entries {
		assert.Equal(t, want[i], entry.Path)
		assert.False(t, entry.Exists)
		assert.NotEmpty(t, entry.Content)
	}

	// Planning never touches the filesystem.
	assert.Empty(t, listTree(t, dir))
}

func TestPlanIsIdempotent(t *testing.T) {
	gen, _ := newTestGenerator(t)

	first, err := gen.Plan("products")
	require.NoError(t, err)
	second, err := gen.Plan("products")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanRejectsInvalidNames(t *testing.T) {
	gen, dir := newTestGenerator(t)

	tests := []struct {
		input   string
		wantErr error
	}{
		{"", naming.ErrEmptyName},
		{"2fast", naming.ErrLeadingDigit},
		{"Products", naming.ErrInvalidCharacter},
		{"order-items", naming.ErrInvalidCharacter},
		{"users", naming.ErrReservedName},
		// would redeclare the router package in the manifest import block
		{"router", naming.ErrReservedName},
	}
	for _, tt := range tests {
		_, err := gen.Plan(tt.input)
		require.ErrorIs(t, err, tt.wantErr, "input %q", tt.input)
	}

	// Rejection happens before any file is created.
	assert.Empty(t, listTree(t, dir))
}

func TestPlanRendersDerivedNamesConsistently(t *testing.T) {
	gen, _ := newTestGenerator(t)

	plan, err := gen.Plan("products")
	require.NoError(t, err)

	for _, entry := range plan.Entries {
		assert.Contains(t, entry.Content, "package products", "kind %s", entry.Kind)
	}
	// Pascal form in every non-marker file, collection name in the model,
	// plural route prefix in the router.
	for _, entry := range plan.Entries {
		switch entry.Kind {
		case "model":
			assert.Contains(t, entry.Content, "type Products struct")
			assert.Contains(t, entry.Content, `return "products"`)
		case "router":
			assert.Contains(t, entry.Content, `const Prefix = "/v1/products"`)
		}
	}
}

func TestApplyWritesAllFiles(t *testing.T) {
	gen, dir := newTestGenerator(t)

	plan, err := gen.Plan("products")
	require.NoError(t, err)

	result, err := gen.Apply(plan, false)
	require.NoError(t, err)

	assert.Len(t, result.Written, 6)
	assert.Empty(t, result.Conflicts)
	assert.Len(t, listTree(t, dir), 6)

	content, err := os.ReadFile(filepath.Join(dir, "modules", "products", "router.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"/v1/products"`)
}

func TestApplySkipsConflictsWithoutForce(t *testing.T) {
	gen, dir := newTestGenerator(t)

	existing := filepath.Join(dir, "modules", "products", "model.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("// customized\n"), 0644))

	plan, err := gen.Plan("products")
	require.NoError(t, err)

	result, err := gen.Apply(plan, false)
	require.NoError(t, err)

	assert.Len(t, result.Written, 5)
	assert.Equal(t, []string{"modules/products/model.go"}, result.Conflicts)

	// The conflicting file is left untouched.
	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "// customized\n", string(content))
}

func TestApplyOverwritesWithForce(t *testing.T) {
	gen, dir := newTestGenerator(t)

	existing := filepath.Join(dir, "modules", "products", "model.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("// customized\n"), 0644))

	plan, err := gen.Plan("products")
	require.NoError(t, err)

	result, err := gen.Apply(plan, true)
	require.NoError(t, err)

	assert.Len(t, result.Written, 6)
	assert.Empty(t, result.Conflicts)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotEqual(t, "// customized\n", string(content))
	assert.Contains(t, string(content), "type Products struct")
}

func TestApplyReportsPartialWrites(t *testing.T) {
	gen, dir := newTestGenerator(t)

	plan, err := gen.Plan("products")
	require.NoError(t, err)

	// Make the module directory read-only after the first two files so the
	// third write fails.
	result, err := gen.Apply(&GenerationPlan{
		Feature: plan.Feature,
		Dir:     plan.Dir,
		Entries: plan.Entries[:2],
	}, false)
	require.NoError(t, err)
	require.Len(t, result.Written, 2)

	moduleDir := filepath.Join(dir, "modules", "products")
	require.NoError(t, os.Chmod(moduleDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(moduleDir, 0755) })

	result, err = gen.Apply(&GenerationPlan{
		Feature: plan.Feature,
		Dir:     plan.Dir,
		Entries: plan.Entries[2:],
	}, false)
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "modules/products/repository.go", writeErr.Path)
	assert.Empty(t, result.Written)

	// Files written earlier remain on disk.
	_, statErr := os.Stat(filepath.Join(moduleDir, "model.go"))
	assert.NoError(t, statErr)
}

func TestListModules(t *testing.T) {
	gen, dir := newTestGenerator(t)

	for _, name := range []string{"products", "invoices"} {
		plan, err := gen.Plan(name)
		require.NoError(t, err)
		_, err = gen.Apply(plan, false)
		require.NoError(t, err)
	}

	// A directory without a router file is not a module.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "modules", "scratch"), 0755))

	modules, err := gen.ListModules()
	require.NoError(t, err)
	assert.Equal(t, []string{"invoices", "products"}, modules)
}

func TestListModulesEmptyRoot(t *testing.T) {
	gen, _ := newTestGenerator(t)

	modules, err := gen.ListModules()
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestSyncManifest(t *testing.T) {
	gen, dir := newTestGenerator(t)

	plan, err := gen.Plan("products")
	require.NoError(t, err)
	_, err = gen.Apply(plan, false)
	require.NoError(t, err)

	target, err := gen.SyncManifest()
	require.NoError(t, err)
	assert.Equal(t, "modules/manifest.go", target)

	content, err := os.ReadFile(filepath.Join(dir, "modules", "manifest.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"github.com/example/shop/modules/products"`)
	assert.Contains(t, string(content), `{Name: "products", Prefix: products.Prefix, Mount: products.NewRouter},`)
}
