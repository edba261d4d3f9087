// Package generator provides module scaffolding for sango projects.
//
// Overview:
//   - Responsibility: Plan and apply generation of module file sets, list
//     existing modules, keep the module manifest in sync
//   - Key Types: Generator, GenerationPlan, ApplyResult
//   - Concurrency Model: Single-threaded CLI invocations; no locking
//   - Error Semantics: Validation rejects before any I/O; apply is
//     best-effort and reports partial completion
//   - Performance Notes: Plan renders everything up front; apply only writes
//
// Usage:
//
//	gen := generator.New(fs, cfg)
//	plan, err := gen.Plan("order_items")
//	result, err := gen.Apply(plan, false)
package generator

import (
	"fmt"
	"path"

	"github.com/sango-kit/sango/internal/configschema"
	"github.com/sango-kit/sango/internal/naming"
	"github.com/sango-kit/sango/internal/projectfs"
	"github.com/sango-kit/sango/internal/templates"
)

// ManifestFileName is the generated registration file inside the modules dir.
const ManifestFileName = "manifest.go"

// Generator scaffolds feature modules under a project's modules directory.
type Generator struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	cfg    *configschema.Config
}

// New creates a generator for the given project file system and config.
func New(fs *projectfs.ProjectFS, cfg *configschema.Config) *Generator {
	return &Generator{
		fs:     fs,
		loader: templates.NewLoader(),
		cfg:    cfg,
	}
}

// PlanEntry is one file of a generation plan.
type PlanEntry struct {
	// Kind is the fixed file kind this entry renders.
	Kind templates.Kind
	// Path is the target path relative to the project root.
	Path string
	// Content is the fully rendered file content.
	Content string
	// Exists records whether the target path existed at planning time.
	Exists bool
}

// GenerationPlan maps each file kind to its target path and rendered
// content. It is built before any filesystem mutation so dry-run and force
// semantics never re-derive paths.
type GenerationPlan struct {
	// Feature holds the validated name and its derived forms.
	Feature naming.Name
	// Dir is the module directory relative to the project root.
	Dir string
	// Entries lists the six planned files in generation order.
	Entries []PlanEntry
}

// ApplyResult reports the outcome of applying a plan.
type ApplyResult struct {
	// Written lists the paths actually written, in order.
	Written []string
	// Conflicts lists the paths skipped because they already existed.
	Conflicts []string
}

// WriteError reports a failed write during apply. Files written before the
// failure remain on disk; there is no rollback.
type WriteError struct {
	// Path is the entry that failed to write.
	Path string
	// Written lists the paths successfully written before the failure.
	Written []string
	// Err is the underlying filesystem error.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s (%d files were already written): %v", e.Path, len(e.Written), e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Plan validates the feature name, computes all target paths, and renders
// all content without touching the filesystem (existence checks aside).
func (g *Generator) Plan(feature string) (*GenerationPlan, error) {
	name, err := naming.Parse(feature)
	if err != nil {
		return nil, err
	}

	ctx := templates.Context{
		Snake:        name.Snake,
		Pascal:       name.Pascal,
		PluralSnake:  name.PluralSnake,
		ModulePrefix: g.cfg.ModulePrefix,
		APIPrefix:    g.cfg.APIPrefix,
	}

	plan := &GenerationPlan{
		Feature: name,
		Dir:     path.Join(g.cfg.ModulesDir, name.Snake),
	}

	for _, kind := range templates.Kinds() {
		fileName, err := templates.FileName(kind)
		if err != nil {
			return nil, err
		}
		content, err := g.loader.Render(kind, ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s for %s: %w", kind, name.Snake, err)
		}

		target := path.Join(plan.Dir, fileName)
		exists, err := g.fs.FileExists(target)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", target, err)
		}

		plan.Entries = append(plan.Entries, PlanEntry{
			Kind:    kind,
			Path:    target,
			Content: content,
			Exists:  exists,
		})
	}

	return plan, nil
}

// Apply writes the planned files. Existing targets are skipped and recorded
// as conflicts unless force is set, in which case they are overwritten.
// Apply is not transactional: on a write failure it returns a WriteError
// carrying the paths written so far.
func (g *Generator) Apply(plan *GenerationPlan, force bool) (*ApplyResult, error) {
	result := &ApplyResult{}

	for _, entry := range plan.Entries {
		// Re-check at apply time; the plan may be stale.
		exists, err := g.fs.FileExists(entry.Path)
		if err != nil {
			return result, &WriteError{Path: entry.Path, Written: result.Written, Err: err}
		}
		if exists && !force {
			result.Conflicts = append(result.Conflicts, entry.Path)
			continue
		}

		if err := g.fs.WriteFile(entry.Path, entry.Content, 0644); err != nil {
			return result, &WriteError{Path: entry.Path, Written: result.Written, Err: err}
		}
		result.Written = append(result.Written, entry.Path)
	}

	return result, nil
}

// ListModules returns the feature names of existing modules: immediate
// subdirectories of the modules root that contain a router file, in lexical
// order.
func (g *Generator) ListModules() ([]string, error) {
	dirs, err := g.fs.ListSubdirectories(g.cfg.ModulesDir)
	if err != nil {
		return nil, err
	}

	var modules []string
	for _, dir := range dirs {
		hasRouter, err := g.fs.FileExists(path.Join(g.cfg.ModulesDir, dir, "router.go"))
		if err != nil {
			return nil, err
		}
		if hasRouter {
			modules = append(modules, dir)
		}
	}
	return modules, nil
}

// SyncManifest rewrites the module manifest from the current module list so
// the server mounts every generated router without manual registration.
// Returns the manifest path relative to the project root.
func (g *Generator) SyncManifest() (string, error) {
	modules, err := g.ListModules()
	if err != nil {
		return "", err
	}

	content, err := g.loader.RenderManifest(templates.ManifestContext{
		ModulePrefix: g.cfg.ModulePrefix,
		ModulesDir:   g.cfg.ModulesDir,
		Modules:      modules,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}

	target := path.Join(g.cfg.ModulesDir, ManifestFileName)
	if err := g.fs.WriteFile(target, content, 0644); err != nil {
		return "", err
	}
	return target, nil
}
