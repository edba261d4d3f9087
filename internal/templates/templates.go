// Package templates provides template loading and rendering for module
// scaffolding.
//
// Overview:
//   - Responsibility: Load embedded template assets and render them for a feature
//   - Key Types: Loader, Kind (fixed file kinds), Context (substitution values)
//   - Concurrency Model: Immutable embedded assets; rendering is pure
//   - Error Semantics: Unknown kinds are contract violations, not user errors
//   - Performance Notes: Embedded file system access, no disk I/O
//
// Usage:
//
//	loader := templates.NewLoader()
//	content, err := loader.Render(templates.KindRouter, ctx)
package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*
var templateFS embed.FS

// ErrUnknownTemplateKind reports a render request for a kind outside the
// fixed set. This indicates a programming error in the caller.
var ErrUnknownTemplateKind = errors.New("unknown template kind")

// Kind identifies one of the fixed generated file kinds.
type Kind string

const (
	KindModel         Kind = "model"
	KindSchemas       Kind = "schemas"
	KindRepository    Kind = "repository"
	KindUseCase       Kind = "use_case"
	KindRouter        Kind = "router"
	KindPackageMarker Kind = "package-marker"
)

// Kinds returns the fixed file kinds in generation order.
func Kinds() []Kind {
	return []Kind{
		KindModel,
		KindSchemas,
		KindRepository,
		KindUseCase,
		KindRouter,
		KindPackageMarker,
	}
}

// kindAssets maps each kind to its embedded template asset and the file
// name it is written as inside the module directory.
var kindAssets = map[Kind]struct {
	asset    string
	fileName string
}{
	KindModel:         {asset: "templates/module/model.go.tmpl", fileName: "model.go"},
	KindSchemas:       {asset: "templates/module/schemas.go.tmpl", fileName: "schemas.go"},
	KindRepository:    {asset: "templates/module/repository.go.tmpl", fileName: "repository.go"},
	KindUseCase:       {asset: "templates/module/use_case.go.tmpl", fileName: "use_case.go"},
	KindRouter:        {asset: "templates/module/router.go.tmpl", fileName: "router.go"},
	KindPackageMarker: {asset: "templates/module/doc.go.tmpl", fileName: "doc.go"},
}

// FileName returns the target file name for a kind, e.g. "use_case.go".
func FileName(kind Kind) (string, error) {
	entry, ok := kindAssets[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplateKind, kind)
	}
	return entry.fileName, nil
}

// Context carries the substitution values for a single feature.
type Context struct {
	// Snake is the feature name as given, e.g. "order_items".
	Snake string
	// Pascal is the exported identifier form, e.g. "OrderItems".
	Pascal string
	// PluralSnake is the collection/route form, e.g. "order_items".
	PluralSnake string
	// ModulePrefix is the host project's Go module path, used so generated
	// imports resolve, e.g. "github.com/sango-kit/sango".
	ModulePrefix string
	// APIPrefix is the route prefix the generated router mounts under,
	// e.g. "/v1".
	APIPrefix string
}

// ManifestContext carries the substitution values for the module manifest.
type ManifestContext struct {
	ModulePrefix string
	ModulesDir   string
	Modules      []string
}

// Loader renders embedded module templates.
type Loader struct{}

// NewLoader creates a new template loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Render renders the template for the given kind with the feature context.
// It is a pure function of (kind, ctx).
func (l *Loader) Render(kind Kind, ctx Context) (string, error) {
	entry, ok := kindAssets[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplateKind, kind)
	}
	return l.render(entry.asset, ctx)
}

// RenderManifest renders modules/manifest.go from the current module list.
func (l *Loader) RenderManifest(ctx ManifestContext) (string, error) {
	return l.render("templates/manifest.go.tmpl", ctx)
}

// render loads an embedded asset and executes it with the given data.
func (l *Loader) render(asset string, data interface{}) (string, error) {
	content, err := templateFS.ReadFile(asset)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", asset, err)
	}

	tmpl, err := template.New(asset).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", asset, err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", asset, err)
	}

	return result.String(), nil
}
