// Package naming validates feature names and derives the identifier forms
// used by the module generator.
//
// Overview:
//   - Responsibility: Feature name validation and snake/Pascal/plural derivation
//   - Key Types: Name (derived forms), rule sentinel errors
//   - Concurrency Model: Pure functions, safe for concurrent use
//   - Error Semantics: Each violation maps to a dedicated sentinel error
//   - Performance Notes: O(n) single-pass validation
//
// Usage:
//
//	name, err := naming.Parse("order_items")
//	// name.Snake == "order_items", name.Pascal == "OrderItems",
//	// name.PluralSnake == "order_items"
package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Validation rule errors. Parse wraps these so callers can match the
// specific violated rule with errors.Is.
var (
	ErrEmptyName        = errors.New("feature name is empty")
	ErrLeadingDigit     = errors.New("feature name must not start with a digit")
	ErrInvalidCharacter = errors.New("feature name may only contain lowercase letters, digits, and underscores")
	ErrReservedName     = errors.New("feature name is reserved")
)

// Name holds the derived identifier forms for a validated feature name.
type Name struct {
	// Snake is the feature name as given, e.g. "order_items".
	Snake string
	// Pascal is the exported Go identifier form, e.g. "OrderItems".
	Pascal string
	// PluralSnake is the collection/route form, e.g. "order_items".
	// Derivation is naive: append "s" unless the name already ends in "s".
	PluralSnake string
}

// reservedNames are module names the generator refuses: built-in starter
// modules, layout directories, packages the generated files import
// unaliased (a module named "router" would redeclare the router package
// in the manifest's import block), and Go keywords (a package named
// "type" would not compile).
var reservedNames = map[string]struct{}{
	// starter kit built-ins and layout directories
	"core":     {},
	"modules":  {},
	"internal": {},
	"health":   {},
	"users":    {},
	"auth":     {},
	// imported unaliased by generated files and the manifest
	"router": {},
	// Go keywords
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// Validate checks a feature name against the naming rules without deriving
// anything. Returns nil for a valid name, or an error wrapping the specific
// violated rule.
func Validate(feature string) error {
	if feature == "" {
		return ErrEmptyName
	}
	if feature[0] >= '0' && feature[0] <= '9' {
		return fmt.Errorf("invalid feature name %q: %w", feature, ErrLeadingDigit)
	}
	for _, r := range feature {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_') {
			return fmt.Errorf("invalid feature name %q: %w", feature, ErrInvalidCharacter)
		}
	}
	if _, reserved := reservedNames[feature]; reserved {
		return fmt.Errorf("invalid feature name %q: %w", feature, ErrReservedName)
	}
	return nil
}

// Parse validates a feature name and returns its derived forms.
func Parse(feature string) (Name, error) {
	if err := Validate(feature); err != nil {
		return Name{}, err
	}
	return Name{
		Snake:       feature,
		Pascal:      pascalCase(feature),
		PluralSnake: pluralize(feature),
	}, nil
}

// pascalCase converts an already-validated snake_case name to PascalCase.
func pascalCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if part[0] >= 'a' && part[0] <= 'z' {
			b.WriteByte(part[0] - 'a' + 'A')
			b.WriteString(part[1:])
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// pluralize applies the naive English pluralization used for collection and
// route names: append "s" unless the name already ends in one.
func pluralize(snake string) string {
	if strings.HasSuffix(snake, "s") {
		return snake
	}
	return snake + "s"
}
