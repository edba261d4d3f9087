// Package configschema provides configuration loading for sango projects.
//
// Overview:
//   - Responsibility: Parse sango.yaml, fill defaults, resolve the module prefix
//   - Key Types: Config
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Loading errors carry the offending file or field
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	cfg, err := configschema.Load(".")
//	if err != nil {
//	    return err
//	}
package configschema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the project configuration file looked up at the root.
	ConfigFileName = "sango.yaml"

	// DefaultModulesDir is where generated modules live, relative to the root.
	DefaultModulesDir = "modules"

	// DefaultAPIPrefix is the route prefix generated routers mount under.
	DefaultAPIPrefix = "/v1"
)

// Config represents the sango project configuration.
// All fields are optional in sango.yaml; missing values are filled with
// defaults, and the module prefix falls back to the go.mod module path.
type Config struct {
	ProjectName  string `yaml:"project_name"`
	ModulePrefix string `yaml:"module_prefix"`
	ModulesDir   string `yaml:"modules_dir"`
	APIPrefix    string `yaml:"api_prefix"`
}

// Load reads the project configuration from rootDir. A missing sango.yaml is
// not an error; a missing module prefix (no sango.yaml entry and no go.mod)
// is, because generated imports could not resolve.
func Load(rootDir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(rootDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	if cfg.ModulesDir == "" {
		cfg.ModulesDir = DefaultModulesDir
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = DefaultAPIPrefix
	}
	if filepath.IsAbs(cfg.ModulesDir) {
		return nil, fmt.Errorf("modules_dir must be relative to the project root, got %q", cfg.ModulesDir)
	}

	if cfg.ModulePrefix == "" {
		prefix, err := modulePrefixFromGoMod(rootDir)
		if err != nil {
			return nil, fmt.Errorf("module_prefix is not set and could not be derived: %w (run from the project root or set module_prefix in %s)", err, ConfigFileName)
		}
		cfg.ModulePrefix = prefix
	}

	return cfg, nil
}

// modulePrefixFromGoMod reads the module path from the project's go.mod.
func modulePrefixFromGoMod(rootDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(rootDir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			if prefix := strings.TrimSpace(rest); prefix != "" {
				return prefix, nil
			}
		}
	}
	return "", fmt.Errorf("no module directive in go.mod")
}
