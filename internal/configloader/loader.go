// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, pyproject.toml
// support, hierarchical merging, environment variables and validation.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gopyright/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is applied on top of user and project config.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIOverrides contains configuration from CLI flags.
	// These take highest precedence.
	CLIOverrides *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIOverrides)
//  2. Environment variables (GOPYRIGHT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gopyright.yml or pyproject.toml upward search)
//  5. User config ($XDG_CONFIG_HOME/gopyright/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{name: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, ignore: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}

		overrides, warnings, err := LoadFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		cfg = merge(cfg, overrides)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		result.Warnings = append(result.Warnings, warnings...)
	}

	if !opts.IgnoreEnv {
		envOverrides, err := OverridesFromEnv()
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		cfg = merge(cfg, envOverrides)
	}

	if opts.CLIOverrides != nil {
		cfg = merge(cfg, opts.CLIOverrides)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads overrides from a YAML config file or from the
// [tool.gopyright] table of a TOML file. Unknown keys are reported as
// warnings.
func LoadFile(path string) (*Overrides, []string, error) {
	if IsTOMLConfig(path) {
		return loadPyproject(path)
	}
	return loadYAML(path)
}

// loadYAML loads overrides from a YAML file.
func loadYAML(path string) (*Overrides, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	overrides := &Overrides{}
	if err := decodeYAML(content, overrides); err != nil {
		return nil, nil, fmt.Errorf("parse YAML: %w", err)
	}

	var raw map[string]any
	if err := decodeYAML(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse YAML: %w", err)
	}

	unknown := make([]string, 0)
	for key := range raw {
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	warnings := make([]string, 0, len(unknown))
	for _, key := range unknown {
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q; it will be ignored", path, key))
	}

	return overrides, warnings, nil
}

// decodeYAML decodes the first document of content. An empty document
// leaves out untouched.
func decodeYAML(content []byte, out any) error {
	err := yaml.NewDecoder(bytes.NewReader(content)).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
