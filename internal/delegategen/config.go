package delegategen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTarget is returned when a config has no target of the requested name.
var ErrUnknownTarget = errors.New("unknown target")

// Kinds of generated code.
const (
	KindWrapper = "wrapper"
	KindMock    = "mock"
)

// Config lists the files generated from one module.
type Config struct {
	Targets []Target `yaml:"targets"`

	// dir is the directory of the config file; relative paths in targets
	// are resolved against it.
	dir string
}

// Target is one generated file.
type Target struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Source is the package pattern declaring Interface.
	Source    string `yaml:"source"`
	Interface string `yaml:"interface"`

	// Package is the import path of the generated file's package.
	Package string `yaml:"package"`
	Type    string `yaml:"type"`
	Output  string `yaml:"output"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig parses and validates YAML config data. Relative paths are
// resolved against the working directory.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.dir = "."
	return &cfg, nil
}

// Validate checks every target is complete and target names are unique.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New("config has no targets")
	}
	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		if t.Name == "" {
			return fmt.Errorf("target %d: missing name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("target %s: duplicate name", t.Name)
		}
		seen[t.Name] = true

		if t.Kind != KindWrapper && t.Kind != KindMock {
			return fmt.Errorf("target %s: kind must be %q or %q, got %q", t.Name, KindWrapper, KindMock, t.Kind)
		}
		required := []struct{ field, value string }{
			{"source", t.Source},
			{"interface", t.Interface},
			{"package", t.Package},
			{"type", t.Type},
			{"output", t.Output},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("target %s: missing %s", t.Name, r.field)
			}
		}
	}
	return nil
}

// Dir returns the directory relative target paths are resolved against.
func (c *Config) Dir() string {
	return c.dir
}

// Target returns the target called name.
func (c *Config) Target(name string) (Target, error) {
	for _, t := range c.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
}

// OutputPath returns where t is written.
func (c *Config) OutputPath(t Target) string {
	if filepath.IsAbs(t.Output) {
		return t.Output
	}
	return filepath.Join(c.dir, t.Output)
}
