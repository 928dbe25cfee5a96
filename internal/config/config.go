// Package config loads the project-level settings a transpiler run is
// parameterized by: the fixpoint iteration cap, the default nullability
// assumption for un-annotated pointer types, and a declarative list of
// custom invocation transformers a project can register without a rebuild.
//
// Settings load from YAML via github.com/goccy/go-yaml, the same library
// the teacher's own go.mod already carries (as an indirect dependency of
// its cobra/gjson stack) but never exercises directly. Project and
// user-override settings are merged as JSON via github.com/tidwall/sjson,
// so a user override file only needs to name the keys it changes rather
// than restate the whole document.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/sjson"

	"github.com/objc2swift/transpiler/internal/transform"
)

// Config is the full set of project-level transpiler settings.
type Config struct {
	// AssumeNonnullByDefault mirrors NS_ASSUME_NONNULL_BEGIN/END's effect
	// when a translation unit never brackets its declarations in it: false
	// keeps every un-annotated pointer type optional, matching plain
	// Objective-C's implicit nullability.
	AssumeNonnullByDefault bool `yaml:"assumeNonnullByDefault" json:"assumeNonnullByDefault"`

	// FixpointCap overrides transform.DefaultFixpointCap when positive.
	FixpointCap int `yaml:"fixpointCap" json:"fixpointCap"`

	// Transformers lists custom invocation-transformer registrations, on
	// top of whatever built-in transformers the driver seeds the registry
	// with.
	Transformers []TransformerSpec `yaml:"transformers" json:"transformers"`
}

// Default returns the built-in settings used when no config file is given.
func Default() *Config {
	return &Config{
		AssumeNonnullByDefault: false,
		FixpointCap:            transform.DefaultFixpointCap,
	}
}

// Load parses a YAML document into a Config.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses path as a Config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data)
}

// MergeOverrideFile reads overridePath as YAML and applies each top-level
// key it sets onto c, keyed the same as the JSON tags above (so an
// override file touching only "fixpointCap" leaves everything else
// untouched). The merge goes through JSON rather than back through the
// YAML unmarshaler directly, since sjson's path-set semantics (array
// append via "-1", nested dotted paths) are what a partial override needs
// and goccy/go-yaml has no equivalent merge primitive of its own.
func (c *Config) MergeOverrideFile(overridePath string) error {
	raw, err := os.ReadFile(overridePath)
	if err != nil {
		return fmt.Errorf("config: read override %s: %w", overridePath, err)
	}
	var overrides map[string]any
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("config: parse override yaml: %w", err)
	}

	base, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal base: %w", err)
	}
	for key, value := range overrides {
		base, err = sjson.SetBytes(base, key, value)
		if err != nil {
			return fmt.Errorf("config: apply override %q: %w", key, err)
		}
	}

	merged := Default()
	if err := json.Unmarshal(base, merged); err != nil {
		return fmt.Errorf("config: unmarshal merged: %w", err)
	}
	*c = *merged
	return nil
}

// AddTransformer appends spec to c.Transformers via sjson.SetRawBytes,
// mirroring how a plugin or project hook would splice one more entry into
// an already-serialized config document rather than needing the whole
// document reparsed.
func (c *Config) AddTransformer(spec TransformerSpec) error {
	base, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal base: %w", err)
	}
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("config: marshal transformer: %w", err)
	}
	patched, err := sjson.SetRawBytes(base, "transformers.-1", specJSON)
	if err != nil {
		return fmt.Errorf("config: append transformer: %w", err)
	}
	merged := Default()
	if err := json.Unmarshal(patched, merged); err != nil {
		return fmt.Errorf("config: unmarshal merged: %w", err)
	}
	*c = *merged
	return nil
}

// BuildRegistry builds a transform.Registry from c.Transformers, in
// declaration order (spec §9's first-registered-wins tie-break).
func (c *Config) BuildRegistry() (*transform.Registry, error) {
	reg := transform.NewRegistry()
	for i, spec := range c.Transformers {
		t, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("config: transformer %d (%s): %w", i, spec.ObjcFunctionName, err)
		}
		reg.Register(t)
	}
	return reg, nil
}
