// Package config loads cpplex's YAML run configuration: which file
// extensions to treat as preprocessor input, strict-mode defaults, and
// the token-cache connection settings. It is grounded on the teacher's
// database.GeneratorConfig / ParseGeneratorConfigString pattern —
// a decoder with KnownFields enabled over a plain struct, so a typo in
// the YAML fails loudly instead of being silently ignored.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CacheConfig selects the internal/corpus backend a batch run should
// consult before re-preprocessing a source file.
type CacheConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Config is cpplex's run configuration (spec §A "Configuration").
type Config struct {
	Extensions []string    `yaml:"extensions"`
	Strict     bool        `yaml:"strict"`
	Cache      CacheConfig `yaml:"cache"`
}

// Default returns the configuration used when no YAML file is given.
func Default() Config {
	return Config{
		Extensions: []string{".c", ".h", ".i"},
	}
}

// ParseString parses a YAML document into a Config, starting from
// Default() so an empty or partial document still yields sane
// extensions. An unknown field in the YAML is a hard error.
func ParseString(yamlString string) (Config, error) {
	cfg := Default()
	if yamlString == "" {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader([]byte(yamlString)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing cpplex config: %w", err)
	}
	return cfg, nil
}

// ParseFile reads and parses a YAML config file at path. An empty path
// returns the default configuration.
func ParseFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading cpplex config %q: %w", path, err)
	}
	return ParseString(string(buf))
}

// HandlesExtension reports whether ext (an extension with its leading
// dot, as filepath.Ext returns it) is one this configuration treats as
// preprocessor input.
func (c Config) HandlesExtension(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
