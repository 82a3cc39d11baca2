package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".schemasite.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCHEMASITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SCHEMASITE_OUTPUT_DIR -> output_dir, etc.
	if err := k.Load(env.Provider("SCHEMASITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SCHEMASITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.SchemaFile != "" && c.SQLitePath != "" {
		return fmt.Errorf("schema_file and sqlite_path are mutually exclusive")
	}
	if strings.TrimSpace(c.Charset) == "" {
		return fmt.Errorf("charset is required")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}
	return nil
}

// Capabilities resolves the per-run snapshot. Orphan and routine presence
// come from the loaded schema, everything else from the configuration.
func (c *Config) Capabilities(hasOrphans, hasRoutines bool) Capabilities {
	charset := c.Charset
	if charset == "" {
		charset = DefaultCharset
	}
	return Capabilities{
		EncodeComments:       c.EncodeComments,
		MeterEnabled:         c.Meter,
		NumRowsEnabled:       c.NumRows,
		Charset:              charset,
		LogoEnabled:          c.Logo,
		OneOfMultipleSchemas: c.OneOfMultipleSchemas,
		HasOrphans:           hasOrphans,
		HasRoutines:          hasRoutines,
	}
}
