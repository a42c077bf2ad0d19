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

	"github.com/ziadkadry99/folio/internal/portfolio"
)

// EnvPrefix is the prefix of environment overrides, e.g. FOLIO_TEMPLATE.
const EnvPrefix = "FOLIO_"

// sections are the nested config keys; FOLIO_SERVER_PORT maps to server.port.
var sections = []string{"server", "batch"}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FOLIO_OUTPUT_DIR to output_dir and FOLIO_SERVER_ALLOW_ALL to
// server.allow_all.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
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
	if c.Template != "" {
		if _, ok := portfolio.ParseTemplateID(c.Template); !ok {
			return fmt.Errorf("invalid template %q: must be one of %s", c.Template, templateList())
		}
	}

	if _, err := portfolio.ParseEscapeMode(c.Escaping); err != nil {
		return err
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch.concurrency must be non-negative")
	}

	return nil
}

// GeneratorOptions returns the rendering options selected by the config.
func (c *Config) GeneratorOptions() (portfolio.Options, error) {
	mode, err := portfolio.ParseEscapeMode(c.Escaping)
	if err != nil {
		return portfolio.Options{}, err
	}
	return portfolio.Options{Escaping: mode, Markdown: c.Markdown}, nil
}

func templateList() string {
	ids := portfolio.TemplateIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
