package config

import "github.com/ziadkadry99/folio/internal/portfolio"

// DefaultPath is where the config is read from and saved to.
const DefaultPath = ".folio.yml"

// DefaultProfilePath is the profile file used when none is configured.
const DefaultProfilePath = "profile.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Template:   string(portfolio.DefaultTemplate),
		Profile:    DefaultProfilePath,
		OutputDir:  "site",
		Escaping:   string(portfolio.EscapeStrict),
		Markdown:   false,
		Standalone: true,
		Server: ServerConfig{
			Port: 8080,
		},
		Batch: BatchConfig{
			Concurrency: 4,
		},
	}
}
