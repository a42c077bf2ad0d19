package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Template   string       `yaml:"template" koanf:"template"`
	Profile    string       `yaml:"profile" koanf:"profile"`
	OutputDir  string       `yaml:"output_dir" koanf:"output_dir"`
	Escaping   string       `yaml:"escaping" koanf:"escaping"`
	Markdown   bool         `yaml:"markdown" koanf:"markdown"`
	Standalone bool         `yaml:"standalone" koanf:"standalone"`
	Server     ServerConfig `yaml:"server" koanf:"server"`
	Batch      BatchConfig  `yaml:"batch" koanf:"batch"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // CORS for any origin
	Open     bool `yaml:"open" koanf:"open"`
}

// BatchConfig holds settings for multi-profile generation.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" koanf:"concurrency"`
}
