package config

import (
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/folio/internal/portfolio"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Template != "minimal" {
		t.Errorf("expected default template %q, got %q", "minimal", cfg.Template)
	}
	if cfg.Escaping != "strict" {
		t.Errorf("expected default escaping %q, got %q", "strict", cfg.Escaping)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Batch.Concurrency != 4 {
		t.Errorf("expected default batch concurrency 4, got %d", cfg.Batch.Concurrency)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Template = "developer"
	original.Profile = "me.yml"
	original.OutputDir = "public"
	original.Escaping = "legacy"
	original.Markdown = true
	original.Server.Port = 9000
	original.Server.AllowAll = true
	original.Batch.Concurrency = 2

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")

	partial := &Config{Template: "modern", Server: ServerConfig{Port: 3000}}
	if err := partial.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Template != "modern" {
		t.Errorf("template: got %q, want modern", cfg.Template)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server.port: got %d, want 3000", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_TEMPLATE", "academic")
	t.Setenv("FOLIO_OUTPUT_DIR", "dist")
	t.Setenv("FOLIO_SERVER_PORT", "4321")
	t.Setenv("FOLIO_SERVER_ALLOW_ALL", "true")
	t.Setenv("FOLIO_BATCH_CONCURRENCY", "8")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Template != "academic" {
		t.Errorf("template override failed: got %q", loaded.Template)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("output_dir override failed: got %q", loaded.OutputDir)
	}
	if loaded.Server.Port != 4321 {
		t.Errorf("server.port override failed: got %d", loaded.Server.Port)
	}
	if !loaded.Server.AllowAll {
		t.Error("server.allow_all override failed")
	}
	if loaded.Batch.Concurrency != 8 {
		t.Errorf("batch.concurrency override failed: got %d", loaded.Batch.Concurrency)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"FOLIO_TEMPLATE", "template"},
		{"FOLIO_OUTPUT_DIR", "output_dir"},
		{"FOLIO_SERVER_PORT", "server.port"},
		{"FOLIO_SERVER_ALLOW_ALL", "server.allow_all"},
		{"FOLIO_BATCH_CONCURRENCY", "batch.concurrency"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Template = "brutalist"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown template")
	}
}

func TestValidateInvalidEscaping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Escaping = "none"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown escaping mode")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateNegativeConcurrency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batch.Concurrency = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative batch.concurrency")
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Escaping = "legacy"
	cfg.Markdown = true

	opts, err := cfg.GeneratorOptions()
	if err != nil {
		t.Fatalf("GeneratorOptions failed: %v", err)
	}
	if opts.Escaping != portfolio.EscapeLegacy || !opts.Markdown {
		t.Errorf("unexpected options %+v", opts)
	}
	if !opts.GeneratedAt.IsZero() {
		t.Error("generation time should be left to the generator")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Go,Rust,C", []string{"Go", "Rust", "C"}},
		{" Go , Rust , C ", []string{"Go", "Rust", "C"}},
		{"Node.js", []string{"Node.js"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
