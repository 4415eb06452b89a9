package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetString("format") != "yaml" {
		t.Errorf("expected format default yaml, got %q", viper.GetString("format"))
	}
	if viper.GetString("delimiter") != "---" {
		t.Errorf("expected delimiter default ---, got %q", viper.GetString("delimiter"))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Point the search path at an empty temp dir to avoid loading system config
	t.Setenv("MATTER_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Format != "yaml" || cfg.Delimiter != "---" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("format: toml\ndelimiter: \"+++\"\nexcerpt_delimiter: \"<!-- more -->\"\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Format != "toml" {
		t.Errorf("format = %q, want toml", cfg.Format)
	}
	if cfg.Delimiter != "+++" {
		t.Errorf("delimiter = %q, want +++", cfg.Delimiter)
	}
	if cfg.ExcerptDelimiter != "<!-- more -->" {
		t.Errorf("excerpt_delimiter = %q, want <!-- more -->", cfg.ExcerptDelimiter)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown format",
			content: "format: xml\n",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "delimiter with newline",
			content: "delimiter: \"--\\n-\"\n",
			wantErr: ErrInvalidDelimiter,
		},
		{
			name:    "whitespace-only excerpt delimiter",
			content: "excerpt_delimiter: \"   \"\n",
			wantErr: ErrInvalidDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init()

			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigMatter(t *testing.T) {
	cfg := &Config{
		Format:           "toml",
		Delimiter:        "+++",
		ExcerptDelimiter: "<!-- more -->",
	}

	m, err := cfg.Matter()
	if err != nil {
		t.Fatalf("Matter() error: %v", err)
	}
	if m.Engine().Name() != "toml" {
		t.Errorf("engine = %q, want toml", m.Engine().Name())
	}
	if m.Delimiter != "+++" {
		t.Errorf("delimiter = %q, want +++", m.Delimiter)
	}
	if m.ExcerptDelimiter != "<!-- more -->" {
		t.Errorf("excerpt delimiter = %q, want <!-- more -->", m.ExcerptDelimiter)
	}
}

func TestConfigMatter_UnknownFormat(t *testing.T) {
	cfg := &Config{Format: "xml"}
	if _, err := cfg.Matter(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "config_a.yaml")
	if err := os.WriteFile(fileA, []byte("format: json\n"), 0600); err != nil {
		t.Fatal(err)
	}

	Init()
	if _, err := Load(fileA); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	dirB := t.TempDir()
	t.Setenv("MATTER_CONFIG_DIR", dirB)
	t.Chdir(t.TempDir())
	fileB := filepath.Join(dirB, "config.yaml")
	if err := os.WriteFile(fileB, []byte("format: toml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// Re-initializing clears the explicit file from the first Load.
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if cfg.Format != "toml" {
		t.Errorf("expected config from MATTER_CONFIG_DIR, got format %q (file %s)",
			cfg.Format, viper.ConfigFileUsed())
	}
}
