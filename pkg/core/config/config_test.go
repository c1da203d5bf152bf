package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.Output != "text" {
		t.Errorf("General.Output = %v, want text", cfg.General.Output)
	}
	if cfg.General.Locale != "en-US" {
		t.Errorf("General.Locale = %v, want en-US", cfg.General.Locale)
	}
	if cfg.Hash.Algorithm != "SHA-256" {
		t.Errorf("Hash.Algorithm = %v, want SHA-256", cfg.Hash.Algorithm)
	}
	if cfg.Lorem.Unit != "paragraphs" || cfg.Lorem.Count != 3 {
		t.Errorf("Lorem = %+v, want 3 paragraphs", cfg.Lorem)
	}
	if cfg.UUID.Count != 1 {
		t.Errorf("UUID.Count = %v, want 1", cfg.UUID.Count)
	}
	if cfg.Base.From != "10" {
		t.Errorf("Base.From = %v, want 10", cfg.Base.From)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"devkit.toml", FormatTOML},
		{"devkit.yaml", FormatYAML},
		{"DEVKIT.YML", FormatYAML},
		{"devkit.conf", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "devkit.toml", `
[general]
log_level = "debug"
output = "json"
copy = true
locale = "de-DE"

[hash]
algorithm = "sha512"

[lorem]
unit = "words"
count = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.Output != "json" || !cfg.General.Copy {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Hash.Algorithm != "sha512" {
		t.Errorf("Hash.Algorithm = %v", cfg.Hash.Algorithm)
	}
	if cfg.Lorem.Unit != "words" || cfg.Lorem.Count != 50 {
		t.Errorf("Lorem = %+v", cfg.Lorem)
	}
	// untouched sections keep their defaults
	if cfg.UUID.Count != 1 || cfg.General.Timezone != "UTC" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "devkit.yaml", `
general:
  log_format: json
  timezone: UTC
uuid:
  count: 10
base:
  from: hex
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v", cfg.General.LogFormat)
	}
	if cfg.UUID.Count != 10 {
		t.Errorf("UUID.Count = %v", cfg.UUID.Count)
	}
	if cfg.Base.From != "hex" {
		t.Errorf("Base.From = %v", cfg.Base.From)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "devkit.yml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Hash.Algorithm != "SHA-256" {
		t.Errorf("defaults not applied: %+v", cfg.Hash)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.toml")},
		{"broken toml", writeFile(t, dir, "broken.toml", "[general\nlog_level = ")},
		{"unknown toml key", writeFile(t, dir, "unknown.toml", "[general]\ncolour = \"red\"\n")},
		{"unknown yaml key", writeFile(t, dir, "unknown.yaml", "general:\n  colour: red\n")},
		{"bad level", writeFile(t, dir, "level.toml", "[general]\nlog_level = \"loud\"\n")},
		{"bad output", writeFile(t, dir, "output.toml", "[general]\noutput = \"xml\"\n")},
		{"bad algorithm", writeFile(t, dir, "hash.toml", "[hash]\nalgorithm = \"crc32\"\n")},
		{"lorem count above unit bound", writeFile(t, dir, "lorem.toml", "[lorem]\nunit = \"paragraphs\"\ncount = 500\n")},
		{"uuid count", writeFile(t, dir, "uuid.toml", "[uuid]\ncount = 1000\n")},
		{"bad base", writeFile(t, dir, "base.toml", "[base]\nfrom = \"36\"\n")},
		{"bad timezone", writeFile(t, dir, "tz.toml", "[general]\ntimezone = \"Mars/Olympus\"\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
				t.Errorf("code = %v, want CONFIG_ERROR", mdwerror.GetCode(err))
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfig, "")

	t.Run("defaults when nothing is found", func(t *testing.T) {
		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "env.toml", "[uuid]\ncount = 5\n")
		t.Setenv(EnvConfig, path)

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.UUID.Count != 5 {
			t.Errorf("UUID.Count = %v, want 5", cfg.UUID.Count)
		}
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "env.toml", "[uuid]\ncount = 5\n"))
		explicit := writeFile(t, t.TempDir(), "explicit.toml", "[uuid]\ncount = 7\n")

		cfg, err := Discover(explicit)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.UUID.Count != 7 {
			t.Errorf("UUID.Count = %v, want 7", cfg.UUID.Count)
		}
	})

	t.Run("home config", func(t *testing.T) {
		dir := filepath.Join(home, ".config", "devkit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, dir, "config.toml", "[base]\nfrom = \"2\"\n")

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Base.From != "2" {
			t.Errorf("Base.From = %v, want 2", cfg.Base.From)
		}
	})
}
