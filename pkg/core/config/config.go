// ============================================================================
// devkit - Developer Conversion Toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the devkit CLI, loaded from TOML or
//              YAML with defaults for every missing value
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	mdwlog "github.com/msto63/devkit/foundation/core/log"
	"github.com/msto63/devkit/foundation/utils/hashx"
	"github.com/msto63/devkit/foundation/utils/loremx"
	"github.com/msto63/devkit/foundation/utils/mathx"
	"github.com/msto63/devkit/foundation/utils/timex"
	"github.com/msto63/devkit/foundation/utils/uuidx"
)

// EnvConfig names the environment variable holding a config file path
const EnvConfig = "DEVKIT_CONFIG"

// Format is a configuration file syntax
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete CLI configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Hash    HashConfig    `toml:"hash" yaml:"hash"`
	Lorem   LoremConfig   `toml:"lorem" yaml:"lorem"`
	UUID    UUIDConfig    `toml:"uuid" yaml:"uuid"`
	Base    BaseConfig    `toml:"base" yaml:"base"`

	path string
}

// GeneralConfig holds output and logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Output    string `toml:"output" yaml:"output"`
	Copy      bool   `toml:"copy" yaml:"copy"`
	Locale    string `toml:"locale" yaml:"locale"`
	Timezone  string `toml:"timezone" yaml:"timezone"`
}

// HashConfig holds hash generator defaults
type HashConfig struct {
	Algorithm string `toml:"algorithm" yaml:"algorithm"`
}

// LoremConfig holds Lorem Ipsum generator defaults
type LoremConfig struct {
	Unit  string `toml:"unit" yaml:"unit"`
	Count int    `toml:"count" yaml:"count"`
}

// UUIDConfig holds UUID generator defaults
type UUIDConfig struct {
	Count int `toml:"count" yaml:"count"`
}

// BaseConfig holds number base converter defaults
type BaseConfig struct {
	From string `toml:"from" yaml:"from"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

// DefaultPaths returns the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{
		filepath.Join(".", "configs", "devkit.toml"),
		filepath.Join(".", "devkit.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "devkit", "config.toml"))
	}
	return paths
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("Load", err, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	cfg, err := LoadFromString(string(content), DetectFormat(path))
	if err != nil {
		var e *mdwerror.Error
		if stderrors.As(err, &e) {
			e.WithDetail("path", path)
		}
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromString parses configuration content. Unknown keys are rejected.
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(content, &cfg)
		if err != nil {
			return nil, configError("LoadFromString", err, "TOML parse error")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, configError("LoadFromString", nil, "unknown config keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader([]byte(content)))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, configError("LoadFromString", err, "YAML parse error")
		}
	default:
		return nil, configError("LoadFromString", nil, "unsupported format: %s", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover loads the configuration for the CLI. An explicit path wins, then
// the DEVKIT_CONFIG environment variable, then the first existing default
// path. When none of these applies the defaults are returned.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Output == "" {
		c.General.Output = "text"
	}
	if c.General.Locale == "" {
		c.General.Locale = timex.DefaultLocale
	}
	if c.General.Timezone == "" {
		c.General.Timezone = "UTC"
	}

	// Tools
	if c.Hash.Algorithm == "" {
		c.Hash.Algorithm = hashx.SHA256.String()
	}
	if c.Lorem.Unit == "" {
		c.Lorem.Unit = loremx.Paragraphs.String()
	}
	if c.Lorem.Count == 0 {
		c.Lorem.Count = 3
	}
	if c.UUID.Count == 0 {
		c.UUID.Count = 1
	}
	if c.Base.From == "" {
		c.Base.From = mathx.Decimal.String()
	}
}

// Validate checks every value against the packages that consume it
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalidValue("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalidValue("general.log_format", c.General.LogFormat, err)
	}
	if c.General.Output != "text" && c.General.Output != "json" {
		return invalidValue("general.output", c.General.Output, nil)
	}
	if _, err := timex.LoadLocation(c.General.Timezone); err != nil {
		return invalidValue("general.timezone", c.General.Timezone, err)
	}
	if _, err := hashx.ParseAlgorithm(c.Hash.Algorithm); err != nil {
		return invalidValue("hash.algorithm", c.Hash.Algorithm, err)
	}
	unit, err := loremx.ParseUnit(c.Lorem.Unit)
	if err != nil {
		return invalidValue("lorem.unit", c.Lorem.Unit, err)
	}
	if min, max := unit.Bounds(); c.Lorem.Count < min || c.Lorem.Count > max {
		return invalidValue("lorem.count", c.Lorem.Count, nil)
	}
	if c.UUID.Count < uuidx.MinBatch || c.UUID.Count > uuidx.MaxBatch {
		return invalidValue("uuid.count", c.UUID.Count, nil)
	}
	if _, err := mathx.ParseNumberBase(c.Base.From); err != nil {
		return invalidValue("base.from", c.Base.From, err)
	}
	return nil
}

func configError(operation string, cause error, format string, args ...interface{}) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation(operation).
		Messagef(format, args...).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Build()
}

func invalidValue(key string, value interface{}, cause error) *mdwerror.Error {
	return configError("Validate", cause, "invalid value %v for %s", value, key).
		WithDetail("key", key).
		WithDetail("value", fmt.Sprint(value))
}
