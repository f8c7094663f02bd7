package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// OutputConfig controls where and how spreadsheets are written.
type OutputConfig struct {
	Dir         string  `toml:"dir" yaml:"dir" env:"BRRRR_OUTPUT_DIR"`
	ColumnWidth float64 `toml:"column_width" yaml:"column_width" env:"BRRRR_COLUMN_WIDTH"`
}

// CacheConfig selects the metrics cache. An empty RedisAddr keeps the cache
// in process.
type CacheConfig struct {
	RedisAddr  string `toml:"redis_addr" yaml:"redis_addr" env:"BRRRR_REDIS_ADDR"`
	KeyPrefix  string `toml:"key_prefix" yaml:"key_prefix" env:"BRRRR_CACHE_PREFIX"`
	TTLSeconds int    `toml:"ttl_seconds" yaml:"ttl_seconds" env:"BRRRR_CACHE_TTL_SECONDS"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" env:"BRRRR_LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"BRRRR_LOG_FORMAT"`
}

// LoadFromFiles loads configuration with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := unmarshal(path, data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

func unmarshal(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	default:
		return toml.Unmarshal(data, config)
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, outputDir string, verbose bool) {
	if outputDir != "" {
		config.Output.Dir = outputDir
	}
	if verbose {
		config.Logging.Level = "debug"
	}
}
