package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         ".",
			ColumnWidth: 20,
		},
		Cache: CacheConfig{
			KeyPrefix: "brrrr:",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
