package config

// Config represents the complete configuration structure
type Config struct {
	Pexels  PexelsConfig  `mapstructure:"pexels"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PexelsConfig holds Pexels API connection details
type PexelsConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	Timeout      int    `mapstructure:"timeout"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
