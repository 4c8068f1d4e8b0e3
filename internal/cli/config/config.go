// Package config loads the recordkit project configuration from
// recordkit.yml with environment-variable overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the recordkit configuration
type Config struct {
	ProjectName string       `mapstructure:"project_name"`
	Definitions []string     `mapstructure:"definitions"`
	Output      OutputConfig `mapstructure:"output"`
}

// OutputConfig represents code generation output configuration
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Package string `mapstructure:"package"`
}

// Load loads the configuration from recordkit.yml or recordkit.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("definitions", []string{"defs/**/*.yml"})
	v.SetDefault("output.dir", "gen/schemas")
	v.SetDefault("output.package", "schemas")

	// Set config name and paths
	v.SetConfigName("recordkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("RECORDKIT")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
