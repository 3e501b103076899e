package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Generation GenerationConfig `mapstructure:"generation"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// GenerationConfig selects and configures the plan-generation provider.
// Provider choice is configuration, not behavior: both providers sit behind
// the same generation interface.
type GenerationConfig struct {
	Provider string        `mapstructure:"provider"` // "openai" or "anthropic"
	Model    string        `mapstructure:"model"`    // empty = provider default
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: nested keys map with a replacer,
	// e.g. server.address -> SERVER_ADDRESS, generation.provider -> GENERATION_PROVIDER.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "workout_vibe")
	viper.SetDefault("generation.provider", "openai")
	viper.SetDefault("generation.timeout", "60s")

	err = viper.ReadInConfig()
	// If the config file is not found, continue on defaults and env vars.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Fall back to the provider-specific key variables when no explicit
	// generation.api_key is set.
	if config.Generation.APIKey == "" {
		switch strings.ToLower(config.Generation.Provider) {
		case "anthropic", "claude":
			config.Generation.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			config.Generation.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return config, nil
}
