package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables use the PRACTICELOG_ prefix with
// underscores for nesting (e.g. PRACTICELOG_SERVER_PORT) and take
// precedence over file values. Returns a populated Config or an error
// if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the server runnable with zero configuration.
	v.SetDefault("server.port", 8731)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("storage.path", "data/practicelog.db")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PRACTICELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
