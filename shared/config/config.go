// Package config loads service settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores the settings shared by every service.
type Config struct {
	Service         string        `mapstructure:"-"`
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// EventsEnabled reports whether activity events should go to Redis.
func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads configuration for the named service. path is searched for a
// .env file; a missing file is not an error. defaultPort is used when neither
// SERVER_PORT nor PORT is set.
func Load(path, service, defaultPort string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	// Unmarshal only sees keys viper knows about.
	for _, key := range []string{"SERVER_PORT", "PORT", "REDIS_ADDR", "REDIS_PASSWORD"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Service = service

	if cfg.ServerPort == "" {
		cfg.ServerPort = v.GetString("PORT")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultPort
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
		cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	default:
		return nil, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}

	return &cfg, nil
}
