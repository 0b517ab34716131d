// Package config loads the service configuration from layered sources:
// built-in defaults, an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the service's environment variables.
const envPrefix = "SILVERSPACE_"

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port" validate:"gte=1,lte=65535"`
	Sender       string `koanf:"sender" validate:"omitempty,email"`
	SenderName   string `koanf:"sender_name"`
	Password     string `koanf:"password"`
	SupportInbox string `koanf:"support_inbox" validate:"omitempty,email"`
}

// Config is the full service configuration.
type Config struct {
	ListenAddr string `koanf:"listen_addr" validate:"required"`
	CatalogDSN string `koanf:"catalog_dsn"`
	BlobToken  string `koanf:"blob_token"`
	TopK       int    `koanf:"top_k" validate:"gte=1"`
	LogLevel   string `koanf:"log_level" validate:"oneof=trace debug info warn error"`

	TMDBAPIKey    string `koanf:"tmdb_api_key"`
	OMDBAPIKey    string `koanf:"omdb_api_key"`
	YouTubeAPIKey string `koanf:"youtube_api_key"`

	SMTP SMTPConfig `koanf:"smtp"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		ListenAddr: ":8000",
		TopK:       5,
		LogLevel:   "info",
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or
// config.yaml when path is empty and the file exists), then environment
// variables with the SILVERSPACE_ prefix. ENV > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps environment variable names to koanf paths:
// SILVERSPACE_LISTEN_ADDR -> listen_addr, SILVERSPACE_SMTP_HOST -> smtp.host.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if rest, ok := strings.CutPrefix(key, "smtp_"); ok {
		return "smtp." + rest
	}
	return key
}

// Validate checks field constraints and cross-field requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MailEnabled reports whether outbound mail is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.Sender != ""
}
