package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {
	Port                  int           `env:"PORT,default=8080"`
	DBPath                string        `env:"DB_PATH,default=./bloglist.db"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	OTLPEndpoint          string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT,default=otel-collector:4317"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=5s"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}
	return nil
}
