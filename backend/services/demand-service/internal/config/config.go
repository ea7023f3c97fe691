package config

import (
	"fmt"
	"strings"

	libconfig "evcharge/backend/libs/config"
)

// Config defines demand service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"DEMAND_HTTP_PORT"`
	} `yaml:"http"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8001"

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8001"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
