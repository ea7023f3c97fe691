package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "evcharge/backend/libs/config"
)

// Config defines pricing service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"PRICING_HTTP_PORT"`
	} `yaml:"http"`
	Services struct {
		DemandURL string `yaml:"demandUrl" env:"PRICING_DEMAND_URL"`
	} `yaml:"services"`
	HTTPClient struct {
		TimeoutSeconds int `yaml:"timeoutSeconds" env:"PRICING_HTTP_TIMEOUT"`
	} `yaml:"httpClient"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8002"
	cfg.Services.DemandURL = "http://demand-service:8001"
	cfg.HTTPClient.TimeoutSeconds = 5

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Services.DemandURL) == "" {
		return nil, errors.New("config: demand service url required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8002"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// HTTPTimeout returns the outbound client timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPClient.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.HTTPClient.TimeoutSeconds) * time.Second
}
