package config

import (
	"fmt"
	"net/url"
	"strings"

	libconfig "evcharge/backend/libs/config"
)

// Config defines station service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"STATION_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		Host     string `yaml:"host" env:"STATION_DB_HOST"`
		Port     string `yaml:"port" env:"STATION_DB_PORT"`
		Name     string `yaml:"name" env:"STATION_DB_NAME"`
		User     string `yaml:"user" env:"STATION_DB_USER"`
		Password string `yaml:"password" env:"STATION_DB_PASSWORD"`
		SSLMode  string `yaml:"sslMode" env:"STATION_DB_SSLMODE"`
	} `yaml:"database"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8000"
	cfg.Database.Host = "postgres"
	cfg.Database.Port = "5432"
	cfg.Database.Name = "evcharging"
	cfg.Database.User = "admin"
	cfg.Database.Password = "password123"
	cfg.Database.SSLMode = "disable"

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN assembles a postgres connection string from the database options.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8000"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
