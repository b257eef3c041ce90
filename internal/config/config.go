// Package config loads the server configuration from an optional YAML file
// with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string `yaml:"addr"`
	DatabaseDSN   string `yaml:"database_dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Addr:          ":8080",
		MigrationsDir: "./migrations",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads path when non-empty, then applies BOTKING_* env overrides.
// An empty DSN selects the in-memory repos.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("BOTKING_ADDR")); v != "" {
		c.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("BOTKING_DB_DSN")); v != "" {
		c.DatabaseDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("BOTKING_MIGRATIONS_DIR")); v != "" {
		c.MigrationsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("BOTKING_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("BOTKING_LOG_FORMAT")); v != "" {
		c.LogFormat = v
	}
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}
	if strings.TrimSpace(c.MigrationsDir) == "" {
		c.MigrationsDir = "./migrations"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}
