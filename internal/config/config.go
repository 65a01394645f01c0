// Package config loads service settings from an optional YAML file and the
// environment. Environment variables override the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"poiroute/internal/planner"
)

type Config struct {
	Port        string         `yaml:"port"`
	DatabaseURL string         `yaml:"database_url"`
	Migrate     bool           `yaml:"migrate"`
	RedisURL    string         `yaml:"redis_url"`
	RateRPS     float64        `yaml:"rate_rps"`
	RateBurst   int            `yaml:"rate_burst"`
	LogLevel    string         `yaml:"log_level"`
	PlanTimeout time.Duration  `yaml:"plan_timeout"`
	Planner     planner.Config `yaml:"planner"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        "8080",
		Migrate:     true,
		RateRPS:     0, // unlimited
		RateBurst:   20,
		LogLevel:    "info",
		PlanTimeout: 2 * time.Second,
		Planner: planner.Config{
			MaxAttempts:  planner.DefaultMaxAttempts,
			ShortTourLen: planner.DefaultShortTourLen,
			TwoOptPasses: 50,
		},
	}
}

// Load reads CONFIG_FILE when set, then applies environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DB_MIGRATE"); v != "" {
		cfg.Migrate = v != "false"
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RATE_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("RATE_RPS must be a non-negative number: %q", v)
		}
		cfg.RateRPS = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("RATE_BURST must be a positive integer: %q", v)
		}
		cfg.RateBurst = n
	}
	if v := os.Getenv("PLAN_TIMEOUT_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("PLAN_TIMEOUT_MS must be a positive integer: %q", v)
		}
		cfg.PlanTimeout = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("PLANNER_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("PLANNER_MAX_ATTEMPTS must be a positive integer: %q", v)
		}
		cfg.Planner.MaxAttempts = n
	}
	if v := os.Getenv("PLANNER_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PLANNER_SEED must be an integer: %q", v)
		}
		cfg.Planner.Seed = n
	}
	return nil
}
