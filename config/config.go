package config

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config of the console application.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type ServiceConfig struct {
	// Instance identifier ; generated if blank
	Id string `yaml:"id"`
}

// Remote admin API endpoint
type APIConfig struct {
	// Base address, e.g.: http://localhost:5000/api
	BaseURL string `yaml:"base_url"`
	// Per-request timeout
	Timeout time.Duration `yaml:"timeout"`
}

// Persisted session record location
type SessionConfig struct {
	// File path of the serialized session blob
	File string `yaml:"file"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
	JSON    bool   `yaml:"json"`
	File    string `yaml:"file"`
	NoColor bool   `yaml:"no_color"`
}

// LoadConfig reads the YAML configuration file, if present,
// then applies environment overrides on top of built-in defaults.
//
// A missing file is not an error: defaults work out of the box.
func LoadConfig(path string) (*Config, error) {

	cfg := defaults()

	if path == "" {
		path = os.Getenv("ADMIN_CONSOLE_CONFIG")
	}
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "admin-console", "config.yml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	environment(cfg)

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.Session.File == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		cfg.Session.File = filepath.Join(dir, "admin-console", "session.json")
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

func environment(cfg *Config) {
	cfg.API.BaseURL = cmp.Or(os.Getenv("ADMIN_API_URL"), cfg.API.BaseURL)
	cfg.Session.File = cmp.Or(os.Getenv("ADMIN_SESSION_FILE"), cfg.Session.File)
	cfg.Log.Level = cmp.Or(os.Getenv("ADMIN_LOG_LEVEL"), cfg.Log.Level)
	if vs := os.Getenv("ADMIN_LOG_FILE"); vs != "" {
		cfg.Log.File = vs
	}
}
