// Package config provides configuration loading for the dashboard server.
//
// Settings come from a TOML file with sensible defaults and environment
// variable overrides, in order of precedence:
//   - environment variables
//   - config file (path given with -config, default ./voltlink.toml)
//   - built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the complete dashboard server configuration.
type Config struct {
	// Server settings
	Server ServerConfig `toml:"server"`

	// Storage settings
	Storage StorageConfig `toml:"storage"`

	// AI is the text-generation service configuration
	AI AIConfig `toml:"ai"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `toml:"addr"`
	// StaticDir is the directory holding the built frontend assets.
	StaticDir string `toml:"static_dir"`
}

// StorageConfig contains the record store settings.
type StorageConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `toml:"db_path"`
}

// AIConfig contains the text-generation service settings.
type AIConfig struct {
	// BaseURL is the OpenAI-compatible API root.
	BaseURL string `toml:"base_url"`
	// APIKey authenticates against the API. Usually supplied via the
	// OPENAI_API_KEY environment variable rather than the file. When
	// empty, every insight request serves its fallback.
	APIKey string `toml:"api_key"`
	// Model is the model identifier sent with every prompt.
	Model string `toml:"model"`
	// TimeoutSecs bounds a single completion request.
	TimeoutSecs int `toml:"timeout_secs"`
}

// Timeout returns the completion timeout as a duration.
func (c AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Default returns the built-in default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "./static",
		},
		Storage: StorageConfig{
			DBPath: "./data/voltlink.db",
		},
		AI: AIConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "openai/gpt-4o-mini",
			TimeoutSecs: 60,
		},
	}
}

// Load reads the configuration from path, layering file values over the
// defaults and environment overrides over both. A missing file is not an
// error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("VOLTLINK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("STATIC_PATH"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Storage.DBPath == "" {
		return errors.New("storage.db_path must not be empty")
	}
	if c.AI.TimeoutSecs <= 0 {
		return fmt.Errorf("ai.timeout_secs must be positive, got %d", c.AI.TimeoutSecs)
	}
	return nil
}
