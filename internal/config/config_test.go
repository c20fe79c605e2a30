package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load with missing file should fall back to defaults: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Storage.DBPath != "./data/voltlink.db" {
		t.Errorf("DBPath = %q, want default", cfg.Storage.DBPath)
	}
	if cfg.AI.Model != "openai/gpt-4o-mini" {
		t.Errorf("Model = %q, want default", cfg.AI.Model)
	}
	if cfg.AI.TimeoutSecs != 60 {
		t.Errorf("TimeoutSecs = %d, want 60", cfg.AI.TimeoutSecs)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voltlink.toml")
	content := `
[server]
addr = ":9090"

[storage]
db_path = "/tmp/test.db"

[ai]
model = "custom-model"
timeout_secs = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want /tmp/test.db", cfg.Storage.DBPath)
	}
	if cfg.AI.Model != "custom-model" {
		t.Errorf("Model = %q, want custom-model", cfg.AI.Model)
	}
	// Unset file values keep their defaults.
	if cfg.AI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q, want default", cfg.AI.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voltlink.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9090\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("VOLTLINK_ADDR", ":7070")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q, env must win over file", cfg.Server.Addr)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want env value", cfg.AI.APIKey)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voltlink.toml")
	if err := os.WriteFile(path, []byte("[ai]\ntimeout_secs = -1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative timeout")
	}
}
