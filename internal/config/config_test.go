package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
server:
  host: "127.0.0.1"
  port: 8000
database:
  url: "postgres://localhost:5432/newsletter?sslmode=disable"
  max_open_conns: 10
email_client:
  base_url: "https://api.postmarkapp.example"
  server_token: "file-token"
  sender_email: "news@example.com"
  timeout_seconds: 10
application:
  base_url: "https://news.example.com"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.EmailClient.ServerToken != "file-token" {
		t.Errorf("ServerToken = %q", cfg.EmailClient.ServerToken)
	}
	if cfg.EmailClient.Timeout().Seconds() != 10 {
		t.Errorf("Timeout = %v", cfg.EmailClient.Timeout())
	}
	if cfg.Application.BaseURL != "https://news.example.com" {
		t.Errorf("BaseURL = %q", cfg.Application.BaseURL)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.internal:5432/newsletter")
	t.Setenv("EMAIL_SERVER_TOKEN", "env-token")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := LoadFromEnv(writeConfig(t))
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Database.URL != "postgres://db.internal:5432/newsletter" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.EmailClient.ServerToken != "env-token" {
		t.Errorf("ServerToken = %q, want env override", cfg.EmailClient.ServerToken)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	if _, err := LoadFromEnv(writeConfig(t)); err == nil {
		t.Fatal("expected error for invalid SERVER_PORT")
	}
}

func TestServerConfig_DefaultPort(t *testing.T) {
	var c ServerConfig
	if c.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", c.Addr())
	}
}
