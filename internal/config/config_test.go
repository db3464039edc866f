package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "test-secret"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.CORS.AllowedOrigin != "http://localhost:8080" {
		t.Errorf("unexpected default CORS origin %q", cfg.CORS.AllowedOrigin)
	}
	if cfg.Frontend.URL != "http://localhost:8080" {
		t.Errorf("unexpected default frontend URL %q", cfg.Frontend.URL)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.SMTP.Port)
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9100"
jwt:
  secret: "test-secret"
frontend:
  url: "https://learn.example.com"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("expected port 9100, got %q", cfg.Server.Port)
	}
	if cfg.Frontend.URL != "https://learn.example.com" {
		t.Errorf("unexpected frontend URL %q", cfg.Frontend.URL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9100"
jwt:
  secret: "file-secret"
`)

	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("REGISTRATION_CHECK_MX_RECORD", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9200" {
		t.Errorf("environment must win over file, got port %q", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("environment must win over file, got secret %q", cfg.JWT.Secret)
	}
	if !cfg.Registration.CheckMXRecord {
		t.Error("expected CheckMXRecord true from environment")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9100"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error when the JWT secret is missing")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "coursehub"

	want := "postgres://app:pw@db.internal:5433/coursehub?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
