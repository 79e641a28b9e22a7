package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Name: "healthtrack", Env: EnvDevelopment},
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080, MaxBodyBytes: 1 << 20},
		Database: DatabaseConfig{
			DSN:      "postgres://u:p@localhost:5432/testdb",
			MaxConns: 10,
			MinConns: 2,
		},
		Log:     LogConfig{Level: "info", Format: "json"},
		Account: AccountConfig{BcryptCost: 10},
	}
}

const validYAML = `
app:
  env: "staging"

server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  auto_migrate: true

log:
  level: "debug"
  format: "text"

account:
  bcrypt_cost: 12
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// App
	if cfg.App.Env != EnvStaging {
		t.Errorf("app.env = %q, want %q", cfg.App.Env, EnvStaging)
	}
	if cfg.App.IsProduction() {
		t.Error("staging must not be treated as production")
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("server.max_body_bytes = %d, want default 1 MiB", cfg.Server.MaxBodyBytes)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be true")
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Account
	if cfg.Account.BcryptCost != 12 {
		t.Errorf("account.bcrypt_cost = %d, want 12", cfg.Account.BcryptCost)
	}
}

func TestLoad_ExplicitPathWinsOverEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	// Unset CONFIG_PATH so the default path is tried and simply absent.
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.App.Env != EnvDevelopment {
		t.Errorf("app.env = %q, want %q (default)", cfg.App.Env, EnvDevelopment)
	}
	if cfg.Account.BcryptCost != 10 {
		t.Errorf("account.bcrypt_cost = %d, want 10 (default)", cfg.Account.BcryptCost)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should default to false")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown env", func(c *Config) { c.App.Env = "prod" }, "app.env"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
		{"empty dsn", func(c *Config) { c.Database.DSN = " " }, "dsn"},
		{"max conns", func(c *Config) { c.Database.MaxConns = 0 }, "max_conns"},
		{"min above max", func(c *Config) { c.Database.MinConns = 11 }, "min_conns"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bcrypt too low", func(c *Config) { c.Account.BcryptCost = 3 }, "account.bcrypt_cost"},
		{"bcrypt too high", func(c *Config) { c.Account.BcryptCost = 32 }, "account.bcrypt_cost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Log.Level = "loud"
	cfg.Account.BcryptCost = 99

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"log.level", "account.bcrypt_cost"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidate_BcryptBoundaries(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	for _, cost := range []int{4, 31} {
		cfg.Account.BcryptCost = cost
		if err := cfg.Validate(); err != nil {
			t.Errorf("cost %d: unexpected error: %v", cost, err)
		}
	}
}

func TestAppConfig_IsProduction(t *testing.T) {
	t.Parallel()

	if !(AppConfig{Env: EnvProduction}).IsProduction() {
		t.Error("production env should report IsProduction")
	}
	if (AppConfig{Env: EnvDevelopment}).IsProduction() {
		t.Error("development env should not report IsProduction")
	}
}
