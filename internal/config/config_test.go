package config

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.DB.Type != "sqlite" {
		t.Errorf("expected default db type sqlite, got %s", cfg.DB.Type)
	}
	if cfg.Storage.Type != "local" {
		t.Errorf("expected default storage type local, got %s", cfg.Storage.Type)
	}
	if cfg.Auth.PlaceholderEmail != "user@example.com" || cfg.Auth.PlaceholderPassword != "password123" {
		t.Errorf("unexpected placeholder credentials %q/%q", cfg.Auth.PlaceholderEmail, cfg.Auth.PlaceholderPassword)
	}
	if cfg.Auth.ClientTimeout != 10*time.Second {
		t.Errorf("expected client timeout 10s, got %s", cfg.Auth.ClientTimeout)
	}
	if len(cfg.Dashboard.ImageRemoteHosts) != 2 || cfg.Dashboard.ImageRemoteHosts[0] != "assets.basehub.com" {
		t.Errorf("unexpected image host allowlist %v", cfg.Dashboard.ImageRemoteHosts)
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("STORAGE_S3_BUCKET", "vault")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "1m")
	t.Setenv("DASHBOARD_IMAGE_REMOTE_HOSTS", "cdn.example.com")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.Storage.Type != "s3" || cfg.Storage.S3.Bucket != "vault" {
		t.Errorf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.TTL != time.Minute {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
	if len(cfg.Dashboard.ImageRemoteHosts) != 1 || cfg.Dashboard.ImageRemoteHosts[0] != "cdn.example.com" {
		t.Errorf("unexpected image host allowlist %v", cfg.Dashboard.ImageRemoteHosts)
	}
}

func TestParseConfigDBType(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty keeps default", value: "", expected: "sqlite"},
		{name: "none disables", value: "none", expected: "none"},
		{name: "postgres", value: "postgres", expected: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_TYPE", tt.value)
			cfg, err := ParseConfig()
			if err != nil {
				t.Fatalf("unexpected error parsing config: %v", err)
			}
			if cfg.DB.Type != tt.expected {
				t.Errorf("expected db type %q, got %q", tt.expected, cfg.DB.Type)
			}
		})
	}
}

func TestParseConfigDebugLogOmitsSecrets(t *testing.T) {
	secrets := []string{"db-secret-pw", "placeholder-secret", "s3-secret-key"}
	t.Setenv("DB_PASSWORD", secrets[0])
	t.Setenv("AUTH_PLACEHOLDER_PASSWORD", secrets[1])
	t.Setenv("STORAGE_S3_SECRET_ACCESS_KEY", secrets[2])

	hook := logtest.NewGlobal()
	previous := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetLevel(previous)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	if _, err := ParseConfig(); err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}

	entries := hook.AllEntries()
	if len(entries) == 0 {
		t.Fatal("expected a debug entry for the loaded config")
	}
	for _, entry := range entries {
		text := entry.Message + fmt.Sprint(entry.Data)
		for _, secret := range secrets {
			if strings.Contains(text, secret) {
				t.Errorf("log entry leaks %q: %s", secret, text)
			}
		}
	}
}

func TestAuthAPIBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{name: "derived from port", cfg: Config{HTTPPort: "8081"}, expected: "http://127.0.0.1:8081"},
		{name: "empty port", cfg: Config{}, expected: "http://127.0.0.1:8080"},
		{name: "explicit", cfg: Config{Auth: AuthConfig{APIBaseURL: "https://vault.example.com/"}}, expected: "https://vault.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.AuthAPIBaseURL(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	if got := (Config{LogLevel: "debug"}).Level(); got != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", got)
	}
	if got := (Config{LogLevel: "nonsense"}).Level(); got != logrus.InfoLevel {
		t.Errorf("expected info fallback, got %s", got)
	}
}
