package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoad_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_AUTH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.App.HTTPPort)
	}
	if cfg.Database.SQLitePath != "portfolio.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.Database.SQLitePath)
	}
	if cfg.Redis.CacheEnabled() {
		t.Fatalf("expected cache disabled without REDIS_HOST")
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("unexpected redis ttl %s", cfg.Redis.TTL)
	}
}

func TestLoad_MissingPostgresSettings(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("ADMIN_AUTH_ENABLED", "false")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	for _, key := range []string{"DB_HOST", "DB_NAME", "DB_USER"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in %q", key, err.Error())
		}
	}
}

func TestLoad_PostgresURLIsEnough(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost:5432/portfolio")
	t.Setenv("ADMIN_AUTH_ENABLED", "false")

	if _, err := Load(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoad_AuthRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_AUTH_ENABLED", "true")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") || !strings.Contains(err.Error(), "JWT_REFRESH_SECRET") {
		t.Fatalf("expected both secrets reported, got %q", err.Error())
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("ADMIN_AUTH_ENABLED", "false")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_AUTH_ENABLED", "not-a-bool")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadForSeed_IgnoresAuthSecrets(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_AUTH_ENABLED", "true")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := Load(); !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected server config to require JWT secrets, got %v", err)
	}
	if _, err := LoadForSeed(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
