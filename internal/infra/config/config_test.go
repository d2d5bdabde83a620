package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("MONGO_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.DatabaseName != "rental" {
		t.Errorf("DatabaseName = %q, want rental", cfg.DatabaseName)
	}
	if cfg.StoreTimeout != 10*time.Second {
		t.Errorf("StoreTimeout = %v, want 10s", cfg.StoreTimeout)
	}
}

// A missing DATABASE_URL is a running-but-unavailable configuration,
// not a startup failure.
func TestLoadWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
}

func TestLoadPortAndOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9100")
	t.Setenv("MONGO_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9100" {
		t.Errorf("HTTPAddr = %q, want :9100", cfg.HTTPAddr)
	}
	if cfg.StoreTimeout != 2*time.Second {
		t.Errorf("StoreTimeout = %v, want 2s", cfg.StoreTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("bad MONGO_TIMEOUT accepted")
	}
}
