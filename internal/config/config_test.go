package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}
	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %s, want 24h", cfg.SessionDuration)
	}
	if cfg.StatsCacheTTL != 5*time.Minute {
		t.Errorf("StatsCacheTTL = %s, want 5m", cfg.StatsCacheTTL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DASKPLUS_PORT", "9090")
	t.Setenv("DASKPLUS_ENV", "production")
	t.Setenv("DASKPLUS_SESSION_DURATION", "1h")
	t.Setenv("DASKPLUS_RATE_LIMIT_BURST", "5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("environment should be production")
	}
	if cfg.SessionDuration != time.Hour {
		t.Errorf("SessionDuration = %s, want 1h", cfg.SessionDuration)
	}
	if cfg.RateLimitBurst != 5 {
		t.Errorf("RateLimitBurst = %d, want 5", cfg.RateLimitBurst)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("DASKPLUS_SESSION_DURATION", "not-a-duration")
	t.Setenv("DASKPLUS_SEED_DEMO", "not-a-bool")

	cfg := Load()

	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %s, want default 24h", cfg.SessionDuration)
	}
	if !cfg.SeedDemoData {
		t.Error("SeedDemoData should fall back to default true")
	}
}
