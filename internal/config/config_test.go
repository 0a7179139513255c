package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("FOREX_PAIRS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.Timezone != time.UTC {
		t.Errorf("expected UTC, got %s", cfg.Timezone)
	}
	if len(cfg.ForexPairs) != 4 {
		t.Errorf("expected 4 default pairs, got %v", cfg.ForexPairs)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "nope")
	t.Setenv("FOREX_PAIRS", " usdrub , ,eurusd")
	t.Setenv("TIMEZONE", "Europe/Moscow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected 5m, got %s", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("expected 2.5 rps, got %g", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 30 {
		t.Errorf("expected fallback burst 30, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.ForexPairs) != 2 || cfg.ForexPairs[0] != "USDRUB" || cfg.ForexPairs[1] != "EURUSD" {
		t.Errorf("unexpected pairs %v", cfg.ForexPairs)
	}
	if cfg.Timezone.String() != "Europe/Moscow" {
		t.Errorf("expected Europe/Moscow, got %s", cfg.Timezone)
	}
}
