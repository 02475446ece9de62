package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AIDelay != 3*time.Second || cfg.LockTTL != 5*time.Second {
		t.Fatalf("unexpected durations: %v %v", cfg.AIDelay, cfg.LockTTL)
	}
	if cfg.MySQLDSN != "" {
		t.Fatal("mysql should be disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AI_DELAY", "250ms")
	t.Setenv("MYSQL_DSN", "root:pw@tcp(localhost:3306)/splendor")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.RedisDB != 2 || cfg.AIDelay != 250*time.Millisecond {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.MySQLDSN == "" {
		t.Fatal("expected MYSQL_DSN")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsZeroLockTTL(t *testing.T) {
	t.Setenv("LOCK_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero lock ttl")
	}
}
