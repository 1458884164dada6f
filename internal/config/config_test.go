package config

import (
	"reflect"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "print")
	t.Setenv("DB_NAME", "print")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Cache.RebuildTimeout != 30*time.Second || cfg.Cache.SyncInterval != 30*time.Second {
		t.Fatalf("unexpected cache durations: %+v", cfg.Cache)
	}
	if cfg.Cache.LockTTL != time.Minute {
		t.Fatalf("lock ttl = %v", cfg.Cache.LockTTL)
	}
	if cfg.Order.PersistAttempts != 3 {
		t.Fatalf("persist attempts = %d", cfg.Order.PersistAttempts)
	}
	if cfg.PricingPolicyPath != "configs/pricing.yaml" {
		t.Fatalf("policy path = %q", cfg.PricingPolicyPath)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("cors origins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://shop.example.com, ,https://admin.example.com ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"https://shop.example.com", "https://admin.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Fatalf("cors origins = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "CACHE_SYNC_INTERVAL", "soon"},
		{"negative duration", "CACHE_LOCK_TTL", "-5s"},
		{"no attempts", "ORDER_PERSIST_ATTEMPTS", "0"},
		{"missing secret", "JWT_SECRET", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
