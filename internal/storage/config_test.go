package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadServerConfig(t *testing.T) {
	t.Run("creates defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadServerConfig(dir)
		if err != nil {
			t.Fatalf("LoadServerConfig failed: %v", err)
		}
		if len(cfg.JWTSecret) != 32 {
			t.Errorf("JWTSecret len = %d, want 32", len(cfg.JWTSecret))
		}
		if cfg.VAPID.PublicKey == "" || cfg.VAPID.PrivateKey == "" {
			t.Error("VAPID keys not generated")
		}
		if cfg.RateLimits != DefaultRateLimits() {
			t.Errorf("RateLimits = %+v, want defaults", cfg.RateLimits)
		}
		if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
			t.Errorf("config.yaml not written: %v", err)
		}
	})

	t.Run("stable across reloads", func(t *testing.T) {
		dir := t.TempDir()
		first, err := LoadServerConfig(dir)
		if err != nil {
			t.Fatalf("LoadServerConfig failed: %v", err)
		}
		second, err := LoadServerConfig(dir)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if !bytes.Equal(first.JWTSecret, second.JWTSecret) {
			t.Error("JWT secret regenerated on reload")
		}
		if first.VAPID != second.VAPID {
			t.Error("VAPID keys regenerated on reload")
		}
	})

	t.Run("rejects invalid file", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\tnot yaml"), 0o600)
		if _, err := LoadServerConfig(dir); err == nil {
			t.Error("LoadServerConfig() expected error for invalid yaml, got nil")
		}
	})
}

func TestRateLimitsValidate(t *testing.T) {
	bad := RateLimits{AuthRatePerMin: -1}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() expected error for negative rate, got nil")
	}
	good := DefaultRateLimits()
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
