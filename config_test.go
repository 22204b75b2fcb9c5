package adminauth

import (
	"testing"
	"time"

	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/token"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Token.TTL != token.DefaultTTL {
		t.Fatalf("unexpected token ttl: %v", cfg.Token.TTL)
	}
	if cfg.Mode != ModeSession {
		t.Fatalf("expected ModeSession, got %v", cfg.Mode)
	}
	if cfg.RateLimit.Limit != ratelimit.DefaultLimit || cfg.RateLimit.Window != ratelimit.DefaultWindow {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Audit.Enabled || !cfg.Audit.DropIfFull {
		t.Fatalf("unexpected audit defaults: %+v", cfg.Audit)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative ttl", func(c *Config) { c.Token.TTL = -time.Second }},
		{"negative limit", func(c *Config) { c.RateLimit.Limit = -1 }},
		{"negative window", func(c *Config) { c.RateLimit.Window = -time.Minute }},
		{"negative audit buffer", func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = -1 }},
		{"unknown mode", func(c *Config) { c.Mode = ValidationMode(42) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation failure")
			}
		})
	}
}

func TestValidationModeString(t *testing.T) {
	if ModeSession.String() != "session" || ModeJWTOnly.String() != "jwt-only" {
		t.Fatal("unexpected mode names")
	}
}
