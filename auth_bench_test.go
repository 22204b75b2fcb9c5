package adminauth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/maxwellflitton/adminauth/roles"
	"github.com/maxwellflitton/adminauth/secrets"
	"github.com/redis/go-redis/v9"
)

func BenchmarkValidateSessionMode(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, ModeSession)
	defer cleanup()

	result, err := engine.Login(context.Background(), "a@b.com", "pw", roles.Admin, testAgent)
	if err != nil {
		b.Fatalf("login failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Validate(context.Background(), result.Token, testAgent, roles.Minimum(roles.Admin)); err != nil {
			b.Fatalf("validate failed: %v", err)
		}
	}
}

func BenchmarkValidateJWTOnly(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, ModeJWTOnly)
	defer cleanup()

	result, err := engine.Login(context.Background(), "a@b.com", "pw", roles.Admin, testAgent)
	if err != nil {
		b.Fatalf("login failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Validate(context.Background(), result.Token, testAgent, roles.Minimum(roles.Admin)); err != nil {
			b.Fatalf("validate failed: %v", err)
		}
	}
}

func BenchmarkRefresh(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, ModeSession)
	defer cleanup()

	result, err := engine.Login(context.Background(), "a@b.com", "pw", roles.Admin, testAgent)
	if err != nil {
		b.Fatalf("login failed: %v", err)
	}
	token := result.Token

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := engine.Refresh(context.Background(), token, testAgent)
		if err != nil {
			b.Fatalf("refresh failed: %v", err)
		}
		token = next.Token
	}
}

func BenchmarkLogin(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, ModeSession)
	defer cleanup()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := engine.Login(context.Background(), "a@b.com", "pw", roles.Admin, testAgent)
		if err != nil {
			b.Fatalf("login failed: %v", err)
		}
		_ = engine.Logout(context.Background(), result.Token, testAgent)
	}
}

func newBenchmarkEngine(tb testing.TB, mode ValidationMode) (*Engine, func()) {
	tb.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		tb.Fatalf("miniredis.Run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.MetricsEnabled = false
	cfg.Audit.Enabled = false

	engine, err := New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithUserDirectory(newMockDirectory()).
		WithPasswordVerifier(plainVerifier{}).
		WithSecrets(secrets.Static{"SECRET_KEY": "bench-secret"}).
		Build()
	if err != nil {
		tb.Fatalf("Build failed: %v", err)
	}

	return engine, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}
