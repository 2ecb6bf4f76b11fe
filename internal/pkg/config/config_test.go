package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func processWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	return &cfg, err
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := processWith(t, map[string]string{"JWT_SECRET": "s3cret"})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.JWTTTL != 168*time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.JWTTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.Redis.Addr)
	}
}

func TestConfig_JWTSecretRequired(t *testing.T) {
	if _, err := processWith(t, map[string]string{}); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
