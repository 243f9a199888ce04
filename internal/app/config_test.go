package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
	if cfg.AccessTokenTTL != time.Hour || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("durations: ttl=%s shutdown=%s", cfg.AccessTokenTTL, cfg.ShutdownTimeout)
	}
	if cfg.DefaultPageSize != 20 || cfg.MaxPageSize != 100 {
		t.Fatalf("page sizes: %d/%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	if cfg.DB.Driver != "postgres" || cfg.OTel.Enabled {
		t.Fatalf("nested defaults: driver=%q otel=%v", cfg.DB.Driver, cfg.OTel.Enabled)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SEED_CATEGORIES", "true")
	t.Setenv("DEFAULT_PAGE_SIZE", "500")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key:abc")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":9090" || cfg.DB.Driver != "sqlite" || !cfg.SeedCategories {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("ttl: %s", cfg.AccessTokenTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins: %v", cfg.AllowedOrigins)
	}
	if cfg.DefaultPageSize != 50 {
		t.Fatalf("default page size not clamped: %d", cfg.DefaultPageSize)
	}
	if cfg.OTel.Headers["x-api-key"] != "abc" {
		t.Fatalf("otel headers: %v", cfg.OTel.Headers)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadConfigRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("LOG_MODE", "production")
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected default JWT secret to be rejected")
	}
	t.Setenv("JWT_SECRET_KEY", defaultJWTSecret)
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected explicit default JWT secret to be rejected")
	}
	t.Setenv("JWT_SECRET_KEY", "a-real-secret")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWTSecretKey != "a-real-secret" {
		t.Fatalf("secret: %q", cfg.JWTSecretKey)
	}
}

func TestLoadConfigAllowsDefaultSecretInDevelopment(t *testing.T) {
	t.Setenv("LOG_MODE", "development")
	t.Setenv("JWT_SECRET_KEY", defaultJWTSecret)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWTSecretKey != defaultJWTSecret {
		t.Fatalf("secret: %q", cfg.JWTSecretKey)
	}
}
