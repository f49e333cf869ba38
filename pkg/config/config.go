// pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string

	// Token signing (process-wide secret, loaded once at startup)
	JWTSecret       string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Auth cookies
	CookieDomain string
	CookieSecure bool

	// Shopify Admin API
	ShopifyAPIVersion string

	// CORS allowlist for the dashboard frontend
	CORSOrigins []string

	// Postgres & Redis
	DatabaseURL string
	RedisURL    string

	// Optional YAML seed file with dev tenants
	TenantSeedFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:               env("SHOPLENS_ENV", "dev"),
		HTTPAddr:          env("SHOPLENS_HTTP_ADDR", ":8080"),
		JWTSecret:         env("JWT_SECRET", ""),
		JWTIssuer:         env("JWT_ISSUER", "shoplens"),
		AccessTokenTTL:    envDur("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:   envDur("REFRESH_TOKEN_TTL", 720*time.Hour),
		CookieDomain:      env("COOKIE_DOMAIN", ""),
		CookieSecure:      envBool("COOKIE_SECURE", true),
		ShopifyAPIVersion: env("SHOPIFY_API_VERSION", "2024-01"),
		CORSOrigins:       envList("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL:       env("DATABASE_URL", ""),
		RedisURL:          env("REDIS_URL", ""),
		TenantSeedFile:    env("TENANT_SEED_FILE", ""),
	}
	if cfg.JWTSecret == "" {
		if cfg.Env != "dev" {
			log.Fatal("JWT_SECRET must be set outside dev")
		}
		log.Println("[WARN] JWT_SECRET not set — using insecure dev default")
		cfg.JWTSecret = "shoplens-dev-secret-do-not-use-in-prod"
	}
	if cfg.DatabaseURL == "" {
		log.Println("[WARN] DATABASE_URL not set — using in-memory tenant store for dev")
	}
	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		b, _ := strconv.ParseBool(v)
		return b
	}
	return def
}

func envDur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[WARN] %s: cannot parse %q as duration, using %s", k, v, def)
	}
	return def
}

func envList(k, def string) []string {
	raw := env(k, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
