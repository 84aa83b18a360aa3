package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const minSecretLen = 32

type Config struct {
	Env       string // "production" or anything else
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
	CacheTTL  time.Duration

	// fixed request budgets per client per minute
	GeneralRateLimit int
	AuthRateLimit    int

	CORSOrigin    string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env when present and falls back to defaults suitable
// for local development. A production run with a missing or short
// JWT_SECRET refuses to start; elsewhere it warns and continues.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		DBSource:         getEnv("DB_SOURCE", "restaurants.db"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTTTL:           time.Duration(getEnvInt("JWT_EXPIRES_IN", 604800)) * time.Second,
		CacheTTL:         time.Duration(getEnvInt("CACHE_TTL", 30)) * time.Second,
		GeneralRateLimit: getEnvInt("RATE_LIMIT_GENERAL", 200),
		AuthRateLimit:    getEnvInt("RATE_LIMIT_AUTH", 10),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
	}

	if len(cfg.JWTSecret) < minSecretLen {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET must be set and at least %d bytes in production", minSecretLen)
		}
		slog.Warn("using insecure JWT_SECRET, set a strong one before production", "env", cfg.Env)
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "dev_fallback_key"
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
