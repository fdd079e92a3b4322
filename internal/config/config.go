package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// devSecret is the fallback signing key for local development only.
const devSecret = "dev-secret-change-me"

type Config struct {
	Env      string
	Port     int
	DataFile string
	// When set, the snapshot lives in postgres instead of the data file.
	DBURL          string
	JWTSecret      string
	TokenTTLDays   int
	AllowedOrigins []string
	// Optional redis for the auth rate limiter.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	OTLPEndpoint  string
}

func Load() (Config, error) {
	cfg := Config{
		Env:            getEnv("APP_ENV", "dev"),
		Port:           getEnvInt("PORT", 8080),
		DataFile:       getEnv("DATA_FILE", "data.json"),
		DBURL:          getEnv("DB_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", devSecret),
		TokenTTLDays:   getEnvInt("TOKEN_TTL_DAYS", 7),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	// The fallback secret is a documented risk in dev; never in prod.
	if cfg.Env == "prod" && cfg.JWTSecret == devSecret {
		return Config{}, errors.New("JWT_SECRET must be set when APP_ENV=prod")
	}

	return cfg, nil
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLDays) * 24 * time.Hour
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
