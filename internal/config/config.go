package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseDSN      string
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	BaseURL          string
	NotFoundPath     string
	ExpiredPath      string
	PasswordAttempts int
	PasswordWindow   time.Duration
	BcryptCost       int
	AllowedOrigins   []string
	TrustProxy       bool
	AppEnv           string
}

// Load reads .env when present and falls back to defaults for unset keys.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		BaseURL:          strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		NotFoundPath:     getEnv("NOT_FOUND_PATH", "/404"),
		ExpiredPath:      getEnv("EXPIRED_PATH", "/expired"),
		PasswordAttempts: getEnvInt("PASSWORD_ATTEMPTS", 10),
		PasswordWindow:   getEnvDuration("PASSWORD_WINDOW", time.Minute),
		BcryptCost:       getEnvInt("BCRYPT_COST", 12),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TrustProxy:       getEnvBool("TRUST_PROXY", false),
		AppEnv:           getEnv("APP_ENV", "local"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN not set")
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET not set")
		}
		cfg.JWTSecret = "dev-secret"
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return fallback
}
