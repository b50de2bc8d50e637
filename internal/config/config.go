package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTAlg    string
	TokenTTL  time.Duration

	GenerateURL     string
	GenerateModel   string
	GenerateTimeout time.Duration

	RateLimitPerMinute     int
	RateLimitBurst         int
	UserRateLimitPerMinute int
	UserRateLimitBurst     int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:        port,
		DatabaseURL: os.Getenv("DB_DSN"),

		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		JWTAlg:    os.Getenv("AUTH_JWT_ALG"),
		TokenTTL:  readDuration("AUTH_TOKEN_TTL", 30*time.Minute),

		GenerateURL:     os.Getenv("GENERATE_URL"),
		GenerateModel:   os.Getenv("GENERATE_MODEL"),
		GenerateTimeout: readDuration("GENERATE_TIMEOUT", 300*time.Second),

		RateLimitPerMinute:     readInt("RATE_LIMIT_PER_MIN", 120),
		RateLimitBurst:         readInt("RATE_LIMIT_BURST", 30),
		UserRateLimitPerMinute: readInt("USER_RATE_LIMIT_PER_MIN", 30),
		UserRateLimitBurst:     readInt("USER_RATE_LIMIT_BURST", 10),
	}
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
