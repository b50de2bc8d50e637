package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_TOKEN_TTL", "")
	t.Setenv("GENERATE_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_PER_MIN", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 300*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/courses")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("AUTH_JWT_ALG", "HS512")
	t.Setenv("AUTH_TOKEN_TTL", "15m")
	t.Setenv("GENERATE_MODEL", "mistral")
	t.Setenv("USER_RATE_LIMIT_PER_MIN", "5")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://localhost/courses", cfg.DatabaseURL)
	require.Equal(t, "secret", cfg.JWTSecret)
	require.Equal(t, "HS512", cfg.JWTAlg)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.Equal(t, "mistral", cfg.GenerateModel)
	require.Equal(t, 5, cfg.UserRateLimitPerMinute)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL", "soon")
	t.Setenv("RATE_LIMIT_PER_MIN", "lots")

	cfg := Load()
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 120, cfg.RateLimitPerMinute)
}
