package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Rajamurugan09/ai-course-builder/internal/auth"
	"github.com/Rajamurugan09/ai-course-builder/internal/config"
	"github.com/Rajamurugan09/ai-course-builder/internal/generate"
	"github.com/Rajamurugan09/ai-course-builder/internal/httpapi"
	"github.com/Rajamurugan09/ai-course-builder/internal/store/postgres"
	"github.com/Rajamurugan09/ai-course-builder/internal/telemetry"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DB_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	shutdownTelemetry := telemetry.Setup("courseapi")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	if err := postgres.RunMigrations(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	st := postgres.NewStore(pool)
	authService, err := auth.NewService(st, cfg.JWTSecret, cfg.JWTAlg, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	generator := generate.NewClient(generate.Config{
		URL:     cfg.GenerateURL,
		Model:   cfg.GenerateModel,
		Timeout: cfg.GenerateTimeout,
	})

	handler := httpapi.NewHandler(st, authService, generator)
	limiter := httpapi.NewRateLimiter(httpapi.RateLimitConfig{
		IPPerMinute:   cfg.RateLimitPerMinute,
		IPBurst:       cfg.RateLimitBurst,
		UserPerMinute: cfg.UserRateLimitPerMinute,
		UserBurst:     cfg.UserRateLimitBurst,
	})

	chain := httpapi.AuthMiddleware(authService, handler.Routes())
	otelHandler := otelhttp.NewHandler(httpapi.LoggingMiddleware(limiter.Middleware(chain)), "courseapi")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("courseapi listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
