package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mimisupply/demo-auth/internal/api"
	"github.com/mimisupply/demo-auth/internal/api/metrics"
	"github.com/mimisupply/demo-auth/internal/core/ports"
	"github.com/mimisupply/demo-auth/internal/core/service"
	"github.com/mimisupply/demo-auth/internal/core/session"
	"github.com/mimisupply/demo-auth/internal/infrastructure/config"
	redisinfra "github.com/mimisupply/demo-auth/internal/infrastructure/db/redis"
	"github.com/mimisupply/demo-auth/internal/infrastructure/fixtures"
	"github.com/mimisupply/demo-auth/pkg/logger"
)

// @title MimiSupply Demo Auth API
// @version 1.0
// @description Demo-mode authentication and session service for the MimiSupply delivery platform.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the demo session token.

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it the login throttle is a no-op.
	var throttle ports.LoginThrottle = service.NopThrottle{}
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connect failed")
		}
		defer client.Close()
		throttle = redisinfra.NewLoginThrottle(client, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
		rdb = client
	}

	store := fixtures.NewStore()
	state := session.New()
	authService := service.NewAuthService(store, state, throttle, cfg.LoginDelay, log)

	// One watcher keeps the session gauge and audit log in sync with
	// every transition.
	go watchSession(ctx, state, log)

	e := api.NewRouter(api.Dependencies{
		AuthService: authService,
		Session:     state,
		Roles:       store,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		Logger:      log,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("demo auth service starting")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("demo auth service stopped")
}

func watchSession(ctx context.Context, state *session.State, log zerolog.Logger) {
	ch := state.Watch()
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-ch:
			if snap.Authenticated {
				metrics.SessionAuthenticated.Set(1)
				log.Info().Str("email", snap.User.Email).Str("role", string(snap.Role)).Msg("session established")
			} else {
				metrics.SessionAuthenticated.Set(0)
				log.Info().Msg("session cleared")
			}
		}
	}
}
