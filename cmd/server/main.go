// DASK+ customer portal API server
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/daskplus/portal/internal/cache"
	"github.com/daskplus/portal/internal/config"
	"github.com/daskplus/portal/internal/handlers"
	"github.com/daskplus/portal/internal/middleware"
	"github.com/daskplus/portal/internal/obs"
	"github.com/daskplus/portal/internal/services/auth"
	"github.com/daskplus/portal/internal/services/stats"
	"github.com/daskplus/portal/internal/storage"
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg)

	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.SeedDemoData {
		if err := storage.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	customerRepo := storage.NewCustomerRepository(db)
	sessionRepo := storage.NewSessionRepository(db)
	policyRepo := storage.NewPolicyRepository(db)
	paymentRepo := storage.NewPaymentRepository(db)
	claimRepo := storage.NewClaimRepository(db)

	authService := auth.NewService(cfg, customerRepo, sessionRepo)
	statsService := stats.NewService(policyRepo, claimRepo)

	var statsCache *cache.Cache
	if cfg.RedisAddr != "" {
		statsCache, err = cache.New(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to redis")
		}
		defer statsCache.Close()
		log.Info().Str("addr", cfg.RedisAddr).Msg("stats cache enabled")
	}

	metrics := obs.NewMetrics()

	h := handlers.New(
		cfg,
		log,
		authService,
		statsService,
		customerRepo,
		policyRepo,
		paymentRepo,
		claimRepo,
		statsCache,
		metrics,
	)

	authMW := middleware.NewAuth(authService)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Router(authMW),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Expired sessions are swept in the background so the sessions
	// table does not grow without bound.
	sweeper := time.NewTicker(time.Hour)
	defer sweeper.Stop()
	go func() {
		for range sweeper.C {
			if err := authService.CleanupExpiredSessions(); err != nil {
				log.Warn().Err(err).Msg("session cleanup failed")
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Environment).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown did not complete cleanly")
		}
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.Environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
