package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/api"
	"github.com/stitts-dev/courtside-intel/internal/providers"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/config"
	"github.com/stitts-dev/courtside-intel/pkg/logger"
)

func main() {
	// Config first: it promotes .env into the environment the logger reads LOG_LEVEL from
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger()

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session storage
	var store services.SessionStore
	var sweeper services.Sweeper
	var redisClient *redis.Client
	switch cfg.SessionStore {
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		redisStore := services.NewRedisSessionStore(redisClient, cfg.SessionTTL)
		store, sweeper = redisStore, redisStore
	default:
		memoryStore := services.NewMemorySessionStore(cfg.SessionTTL)
		store, sweeper = memoryStore, memoryStore
	}
	log.WithField("store", cfg.SessionStore).Info("Session store ready")

	// Live updates
	hub := services.NewWebSocketHub(log)
	go hub.Run(ctx)

	// Matchup data
	provider := providers.NewMatchupProvider(cfg.HomeTeam, providers.NewRandomStatsGenerator(cfg.StatsSeed), cfg.MatchupLatency, log)

	// Analyst chat
	var streamer services.ChatStreamer
	if cfg.AnalystEnabled() {
		streamer = services.NewAnalystClient(services.AnalystClientConfig{
			APIKey:           cfg.AnalystAPIKey,
			BaseURL:          cfg.AnalystAPIURL,
			Model:            cfg.AnalystModel,
			Timeout:          cfg.AnalystTimeout,
			FailureThreshold: cfg.CircuitBreakerThreshold,
			Title:            "Courtside Intel",
		}, log)
	} else {
		log.Warn("ANALYST_API_KEY not set, analyst chat disabled")
	}
	analyst := services.NewAnalystService(streamer, cfg.HomeTeam, cfg.AnalystRateLimit, log)

	sessions := services.NewSessionService(store, provider, hub, log)

	// The janitor sweeps idle sessions and clears what the analyst kept for them
	janitor := services.NewSessionJanitor(sweeper, cfg.SessionSweepInterval, log).
		Prune(services.SessionAlive(store, 5*time.Second), analyst)
	if err := janitor.Start(); err != nil {
		log.Fatalf("Failed to start session janitor: %v", err)
	}

	router := api.NewRouter(cfg, log, provider, sessions, analyst, hub)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: analyst replies stream for as long as the model talks
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port": cfg.Port,
			"env":  cfg.Env,
			"team": cfg.HomeTeam,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	janitor.Stop()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}

	log.Info("Server exited")
}
