package main

import (
	"context" // context package is needed for Redis operations
	"time"

	"alumni_portal/internal/api"     // Custom package for API handlers
	"alumni_portal/internal/config"  // Custom package for configuration
	"alumni_portal/internal/db"      // Database connection and migration
	"alumni_portal/internal/oauth"   // Identity provider
	"alumni_portal/internal/session" // Redis-backed sessions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	if cfg.SecretKey == config.DefaultSecretKey {
		logrus.Warn("SECRET_KEY not set, using the built-in default")
	}

	gdb, err := db.Open(cfg.DatabaseDSN, !cfg.IsProd)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Test Redis connection
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	provider, err := oauth.NewOIDCProvider(ctx, oauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		DiscoveryURL: cfg.GoogleDiscoveryURL,
		RedirectURL:  cfg.OAuthRedirectURL,
	})
	if err != nil {
		logrus.Fatalf("failed to load OAuth discovery document: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Config:   cfg,
		DB:       gdb,
		Redis:    redisClient,
		Sessions: session.NewStore(redisClient, cfg.SecretKey, time.Duration(cfg.SessionTTLHours)*time.Hour),
		Provider: provider,
	}, gin.Logger())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort)  // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
