package main

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/config"
	"github.com/statsync/statsync/internal/repository"
	"github.com/statsync/statsync/internal/server"
	"github.com/statsync/statsync/internal/token"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Token issuer: the signing secret, algorithm and TTL are fixed for
	// the process lifetime.
	issuer, err := token.NewIssuer(token.Config{
		Secret:    []byte(cfg.Auth.Secret),
		Algorithm: cfg.Auth.Algorithm,
		TTL:       cfg.TokenTTL(),
	})
	if err != nil {
		logger.Fatal("Failed to initialize token issuer", zap.Error(err))
	}

	// Initialize and run the server
	srv := server.NewServer(db, issuer, logger, log)
	srv.Run(cfg.Server.Port)
}
