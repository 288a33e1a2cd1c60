package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaglebank/services/auth-service/internal/handler"
	authqry "github.com/eaglebank/services/auth-service/internal/query"
	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(".", "auth-service", "8081")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	logger := logging.New(cfg.Service, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// CQRS: auth is read-only; no CommandService needed
	authHandler := handler.NewAuthHandler(authqry.NewAuthQueryService())

	srv, err := server.New(ctx, cfg, logger, server.WithHealthHandler(authHandler.Health))
	if err != nil {
		logger.WithError(err).Fatal("failed to initialise server")
	}

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Fatal("auth service stopped with error")
	}
}
