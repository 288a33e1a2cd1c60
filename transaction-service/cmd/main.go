package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/server"
	txcmd "github.com/eaglebank/services/transaction-service/internal/command"
	"github.com/eaglebank/services/transaction-service/internal/handler"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(".", "transaction-service", "8084")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	logger := logging.New(cfg.Service, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialise server")
	}

	// Intake only: no repository, no link to the account service.
	commandSvc := txcmd.NewTransactionCommandService(srv.Publisher, logger)
	handler.NewTransactionHandler(commandSvc).RegisterRoutes(srv.Engine)

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Fatal("transaction service stopped with error")
	}
}
