package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	notifycmd "github.com/eaglebank/services/notification-service/internal/command"
	"github.com/eaglebank/services/notification-service/internal/handler"
	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(".", "notification-service", "8085")
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

	commandSvc := notifycmd.NewNotificationCommandService(srv.Publisher, logger)
	handler.NewNotificationHandler(commandSvc).RegisterRoutes(srv.Engine)

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Fatal("notification service stopped with error")
	}
}
