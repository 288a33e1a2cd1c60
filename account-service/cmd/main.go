package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	accountcmd "github.com/eaglebank/services/account-service/internal/command"
	"github.com/eaglebank/services/account-service/internal/handler"
	accountqry "github.com/eaglebank/services/account-service/internal/query"
	"github.com/eaglebank/services/account-service/internal/repository"
	"github.com/eaglebank/services/shared/config"
	"github.com/eaglebank/services/shared/logging"
	"github.com/eaglebank/services/shared/metrics"
	"github.com/eaglebank/services/shared/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(".", "account-service", "8083")
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

	// --- CQRS wiring ---
	// Records live in process memory only and are lost on restart.
	store := repository.NewMemoryAccountStore()
	metrics.RegisterGauge("accounts_stored", "Account records held in memory.", func() float64 {
		return float64(store.Len())
	})

	commandSvc := accountcmd.NewAccountCommandService(store, srv.Publisher, logger)
	querySvc := accountqry.NewAccountQueryService(store)

	handler.NewAccountHandler(commandSvc, querySvc).RegisterRoutes(srv.Engine)

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Fatal("account service stopped with error")
	}
}
