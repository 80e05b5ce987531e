package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkarpenko/flightdesk/config"
	"github.com/vkarpenko/flightdesk/internal/bootstrap"
	"github.com/vkarpenko/flightdesk/internal/logging"
	"github.com/vkarpenko/flightdesk/internal/repository"
	"github.com/vkarpenko/flightdesk/internal/service/flights"
)

// @title           Flightdesk API
// @version         1.0
// @description     CRUD API for in-memory flight records.
// @BasePath        /
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightRepo := repository.NewFlightRepository()
	flightService := flights.NewFlightService(flightRepo, logger)

	if err := bootstrap.Run(ctx, cfg, logger, flightService); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
