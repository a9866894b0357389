package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/quotely/quote-service/internal/config"
	myHTTP "github.com/quotely/quote-service/internal/handler/http"
	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/server"
	"github.com/quotely/quote-service/internal/service"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("quote-server")

	// a missing .env file is fine, env vars may come from the environment
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	// the sqlite backend bootstraps its own schema on connect
	if cfg.Storage.DB.Driver != "sqlite3" {
		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
