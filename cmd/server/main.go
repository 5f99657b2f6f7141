package main

import (
	"context"
	"fmt"
	"time"

	"github.com/veridict/veridict/internal/classifier"
	"github.com/veridict/veridict/internal/config"
	"github.com/veridict/veridict/internal/handler"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/server"
	"github.com/veridict/veridict/internal/service"
	"github.com/veridict/veridict/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupPingTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("veridict-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database handle")
	}

	// the server stays up without a database: verification still works,
	// persistence and auth degrade until the database comes back
	pingCtx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	if pingErr := db.PingContext(pingCtx); pingErr != nil {
		log.Warn().Err(pingErr).Msg("database unreachable at startup, continuing without it")
	} else if migrateErr := db.Migrate(); migrateErr != nil {
		log.Fatal().Err(migrateErr).Msg("error applying migrations")
	}
	cancel()

	storages := store.NewStorages(db, log)

	clf, err := classifier.NewHTTPClassifier(cfg.Classifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating classifier")
	}

	services := service.NewServices(storages, clf, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
