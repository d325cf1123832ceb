package main

import (
	"context"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/handler"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/server"
	"github.com/Tristano1/friend-library-system/internal/service"
	"github.com/Tristano1/friend-library-system/internal/store"
	"github.com/Tristano1/friend-library-system/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("library-server")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting friend-library server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if cfg.App.GeneratedSessionSignKey {
		log.Warn().Msg("no session sign key configured: using a random key, sessions will not survive a restart")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	handlers.HTTP.SetBuildInfo(buildInfo)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
