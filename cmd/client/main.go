package main

import (
	"fmt"
	"os"

	"github.com/Tristano1/friend-library-system/internal/adapter"
	"github.com/Tristano1/friend-library-system/internal/client"
	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("library-client", os.Stderr).WithLevel(cfg.LogLevel)

	libraryAdapter, err := adapter.NewHTTPLibraryAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	app := client.NewApp(libraryAdapter, client.NewTokenStore(cfg.TokenFile), log).
		WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	return app.Run()
}
