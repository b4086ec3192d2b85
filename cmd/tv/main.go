package main

import (
	"context"
	"errors"
	"fmt"

	"addonpair/internal/config"
	"addonpair/internal/fetcher"
	"addonpair/internal/logger"
	"addonpair/internal/service"
	"addonpair/internal/session"
	"addonpair/internal/store"
	"addonpair/internal/tui"
	"addonpair/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTUILogger("addonpair-tv")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to addon store")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating addon store")
	}

	repo := store.NewAddonRepository(db, log)
	manifests := fetcher.New(cfg.Fetcher, log)

	coordinator := session.NewCoordinator(cfg.Server, cfg.App.LogoPath, session.Deps{
		Repo:     repo,
		Validate: service.NewValidateService(manifests, log),
		Fetcher:  manifests,
	}, log)

	ui, err := tui.New(coordinator, repo, models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("tv run error")
	}
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
