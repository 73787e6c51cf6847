package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/arshjul/yearwheel/internal/cli"
	"github.com/arshjul/yearwheel/internal/config"
	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/holiday"
	"github.com/arshjul/yearwheel/internal/importer"
	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/server"
	"github.com/arshjul/yearwheel/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	layerRepo := repository.NewSQLiteLayerRepo(database)
	typeRepo := repository.NewSQLiteActivityTypeRepo(database)
	shareRepo := repository.NewSQLiteShareRepo(database)
	settingsRepo := repository.NewSQLiteUserSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	holidayCfg := holiday.DefaultConfig()
	if cfg.HolidayFeedURL != "" {
		holidayCfg.BaseURL = cfg.HolidayFeedURL
	}
	if cfg.HolidayCountryCode != "" {
		holidayCfg.CountryCode = cfg.HolidayCountryCode
	}
	holidays := holiday.NewClient(holidayCfg, nil)

	observer := service.NewLogUseCaseObserver(os.Stderr)

	svc := server.Services{
		Activities: service.NewActivityService(activityRepo, layerRepo, typeRepo, uow),
		Layers:     service.NewLayerService(layerRepo, uow),
		Types:      service.NewTypeService(typeRepo),
		Shares:     service.NewShareService(shareRepo, layerRepo, activityRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Wheel:      service.NewWheelService(activityRepo, layerRepo, settingsRepo, holidays, observer),
	}

	app := &cli.App{
		Activities: svc.Activities,
		Layers:     svc.Layers,
		Types:      svc.Types,
		Shares:     svc.Shares,
		Settings:   svc.Settings,
		Wheel:      svc.Wheel,
		Importer:   importer.NewImporter(uow),

		Config: cfg,
		Router: server.NewHandler(svc, cfg).Router(),

		OrganizationID: envOr("YEARWHEEL_ORG", "default"),
		UserID:         envOr("YEARWHEEL_USER", "local"),
	}

	// Detect interactive terminal for the activity form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return cli.NewRootCmd(app).Execute()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
