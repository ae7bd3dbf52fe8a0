package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-inventory-keeper/internal/client"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/navigation"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/tui"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "inventory: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewFileLogger("inventory", cfg.Log.File, cfg.Log.Level)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("log_level", cfg.Log.Level).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)
	controller := navigation.NewController(services, log)
	ui := tui.New(controller, buildInfo(), log)

	app, err := client.NewApp(services, ui, cfg.App, log)
	if err != nil {
		return fmt.Errorf("init app error: %w", err)
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("app run error")
		return err
	}
	return nil
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
