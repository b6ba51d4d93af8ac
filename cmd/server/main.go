package main

import (
	"github.com/rideboard/trips-backend-go/internal/api"
	"github.com/rideboard/trips-backend-go/internal/config"
	"github.com/rideboard/trips-backend-go/internal/database"
	"github.com/rideboard/trips-backend-go/internal/handler"
	"github.com/rideboard/trips-backend-go/internal/metrics"
	"github.com/rideboard/trips-backend-go/internal/repository"
	"github.com/rideboard/trips-backend-go/internal/service"
	"github.com/rideboard/trips-backend-go/internal/snapshot"
	"github.com/rideboard/trips-backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Dynamic measure table: built-in defaults, optionally overridden
	// by an external YAML table
	registry := metrics.NewDefaultRegistry()
	if cfg.MetricsConfig != "" {
		table, err := metrics.LoadTable(cfg.MetricsConfig)
		if err != nil {
			log.Fatal("Failed to load dynamic measure table: ", err)
		}
		if err := registry.ApplyTable(table); err != nil {
			log.Fatal("Invalid dynamic measure table: ", err)
		}
		log.WithField("path", cfg.MetricsConfig).Info("Dynamic measure table loaded")
	}

	tripRepo := repository.NewTripRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	loadRepo := repository.NewLoadRepository(db)

	store := snapshot.NewStore()
	datasetService := service.NewDatasetService(cfg.DataDir, store, tripRepo, locationRepo, calendarRepo, loadRepo)
	evaluateService := service.NewEvaluateService(store, registry)
	tripService := service.NewTripService(tripRepo)
	locationService := service.NewLocationService(locationRepo, calendarRepo)

	// Initial load; the API can still start without data, queries
	// return 503 until a refresh succeeds
	report, err := datasetService.Refresh()
	if err != nil {
		log.WithError(err).Warn("Initial dataset load failed")
	} else {
		log.WithFields(map[string]interface{}{
			"load_id":     report.LoadID,
			"trips":       report.TripsLoaded,
			"locations":   report.Locations,
			"quarantined": report.Quarantined(),
		}).Info("Dataset loaded")
	}

	router := api.SetupRouter(cfg, log, api.Handlers{
		Evaluate: handler.NewEvaluateHandler(evaluateService),
		Trip:     handler.NewTripHandler(tripService),
		Location: handler.NewLocationHandler(locationService),
		Dataset:  handler.NewDatasetHandler(datasetService),
	})

	log.Info("Server starting on ", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
