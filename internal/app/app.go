// Package app wires the pipeline together: load the reference datasets,
// build the classified atlas, then serve the map until shutdown.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"stationmap/internal/atlas"
	"stationmap/internal/controllers/restserver"
	"stationmap/internal/geodata"
	"stationmap/internal/log"
	"stationmap/internal/types"
	"stationmap/pkg/config"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	dataset, areas, err := buildDataset(cfg)
	if err != nil {
		return err
	}

	rest, err := restserver.NewController(ctx, &wg, cfg.RESTServer, dataset, areas, a.logger)
	if err != nil {
		return fmt.Errorf("error creating REST server: %w", err)
	}
	if err := rest.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// buildDataset loads the three reference inputs and runs the
// classification pipeline. Returns the dataset plus the allow-listed
// urban areas for map overlays.
func buildDataset(cfg *config.ConfigData) (*atlas.Dataset, []types.UrbanArea, error) {
	stations, err := geodata.LoadStations(cfg.Datasets.Stations)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading weather stations: %w", err)
	}
	log.Infof("loaded %d weather stations", len(stations))

	farms, err := geodata.LoadFarms(cfg.Datasets.SolarFarms)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading solar farms: %w", err)
	}
	log.Infof("loaded %d solar farms", len(farms))

	areas, err := geodata.LoadUrbanAreas(cfg.Datasets.UrbanAreas.Path, cfg.Datasets.UrbanAreas.NameField)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading urban areas: %w", err)
	}
	log.Infof("loaded %d urban area polygons", len(areas))

	dataset, err := atlas.Build(stations, farms, areas, cfg.MajorCities)
	if err != nil {
		return nil, nil, fmt.Errorf("error building classified dataset: %w", err)
	}
	log.Infof("built dataset %s: %v", dataset.BuildID, dataset.Counts)

	allowed := make(map[string]bool, len(cfg.MajorCities))
	for _, city := range cfg.MajorCities {
		allowed[city] = true
	}
	var overlays []types.UrbanArea
	for _, area := range areas {
		if allowed[area.Name] {
			overlays = append(overlays, area)
		}
	}

	return dataset, overlays, nil
}
