// Package restserver serves the interactive station map: polygon
// overlays, classified circle markers, and the JSON/GeoJSON APIs the
// embedded front-end consumes.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"stationmap/internal/atlas"
	"stationmap/internal/log"
	"stationmap/internal/types"
	"stationmap/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server

	dataset  *atlas.Dataset
	areas    []types.UrbanArea // allow-listed overlay polygons
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a new REST server controller serving the given
// classified dataset. areas are the urban polygons to draw as overlays;
// callers pass only the allow-listed ones.
func NewController(ctx context.Context, wg *sync.WaitGroup, rc config.RESTServerData, dataset *atlas.Dataset, areas []types.UrbanArea, logger *zap.SugaredLogger) (*Controller, error) {
	if dataset == nil {
		return nil, fmt.Errorf("no dataset provided to REST server")
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: rc,
		dataset:    dataset,
		areas:      areas,
		logger:     logger,
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if rc.ListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if rc.Port == 0 {
		logger.Info("rest.port not provided; defaulting to 8080")
		rc.Port = 8080
	}

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = handlers.CombinedLoggingHandler(os.Stdout,
		handlers.CompressHandler(
			handlers.CORS(handlers.AllowedOrigins([]string{"*"}))(router)))

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.TLSCertPath != "" && c.restConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.restConfig.TLSCertPath, c.restConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	// Data APIs consumed by the map front-end
	router.HandleFunc("/api/points", c.handlers.GetPoints)
	router.HandleFunc("/api/points.geojson", c.handlers.GetPointsGeoJSON)
	router.HandleFunc("/api/areas.geojson", c.handlers.GetAreasGeoJSON)
	router.HandleFunc("/api/farms", c.handlers.GetFarms)
	router.HandleFunc("/api/summary", c.handlers.GetSummary)
	router.HandleFunc("/api/export", c.handlers.GetExport)
	router.HandleFunc("/api/sun", c.handlers.GetSunTimes)

	// Static map assets
	router.PathPrefix("/").Handler(http.FileServer(http.FS(GetAssets())))

	return router
}
