package restserver

import (
	"fmt"
	"net/http"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"stationmap/internal/geodata"
	"stationmap/internal/log"
	"stationmap/pkg/responseformat"
	"stationmap/pkg/solar"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, v interface{}) {
	if err := h.formatter.WriteResponse(w, req, v); err != nil {
		log.Errorf("error encoding response: %v", err)
	}
}

// GetPoints returns the classified dataset as flat rows. The format
// query parameter selects JSON (default) or msgpack.
func (h *Handlers) GetPoints(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, h.controller.dataset.Points)
}

// GetPointsGeoJSON returns the classified dataset as a GeoJSON
// FeatureCollection of point features.
func (h *Handlers) GetPointsGeoJSON(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, pointsCollection(h.controller.dataset.Points))
}

// GetAreasGeoJSON returns the major-city boundary polygons as GeoJSON.
func (h *Handlers) GetAreasGeoJSON(w http.ResponseWriter, req *http.Request) {
	fc, err := areasCollection(h.controller.areas)
	if err != nil {
		log.Errorf("error converting urban areas to GeoJSON: %v", err)
		http.Error(w, "error converting urban areas", http.StatusInternalServerError)
		return
	}
	h.write(w, req, fc)
}

// GetFarms returns the solar farms with their closest station assignments.
func (h *Handlers) GetFarms(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, h.controller.dataset.Farms)
}

// SummaryResponse describes one dataset build: category counts plus
// distance statistics over the farm-to-closest-station distances.
type SummaryResponse struct {
	BuildID   string         `json:"build_id"`
	BuiltAt   time.Time      `json:"built_at"`
	Counts    map[string]int `json:"counts"`
	Distances *DistanceStats `json:"distances,omitempty"`
}

// DistanceStats summarizes farm-to-closest-station distances in km.
type DistanceStats struct {
	MinKm    float64 `json:"min_km"`
	MaxKm    float64 `json:"max_km"`
	MeanKm   float64 `json:"mean_km"`
	StddevKm float64 `json:"stddev_km"`
}

// GetSummary returns counts and distance statistics for the current build.
func (h *Handlers) GetSummary(w http.ResponseWriter, req *http.Request) {
	ds := h.controller.dataset
	resp := SummaryResponse{
		BuildID: ds.BuildID,
		BuiltAt: ds.BuiltAt,
		Counts:  ds.Counts,
	}

	if len(ds.Farms) > 0 {
		distances := make([]float64, len(ds.Farms))
		for i, farm := range ds.Farms {
			distances[i] = farm.ClosestStationKm
		}
		resp.Distances = &DistanceStats{
			MinKm:  floats.Min(distances),
			MaxKm:  floats.Max(distances),
			MeanKm: stat.Mean(distances, nil),
		}
		// StdDev is NaN for a single sample, which JSON cannot encode.
		if len(distances) > 1 {
			resp.Distances.StddevKm = stat.StdDev(distances, nil)
		}
	}

	h.write(w, req, resp)
}

// GetExport returns the classified dataset as a msgpack snapshot.
func (h *Handlers) GetExport(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/x-msgpack")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stationmap.msgpack\"")
	if err := geodata.WriteClassifiedMsgpack(w, h.controller.dataset.Points); err != nil {
		log.Errorf("error encoding dataset export: %v", err)
	}
}

// SunTimesResponse carries sunrise/sunset for one solar farm site.
type SunTimesResponse struct {
	Farm    string `json:"farm"`
	Date    string `json:"date"`
	Sunrise string `json:"sunrise,omitempty"`
	Sunset  string `json:"sunset,omitempty"`
	Polar   bool   `json:"polar,omitempty"`
}

// GetSunTimes returns sunrise and sunset at a farm site, used by the map
// popup. Query parameters: farm (required), date (YYYY-MM-DD, default
// today UTC).
func (h *Handlers) GetSunTimes(w http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get("farm")
	if name == "" {
		http.Error(w, "farm parameter is required", http.StatusBadRequest)
		return
	}

	date := time.Now().UTC()
	if d := req.URL.Query().Get("date"); d != "" {
		var err error
		date, err = time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, "error: invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	for _, farm := range h.controller.dataset.Farms {
		if farm.Name != name {
			continue
		}

		resp := SunTimesResponse{
			Farm: farm.Name,
			Date: date.Format("2006-01-02"),
		}
		sunrise, sunset, ok := solar.Times(date, farm.Latitude, farm.Longitude)
		if !ok {
			resp.Polar = true
		} else {
			resp.Sunrise = sunrise.Format(time.RFC3339)
			resp.Sunset = sunset.Format(time.RFC3339)
		}
		h.write(w, req, resp)
		return
	}

	http.Error(w, fmt.Sprintf("farm not found: %s", name), http.StatusNotFound)
}
