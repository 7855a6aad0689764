// Package types contains the domain types shared across the station map pipeline.
package types

import (
	"github.com/ctessum/geom"
)

// WeatherStation is one station from the national observation network.
// Station records are immutable reference data, loaded once at startup.
type WeatherStation struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SolarFarm is a utility-scale solar installation. ClosestStationID and
// ClosestStationKm are derived by the nearest-station finder; they are
// empty/zero until the atlas has been built.
type SolarFarm struct {
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ClosestStationID string  `json:"closest_station_id,omitempty"`
	ClosestStationKm float64 `json:"closest_station_km,omitempty"`
}

// UrbanArea is one named administrative boundary polygon from the
// urban-areas shapefile. Coordinates are WGS84 lon/lat treated as planar.
type UrbanArea struct {
	Name     string
	Boundary geom.Polygonal
}

// Category classifies a point for map display. A station belongs to
// exactly one category; precedence is urban > solar-adjacent > regional.
type Category int

const (
	CategoryUrban Category = iota
	CategorySolarAdjacent
	CategoryRegional
	CategorySolarFarm
)

// Label returns the display label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryUrban:
		return "Urban Weather Station"
	case CategorySolarAdjacent:
		return "Close to Solar Farm"
	case CategoryRegional:
		return "Regional Weather Station"
	case CategorySolarFarm:
		return "Solar Farm"
	}
	return "Unknown"
}

// SentinelStationID marks rows that represent solar farms rather than
// weather stations; farms have no station identifier of their own.
const SentinelStationID = "-"

// ClassifiedPoint is one renderable map marker: a station or a farm with
// its category and display style attached.
type ClassifiedPoint struct {
	StationID string   `json:"station_id"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  Category `json:"-"`
	Label     string   `json:"label"`
	Color     string   `json:"color"`
	Opacity   float64  `json:"opacity"`
	Radius    int      `json:"radius"`
}
