package restserver

import (
	"fmt"

	"github.com/ctessum/geom"

	"stationmap/internal/types"
)

// GeoJSON document structures, following the standard layout.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry holds a Point, Polygon, or MultiPolygon; Coordinates nesting
// depth depends on Type.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

func pointFeature(p types.ClassifiedPoint) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{p.Longitude, p.Latitude},
		},
		Properties: map[string]interface{}{
			"station_id": p.StationID,
			"name":       p.Name,
			"label":      p.Label,
			"color":      p.Color,
			"opacity":    p.Opacity,
			"radius":     p.Radius,
		},
	}
}

// pointsCollection converts the classified dataset to a GeoJSON
// FeatureCollection of point features.
func pointsCollection(points []types.ClassifiedPoint) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, len(points))}
	for i, p := range points {
		fc.Features[i] = pointFeature(p)
	}
	return fc
}

func ringCoords(ring []geom.Point) [][]float64 {
	coords := make([][]float64, len(ring))
	for i, pt := range ring {
		coords[i] = []float64{pt.X, pt.Y}
	}
	return coords
}

func polygonCoords(poly geom.Polygon) [][][]float64 {
	coords := make([][][]float64, len(poly))
	for i, ring := range poly {
		coords[i] = ringCoords(ring)
	}
	return coords
}

// areaFeature converts an urban area boundary to a GeoJSON feature.
// Shapefile polygons arrive as either Polygon or MultiPolygon geometry.
func areaFeature(area types.UrbanArea) (Feature, error) {
	var g Geometry
	switch poly := area.Boundary.(type) {
	case geom.Polygon:
		g = Geometry{Type: "Polygon", Coordinates: polygonCoords(poly)}
	case geom.MultiPolygon:
		coords := make([][][][]float64, len(poly))
		for i, p := range poly {
			coords[i] = polygonCoords(p)
		}
		g = Geometry{Type: "MultiPolygon", Coordinates: coords}
	default:
		return Feature{}, fmt.Errorf("urban area %q: unsupported geometry %T", area.Name, area.Boundary)
	}

	return Feature{
		Type:     "Feature",
		Geometry: g,
		Properties: map[string]interface{}{
			"name": area.Name,
		},
	}, nil
}

// areasCollection converts the urban area overlays to GeoJSON.
func areasCollection(areas []types.UrbanArea) (FeatureCollection, error) {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(areas))}
	for _, area := range areas {
		f, err := areaFeature(area)
		if err != nil {
			return FeatureCollection{}, err
		}
		fc.Features = append(fc.Features, f)
	}
	return fc, nil
}
