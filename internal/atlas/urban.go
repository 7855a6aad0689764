// Package atlas builds the classified station map dataset: it decides
// which stations sit inside major urban areas, which are the closest
// station to a solar farm, and combines the results into one renderable
// point set.
package atlas

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"

	"stationmap/internal/types"
)

// AreaIndex is a spatial index over the urban-area polygons, used to
// narrow the point-in-polygon candidates for each station.
type AreaIndex struct {
	tree *rtree.Rtree
}

type indexedArea struct {
	types.UrbanArea
	geom.Polygonal
}

// Bounds implements rtree.Spatial.
func (a indexedArea) Bounds() *geom.Bounds {
	return a.Boundary.Bounds()
}

// NewAreaIndex builds a spatial index over the given urban areas.
func NewAreaIndex(areas []types.UrbanArea) *AreaIndex {
	tree := rtree.NewTree(25, 50)
	for _, area := range areas {
		tree.Insert(indexedArea{area, area.Boundary})
	}
	return &AreaIndex{tree: tree}
}

// AreaName returns the name of the urban area containing the coordinate,
// or the empty string when no polygon contains it. The containment test
// treats lon/lat as planar coordinates; at city scale the distortion is
// an accepted approximation. Administrative boundaries are assumed
// non-overlapping, so the first hit wins.
func (ix *AreaIndex) AreaName(lat, lon float64) string {
	p := geom.Point{X: lon, Y: lat}
	for _, hit := range ix.tree.SearchIntersect(p.Bounds()) {
		area := hit.(indexedArea)
		if p.Within(area.Boundary) != geom.Outside {
			return area.Name
		}
	}
	return ""
}

// UrbanStations maps station id to containing city name for every station
// that falls inside one of the allow-listed major cities. Stations that
// match no polygon resolve to "no area" and simply fail the filter.
func UrbanStations(stations []types.WeatherStation, ix *AreaIndex, cities []string) map[string]string {
	allowed := make(map[string]bool, len(cities))
	for _, city := range cities {
		allowed[city] = true
	}

	urban := make(map[string]string)
	for _, s := range stations {
		if area := ix.AreaName(s.Latitude, s.Longitude); area != "" && allowed[area] {
			urban[s.StationID] = area
		}
	}
	return urban
}
