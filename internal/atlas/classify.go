package atlas

import (
	"time"

	"github.com/google/uuid"

	"stationmap/internal/types"
)

// Display styles per category. These match the reference rendering:
// urban green, solar-adjacent red, regional grey at half opacity, farms
// orange and slightly larger.
type style struct {
	color   string
	opacity float64
	radius  int
}

var styles = map[types.Category]style{
	types.CategoryUrban:         {color: "green", opacity: 1, radius: 2},
	types.CategorySolarAdjacent: {color: "red", opacity: 1, radius: 2},
	types.CategoryRegional:      {color: "grey", opacity: 0.5, radius: 2},
	types.CategorySolarFarm:     {color: "orange", opacity: 1, radius: 3},
}

// Dataset is one complete build of the classified point set, tagged so
// consumers can tell builds apart.
type Dataset struct {
	BuildID string
	BuiltAt time.Time

	Points []types.ClassifiedPoint
	Farms  []types.SolarFarm // with closest station assigned
	Urban  map[string]string // station id -> containing city

	// Counts holds the number of points emitted per category label.
	Counts map[string]int
}

// ClassifyStation returns the category for a single station. Precedence
// is urban > solar-adjacent > regional: a station that is both inside a
// major city and closest to a farm is classified urban. The precedence is
// an explicit rule here rather than a side effect of concatenation order.
func ClassifyStation(stationID string, urban map[string]string, solarAdjacent map[string]bool) types.Category {
	if _, ok := urban[stationID]; ok {
		return types.CategoryUrban
	}
	if solarAdjacent[stationID] {
		return types.CategorySolarAdjacent
	}
	return types.CategoryRegional
}

func newPoint(stationID, name string, lat, lon float64, cat types.Category) types.ClassifiedPoint {
	st := styles[cat]
	return types.ClassifiedPoint{
		StationID: stationID,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Category:  cat,
		Label:     cat.Label(),
		Color:     st.color,
		Opacity:   st.opacity,
		Radius:    st.radius,
	}
}

// Build runs the full pipeline: urban membership, nearest-station
// assignment, then ordered combination. Output order is fixed: urban
// stations, solar-adjacent stations, regional stations (each in station
// table order), then the farms themselves. Every station appears exactly
// once; the four categories partition stations and farms.
func Build(stations []types.WeatherStation, farms []types.SolarFarm, areas []types.UrbanArea, cities []string) (*Dataset, error) {
	ix := NewAreaIndex(areas)
	urban := UrbanStations(stations, ix, cities)

	assigned, err := AssignClosestStations(farms, stations)
	if err != nil {
		return nil, err
	}

	solarAdjacent := make(map[string]bool, len(assigned))
	for _, farm := range assigned {
		solarAdjacent[farm.ClosestStationID] = true
	}

	ds := &Dataset{
		BuildID: uuid.NewString(),
		BuiltAt: time.Now().UTC(),
		Farms:   assigned,
		Urban:   urban,
		Counts:  make(map[string]int),
	}

	byCategory := make(map[types.Category][]types.ClassifiedPoint)
	for _, s := range stations {
		cat := ClassifyStation(s.StationID, urban, solarAdjacent)
		byCategory[cat] = append(byCategory[cat], newPoint(s.StationID, s.Name, s.Latitude, s.Longitude, cat))
	}

	for _, cat := range []types.Category{types.CategoryUrban, types.CategorySolarAdjacent, types.CategoryRegional} {
		ds.Points = append(ds.Points, byCategory[cat]...)
	}
	for _, farm := range assigned {
		ds.Points = append(ds.Points, newPoint(types.SentinelStationID, farm.Name, farm.Latitude, farm.Longitude, types.CategorySolarFarm))
	}

	for _, p := range ds.Points {
		ds.Counts[p.Label]++
	}

	return ds, nil
}
