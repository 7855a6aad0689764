package atlas

import (
	"errors"
	"math"
	"testing"

	"github.com/ctessum/geom"

	"stationmap/internal/types"
)

// square returns a closed rectangular boundary polygon.
func square(minLon, minLat, maxLon, maxLat float64) geom.Polygon {
	return geom.Polygon{{
		{X: minLon, Y: minLat},
		{X: maxLon, Y: minLat},
		{X: maxLon, Y: maxLat},
		{X: minLon, Y: maxLat},
		{X: minLon, Y: minLat},
	}}
}

func sydneyArea() types.UrbanArea {
	return types.UrbanArea{
		Name:     "Sydney",
		Boundary: square(150.5, -34.5, 151.7, -33.3),
	}
}

func TestAreaName(t *testing.T) {
	ix := NewAreaIndex([]types.UrbanArea{
		sydneyArea(),
		{Name: "Melbourne", Boundary: square(144.4, -38.3, 145.6, -37.4)},
	})

	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{name: "inside Sydney", lat: -33.86, lon: 151.21, want: "Sydney"},
		{name: "inside Melbourne", lat: -37.81, lon: 144.96, want: "Melbourne"},
		{name: "outback, no area", lat: -25.0, lon: 133.0, want: ""},
		{name: "just outside Sydney box", lat: -33.86, lon: 152.5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.AreaName(tt.lat, tt.lon); got != tt.want {
				t.Errorf("AreaName(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestUrbanStations(t *testing.T) {
	ix := NewAreaIndex([]types.UrbanArea{sydneyArea()})
	stations := []types.WeatherStation{
		{StationID: "S1", Name: "Observatory Hill", Latitude: -33.86, Longitude: 151.21},
		{StationID: "S2", Name: "Outback", Latitude: -25.0, Longitude: 133.0},
	}

	urban := UrbanStations(stations, ix, []string{"Sydney"})
	if len(urban) != 1 {
		t.Fatalf("expected 1 urban station, got %d: %v", len(urban), urban)
	}
	if urban["S1"] != "Sydney" {
		t.Errorf("S1 area = %q, want Sydney", urban["S1"])
	}
}

func TestUrbanStationsEmptyAllowList(t *testing.T) {
	ix := NewAreaIndex([]types.UrbanArea{sydneyArea()})
	stations := []types.WeatherStation{
		{StationID: "S1", Latitude: -33.86, Longitude: 151.21},
	}

	if urban := UrbanStations(stations, ix, nil); len(urban) != 0 {
		t.Errorf("empty allow-list must yield zero urban stations, got %v", urban)
	}
}

func TestUrbanStationsAreaNotAllowed(t *testing.T) {
	ix := NewAreaIndex([]types.UrbanArea{sydneyArea()})
	stations := []types.WeatherStation{
		{StationID: "S1", Latitude: -33.86, Longitude: 151.21},
	}

	if urban := UrbanStations(stations, ix, []string{"Melbourne"}); len(urban) != 0 {
		t.Errorf("station in non-allow-listed area must be excluded, got %v", urban)
	}
}

func TestAssignClosestStations(t *testing.T) {
	stations := []types.WeatherStation{
		{StationID: "A", Latitude: 0, Longitude: 0},
		{StationID: "B", Latitude: 10, Longitude: 10},
	}
	farms := []types.SolarFarm{
		{Name: "F", Latitude: 0, Longitude: 0},
	}

	assigned, err := AssignClosestStations(farms, stations)
	if err != nil {
		t.Fatalf("AssignClosestStations() error: %v", err)
	}
	if assigned[0].ClosestStationID != "A" {
		t.Errorf("closest station = %q, want A", assigned[0].ClosestStationID)
	}
	if assigned[0].ClosestStationKm != 0 {
		t.Errorf("distance at coincident coordinates = %v, want 0", assigned[0].ClosestStationKm)
	}
}

func TestAssignClosestStationsMinimumProperty(t *testing.T) {
	stations := []types.WeatherStation{
		{StationID: "A", Latitude: -33.9, Longitude: 151.2},
		{StationID: "B", Latitude: -31.5, Longitude: 147.0},
		{StationID: "C", Latitude: -37.8, Longitude: 145.0},
		{StationID: "D", Latitude: -27.5, Longitude: 153.0},
	}
	farms := []types.SolarFarm{
		{Name: "F1", Latitude: -31.6, Longitude: 147.1},
		{Name: "F2", Latitude: -36.0, Longitude: 146.0},
	}

	assigned, err := AssignClosestStations(farms, stations)
	if err != nil {
		t.Fatalf("AssignClosestStations() error: %v", err)
	}

	// The chosen distance must be <= the distance to every other station.
	for _, farm := range assigned {
		for _, s := range stations {
			km := haversineForTest(farm.Latitude, farm.Longitude, s.Latitude, s.Longitude)
			if farm.ClosestStationKm > km+1e-9 {
				t.Errorf("farm %s: chosen %.3f km but station %s is %.3f km away",
					farm.Name, farm.ClosestStationKm, s.StationID, km)
			}
		}
	}
}

func TestAssignClosestStationsTieBreak(t *testing.T) {
	// Two stations symmetric about the farm: equidistant, first wins.
	stations := []types.WeatherStation{
		{StationID: "west", Latitude: 0, Longitude: -1},
		{StationID: "east", Latitude: 0, Longitude: 1},
	}
	farms := []types.SolarFarm{
		{Name: "F", Latitude: 0, Longitude: 0},
	}

	assigned, err := AssignClosestStations(farms, stations)
	if err != nil {
		t.Fatalf("AssignClosestStations() error: %v", err)
	}
	if assigned[0].ClosestStationID != "west" {
		t.Errorf("tie must break to first-encountered station, got %q", assigned[0].ClosestStationID)
	}
}

func TestAssignClosestStationsEmptyTable(t *testing.T) {
	farms := []types.SolarFarm{{Name: "F", Latitude: 0, Longitude: 0}}

	_, err := AssignClosestStations(farms, nil)
	if !errors.Is(err, ErrNoStations) {
		t.Fatalf("expected ErrNoStations, got %v", err)
	}
}

func TestClassifyStationPrecedence(t *testing.T) {
	urban := map[string]string{"S1": "Sydney"}
	solarAdjacent := map[string]bool{"S1": true, "S2": true}

	tests := []struct {
		stationID string
		want      types.Category
	}{
		{stationID: "S1", want: types.CategoryUrban}, // urban beats solar-adjacent
		{stationID: "S2", want: types.CategorySolarAdjacent},
		{stationID: "S3", want: types.CategoryRegional},
	}

	for _, tt := range tests {
		if got := ClassifyStation(tt.stationID, urban, solarAdjacent); got != tt.want {
			t.Errorf("ClassifyStation(%q) = %v, want %v", tt.stationID, got, tt.want)
		}
	}
}

func TestBuildScenario(t *testing.T) {
	areas := []types.UrbanArea{sydneyArea()}
	stations := []types.WeatherStation{
		{StationID: "S1", Name: "Sydney Obs", Latitude: -33.86, Longitude: 151.21},
		{StationID: "S2", Name: "Nyngan AWS", Latitude: -31.55, Longitude: 147.20},
		{StationID: "S3", Name: "Alice Springs", Latitude: -23.80, Longitude: 133.89},
	}
	farms := []types.SolarFarm{
		{Name: "Nyngan Solar Plant", Latitude: -31.56, Longitude: 147.06},
	}

	ds, err := Build(stations, farms, areas, []string{"Sydney"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(ds.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(ds.Points))
	}

	wantLabels := []string{
		"Urban Weather Station",
		"Close to Solar Farm",
		"Regional Weather Station",
		"Solar Farm",
	}
	for i, want := range wantLabels {
		if ds.Points[i].Label != want {
			t.Errorf("point %d label = %q, want %q", i, ds.Points[i].Label, want)
		}
	}

	if ds.Points[0].StationID != "S1" || ds.Points[1].StationID != "S2" || ds.Points[2].StationID != "S3" {
		t.Errorf("unexpected point order: %+v", ds.Points)
	}
	if ds.Points[3].StationID != types.SentinelStationID {
		t.Errorf("farm row station id = %q, want sentinel", ds.Points[3].StationID)
	}
	if ds.Points[3].Radius != 3 || ds.Points[3].Color != "orange" {
		t.Errorf("unexpected farm style: %+v", ds.Points[3])
	}
	if ds.Points[2].Opacity != 0.5 || ds.Points[2].Color != "grey" {
		t.Errorf("unexpected regional style: %+v", ds.Points[2])
	}

	if ds.BuildID == "" {
		t.Error("dataset build id must be set")
	}
	if ds.Farms[0].ClosestStationID != "S2" {
		t.Errorf("farm closest station = %q, want S2", ds.Farms[0].ClosestStationID)
	}
}

func TestBuildPartition(t *testing.T) {
	// A station that is both urban and closest-to-a-farm is emitted once,
	// as urban; the categories partition stations plus farms.
	areas := []types.UrbanArea{sydneyArea()}
	stations := []types.WeatherStation{
		{StationID: "S1", Name: "Sydney Obs", Latitude: -33.86, Longitude: 151.21},
		{StationID: "S2", Name: "Alice Springs", Latitude: -23.80, Longitude: 133.89},
	}
	farms := []types.SolarFarm{
		{Name: "Rooftop", Latitude: -33.86, Longitude: 151.21}, // on top of S1
	}

	ds, err := Build(stations, farms, areas, []string{"Sydney"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(ds.Points) != len(stations)+len(farms) {
		t.Fatalf("expected %d points, got %d", len(stations)+len(farms), len(ds.Points))
	}

	seen := make(map[string]int)
	for _, p := range ds.Points {
		if p.StationID != types.SentinelStationID {
			seen[p.StationID]++
		}
	}
	if seen["S1"] != 1 {
		t.Errorf("dual-category station emitted %d times, want exactly once", seen["S1"])
	}

	if ds.Counts["Urban Weather Station"] != 1 ||
		ds.Counts["Close to Solar Farm"] != 0 ||
		ds.Counts["Regional Weather Station"] != 1 ||
		ds.Counts["Solar Farm"] != 1 {
		t.Errorf("unexpected category counts: %v", ds.Counts)
	}
}

func TestBuildEmptyStations(t *testing.T) {
	farms := []types.SolarFarm{{Name: "F", Latitude: 0, Longitude: 0}}

	if _, err := Build(nil, farms, nil, nil); !errors.Is(err, ErrNoStations) {
		t.Fatalf("expected ErrNoStations, got %v", err)
	}
}

// haversineForTest is an independent reimplementation used to check the
// minimum property without depending on pkg/geo's own correctness.
func haversineForTest(lat1, lon1, lat2, lon2 float64) float64 {
	const r = 6371.0088
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * r * math.Asin(math.Sqrt(a))
}
