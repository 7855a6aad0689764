package atlas

import (
	"errors"

	"stationmap/internal/types"
	"stationmap/pkg/geo"
)

// ErrNoStations is returned when a nearest-station lookup is attempted
// against an empty station table. No meaningful "closest" exists, so the
// operation fails loudly rather than producing a farm with no neighbour.
var ErrNoStations = errors.New("station table is empty; nearest station is undefined")

// AssignClosestStations returns a copy of farms with ClosestStationID and
// ClosestStationKm populated from a haversine scan over every station.
// Equidistant ties break to the first-encountered station in table order;
// this is deterministic but arbitrary.
func AssignClosestStations(farms []types.SolarFarm, stations []types.WeatherStation) ([]types.SolarFarm, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}

	assigned := make([]types.SolarFarm, len(farms))
	for i, farm := range farms {
		closest := stations[0]
		minKm := geo.Haversine(farm.Latitude, farm.Longitude, closest.Latitude, closest.Longitude)

		for _, s := range stations[1:] {
			if km := geo.Haversine(farm.Latitude, farm.Longitude, s.Latitude, s.Longitude); km < minKm {
				closest = s
				minKm = km
			}
		}

		farm.ClosestStationID = closest.StationID
		farm.ClosestStationKm = minKm
		assigned[i] = farm
	}

	return assigned, nil
}
