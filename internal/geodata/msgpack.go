package geodata

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"stationmap/internal/types"
)

// Msgpack table snapshots are the serialized-table input format: an array
// of row maps, matching what the notebook-era pipeline pickled. The same
// codec serves the /api/export dataset download.

type stationRow struct {
	StationID string  `msgpack:"station_id"`
	Name      string  `msgpack:"name"`
	Latitude  float64 `msgpack:"latitude"`
	Longitude float64 `msgpack:"longitude"`
}

type farmRow struct {
	Name      string  `msgpack:"name"`
	Latitude  float64 `msgpack:"latitude"`
	Longitude float64 `msgpack:"longitude"`
}

// LoadStationsMsgpack reads a station table snapshot.
func LoadStationsMsgpack(path string) ([]types.WeatherStation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stations snapshot: %w", err)
	}
	defer f.Close()

	var rows []stationRow
	if err := msgpack.NewDecoder(f).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding stations snapshot: %w", err)
	}

	stations := make([]types.WeatherStation, len(rows))
	for i, r := range rows {
		stations[i] = types.WeatherStation{
			StationID: r.StationID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
	}
	return stations, nil
}

// LoadFarmsMsgpack reads a solar farm table snapshot.
func LoadFarmsMsgpack(path string) ([]types.SolarFarm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solar farms snapshot: %w", err)
	}
	defer f.Close()

	var rows []farmRow
	if err := msgpack.NewDecoder(f).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding solar farms snapshot: %w", err)
	}

	farms := make([]types.SolarFarm, len(rows))
	for i, r := range rows {
		farms[i] = types.SolarFarm{
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
	}
	return farms, nil
}

// WriteStationsMsgpack writes a station table snapshot, the inverse of
// LoadStationsMsgpack. Used by tests and dataset preparation tooling.
func WriteStationsMsgpack(w io.Writer, stations []types.WeatherStation) error {
	rows := make([]stationRow, len(stations))
	for i, s := range stations {
		rows[i] = stationRow{
			StationID: s.StationID,
			Name:      s.Name,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
	}
	return msgpack.NewEncoder(w).Encode(rows)
}

// WriteFarmsMsgpack writes a solar farm table snapshot.
func WriteFarmsMsgpack(w io.Writer, farms []types.SolarFarm) error {
	rows := make([]farmRow, len(farms))
	for i, f := range farms {
		rows[i] = farmRow{
			Name:      f.Name,
			Latitude:  f.Latitude,
			Longitude: f.Longitude,
		}
	}
	return msgpack.NewEncoder(w).Encode(rows)
}

// WriteClassifiedMsgpack serializes the combined classified dataset for
// the export endpoint.
func WriteClassifiedMsgpack(w io.Writer, points []types.ClassifiedPoint) error {
	return msgpack.NewEncoder(w).Encode(points)
}
