// Package geodata loads the read-only reference datasets: the weather
// station table, the solar farm table, and the urban-area boundary
// polygons. Loading is pure I/O; classification lives in internal/atlas.
package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stationmap/internal/types"
)

// columnIndex maps a header row to column positions, case-insensitively.
// Returns an error naming the first missing required column.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return idx, nil
}

// parseCoord converts a coordinate column value to a float64. Coordinate
// columns arrive as text and require explicit numeric coercion.
func parseCoord(value, column string, row int) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid %s %q: %w", row, column, value, err)
	}
	return f, nil
}

// LoadStationsCSV reads the weather station table from a CSV file with
// columns station_id, name, latitude, longitude. Malformed rows are load
// errors, not skipped rows.
func LoadStationsCSV(path string) ([]types.WeatherStation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stations file: %w", err)
	}
	defer f.Close()
	return ReadStationsCSV(f)
}

// ReadStationsCSV reads station rows from r in CSV format.
func ReadStationsCSV(r io.Reader) ([]types.WeatherStation, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading stations header: %w", err)
	}
	idx, err := columnIndex(header, "station_id", "name", "latitude", "longitude")
	if err != nil {
		return nil, fmt.Errorf("stations table: %w", err)
	}

	var stations []types.WeatherStation
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading stations row %d: %w", row, err)
		}

		lat, err := parseCoord(record[idx["latitude"]], "latitude", row)
		if err != nil {
			return nil, err
		}
		lon, err := parseCoord(record[idx["longitude"]], "longitude", row)
		if err != nil {
			return nil, err
		}

		stations = append(stations, types.WeatherStation{
			StationID: strings.TrimSpace(record[idx["station_id"]]),
			Name:      strings.TrimSpace(record[idx["name"]]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return stations, nil
}

// LoadFarmsCSV reads the solar farm table from a CSV file with columns
// name, latitude, longitude.
func LoadFarmsCSV(path string) ([]types.SolarFarm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solar farms file: %w", err)
	}
	defer f.Close()
	return ReadFarmsCSV(f)
}

// ReadFarmsCSV reads solar farm rows from r in CSV format.
func ReadFarmsCSV(r io.Reader) ([]types.SolarFarm, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading solar farms header: %w", err)
	}
	idx, err := columnIndex(header, "name", "latitude", "longitude")
	if err != nil {
		return nil, fmt.Errorf("solar farms table: %w", err)
	}

	var farms []types.SolarFarm
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading solar farms row %d: %w", row, err)
		}

		lat, err := parseCoord(record[idx["latitude"]], "latitude", row)
		if err != nil {
			return nil, err
		}
		lon, err := parseCoord(record[idx["longitude"]], "longitude", row)
		if err != nil {
			return nil, err
		}

		farms = append(farms, types.SolarFarm{
			Name:      strings.TrimSpace(record[idx["name"]]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return farms, nil
}
