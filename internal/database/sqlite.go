package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore reads the reference tables from an embedded SQLite file.
// The schema mirrors the GORM models: weather_stations(station_id, name,
// latitude, longitude) and solar_farms(name, latitude, longitude).
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens a SQLite dataset file.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// GetStations returns all station rows ordered by station_id. table
// defaults to weather_stations when empty.
func (s *SQLiteStore) GetStations(table string) ([]StationRecord, error) {
	if table == "" {
		table = StationRecord{}.TableName()
	}
	query := fmt.Sprintf("SELECT station_id, name, latitude, longitude FROM %s ORDER BY station_id", table)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []StationRecord
	for rows.Next() {
		var rec StationRecord
		var name sql.NullString

		if err := rows.Scan(&rec.StationID, &name, &rec.Latitude, &rec.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		if name.Valid {
			rec.Name = name.String
		}
		stations = append(stations, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read station rows: %w", err)
	}

	return stations, nil
}

// GetSolarFarms returns all solar farm rows ordered by name.
func (s *SQLiteStore) GetSolarFarms(table string) ([]SolarFarmRecord, error) {
	if table == "" {
		table = SolarFarmRecord{}.TableName()
	}
	query := fmt.Sprintf("SELECT name, latitude, longitude FROM %s ORDER BY name", table)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query solar farms: %w", err)
	}
	defer rows.Close()

	var farms []SolarFarmRecord
	for rows.Next() {
		var rec SolarFarmRecord

		if err := rows.Scan(&rec.Name, &rec.Latitude, &rec.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan solar farm row: %w", err)
		}
		farms = append(farms, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solar farm rows: %w", err)
	}

	return farms, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
