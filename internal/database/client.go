// Package database reads the station and solar farm reference tables from
// relational sources: Postgres via GORM, or an embedded SQLite file.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go.uber.org/zap"

	"stationmap/internal/log"
	"stationmap/internal/types"
)

// CreateConnection creates a Postgres connection with standard GORM
// configuration, bridging GORM's logger onto zap.
func CreateConnection(connectionString string) (*gorm.DB, error) {
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	log.Info("connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{Logger: dbLogger})
	if err != nil {
		log.Warn("warning: unable to create a Postgres connection:", err)
		return nil, err
	}

	return db, nil
}

// GetStations retrieves the full weather station table. table defaults to
// the stations model table name when empty.
func GetStations(db *gorm.DB, table string) ([]types.WeatherStation, error) {
	var records []StationRecord

	tx := db.Order("station_id")
	if table != "" {
		tx = tx.Table(table)
	}
	if err := tx.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("error querying station table: %w", err)
	}

	stations := make([]types.WeatherStation, len(records))
	for i, r := range records {
		stations[i] = types.WeatherStation{
			StationID: r.StationID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
	}
	return stations, nil
}

// GetSolarFarms retrieves the full solar farm table.
func GetSolarFarms(db *gorm.DB, table string) ([]types.SolarFarm, error) {
	var records []SolarFarmRecord

	tx := db.Order("name")
	if table != "" {
		tx = tx.Table(table)
	}
	if err := tx.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("error querying solar farm table: %w", err)
	}

	farms := make([]types.SolarFarm, len(records))
	for i, r := range records {
		farms[i] = types.SolarFarm{
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
	}
	return farms, nil
}
