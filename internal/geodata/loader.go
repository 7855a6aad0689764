package geodata

import (
	"fmt"

	"stationmap/internal/database"
	"stationmap/internal/types"
	"stationmap/pkg/config"
)

// LoadStations loads the weather station table from the configured source.
func LoadStations(src config.SourceData) ([]types.WeatherStation, error) {
	switch src.Backend {
	case "csv":
		return LoadStationsCSV(src.Path)
	case "msgpack":
		return LoadStationsMsgpack(src.Path)
	case "sqlite":
		store, err := database.NewSQLiteStore(src.Path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		records, err := store.GetStations(src.Table)
		if err != nil {
			return nil, err
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
	case "postgres":
		db, err := database.CreateConnection(src.ConnectionString)
		if err != nil {
			return nil, err
		}
		return database.GetStations(db, src.Table)
	default:
		return nil, fmt.Errorf("unsupported stations backend: %q. Use 'csv', 'msgpack', 'sqlite' or 'postgres'", src.Backend)
	}
}

// LoadFarms loads the solar farm table from the configured source.
func LoadFarms(src config.SourceData) ([]types.SolarFarm, error) {
	switch src.Backend {
	case "csv":
		return LoadFarmsCSV(src.Path)
	case "msgpack":
		return LoadFarmsMsgpack(src.Path)
	case "sqlite":
		store, err := database.NewSQLiteStore(src.Path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		records, err := store.GetSolarFarms(src.Table)
		if err != nil {
			return nil, err
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
	case "postgres":
		db, err := database.CreateConnection(src.ConnectionString)
		if err != nil {
			return nil, err
		}
		return database.GetSolarFarms(db, src.Table)
	default:
		return nil, fmt.Errorf("unsupported solar farms backend: %q. Use 'csv', 'msgpack', 'sqlite' or 'postgres'", src.Backend)
	}
}
