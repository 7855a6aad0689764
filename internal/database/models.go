package database

// StationRecord is the GORM model for the weather station table.
type StationRecord struct {
	StationID string  `gorm:"column:station_id;primaryKey"`
	Name      string  `gorm:"column:name"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
}

// TableName implements the GORM Tabler interface
func (StationRecord) TableName() string {
	return "weather_stations"
}

// SolarFarmRecord is the GORM model for the solar farm table.
type SolarFarmRecord struct {
	Name      string  `gorm:"column:name;primaryKey"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
}

// TableName implements the GORM Tabler interface
func (SolarFarmRecord) TableName() string {
	return "solar_farms"
}
