package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Datasets    DatasetsData   `json:"datasets"`
	MajorCities []string       `json:"major_cities,omitempty"`
	RESTServer  RESTServerData `json:"rest,omitempty"`
}

// DatasetsData describes where the three reference datasets come from
type DatasetsData struct {
	Stations   SourceData    `json:"stations"`
	SolarFarms SourceData    `json:"solar_farms"`
	UrbanAreas ShapefileData `json:"urban_areas"`
}

// SourceData describes one tabular dataset source. Backend selects the
// loader: "csv", "msgpack", "sqlite", or "postgres".
type SourceData struct {
	Backend          string `json:"backend"`
	Path             string `json:"path,omitempty"`
	ConnectionString string `json:"connection_string,omitempty"`
	Table            string `json:"table,omitempty"`
}

// ShapefileData describes the urban-area polygon shapefile. NameField is
// the attribute carrying the area name.
type ShapefileData struct {
	Path      string `json:"path"`
	NameField string `json:"name_field,omitempty"`
}

// RESTServerData holds the map server settings
type RESTServerData struct {
	ListenAddr  string `json:"listen_addr,omitempty"`
	Port        int    `json:"port,omitempty"`
	TLSCertPath string `json:"cert,omitempty"`
	TLSKeyPath  string `json:"key,omitempty"`
}

// DefaultMajorCities is the reference allow-list of Significant Urban
// Areas used when the config does not supply its own.
var DefaultMajorCities = []string{
	"Sydney",
	"Melbourne",
	"Brisbane",
	"Perth",
	"Adelaide",
	"Canberra - Queanbeyan",
}

// DefaultAreaNameField is the shapefile attribute holding the urban area
// name in the reference Significant Urban Areas dataset.
const DefaultAreaNameField = "SUA_NAME"

// ApplyDefaults fills in defaulted fields that the config source left empty.
func (c *ConfigData) ApplyDefaults() {
	if len(c.MajorCities) == 0 {
		c.MajorCities = append([]string{}, DefaultMajorCities...)
	}
	if c.Datasets.UrbanAreas.NameField == "" {
		c.Datasets.UrbanAreas.NameField = DefaultAreaNameField
	}
	if c.Datasets.Stations.Backend == "" {
		c.Datasets.Stations.Backend = "csv"
	}
	if c.Datasets.SolarFarms.Backend == "" {
		c.Datasets.SolarFarms.Backend = "csv"
	}
}
