package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Datasets    DatasetsYAML   `yaml:"datasets"`
		MajorCities []string       `yaml:"major-cities,omitempty"`
		RESTServer  RESTServerYAML `yaml:"rest,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Datasets: DatasetsData{
			Stations: SourceData{
				Backend:          yamlConfig.Datasets.Stations.Backend,
				Path:             yamlConfig.Datasets.Stations.Path,
				ConnectionString: yamlConfig.Datasets.Stations.ConnectionString,
				Table:            yamlConfig.Datasets.Stations.Table,
			},
			SolarFarms: SourceData{
				Backend:          yamlConfig.Datasets.SolarFarms.Backend,
				Path:             yamlConfig.Datasets.SolarFarms.Path,
				ConnectionString: yamlConfig.Datasets.SolarFarms.ConnectionString,
				Table:            yamlConfig.Datasets.SolarFarms.Table,
			},
			UrbanAreas: ShapefileData{
				Path:      yamlConfig.Datasets.UrbanAreas.Path,
				NameField: yamlConfig.Datasets.UrbanAreas.NameField,
			},
		},
		MajorCities: yamlConfig.MajorCities,
		RESTServer: RESTServerData{
			ListenAddr:  yamlConfig.RESTServer.ListenAddr,
			Port:        yamlConfig.RESTServer.Port,
			TLSCertPath: yamlConfig.RESTServer.Cert,
			TLSKeyPath:  yamlConfig.RESTServer.Key,
		},
	}
	config.ApplyDefaults()

	y.config = config
	return config, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags
type DatasetsYAML struct {
	Stations   SourceYAML    `yaml:"stations"`
	SolarFarms SourceYAML    `yaml:"solar-farms"`
	UrbanAreas ShapefileYAML `yaml:"urban-areas"`
}

type SourceYAML struct {
	Backend          string `yaml:"backend,omitempty"`
	Path             string `yaml:"path,omitempty"`
	ConnectionString string `yaml:"connection-string,omitempty"`
	Table            string `yaml:"table,omitempty"`
}

type ShapefileYAML struct {
	Path      string `yaml:"path"`
	NameField string `yaml:"name-field,omitempty"`
}

type RESTServerYAML struct {
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	ListenAddr string `yaml:"listen-addr,omitempty"`
}
