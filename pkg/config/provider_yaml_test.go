package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
datasets:
  stations:
    backend: csv
    path: /data/stations.csv
  solar-farms:
    backend: msgpack
    path: /data/farms.msgpack
  urban-areas:
    path: /data/sua.shp
    name-field: SUA_NAME21
major-cities:
  - Sydney
  - Melbourne
rest:
  listen-addr: 127.0.0.1
  port: 9090
`)

	provider := NewYAMLProvider(path)
	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Datasets.Stations.Backend != "csv" || cfg.Datasets.Stations.Path != "/data/stations.csv" {
		t.Errorf("unexpected stations source: %+v", cfg.Datasets.Stations)
	}
	if cfg.Datasets.SolarFarms.Backend != "msgpack" {
		t.Errorf("unexpected farms backend: %q", cfg.Datasets.SolarFarms.Backend)
	}
	if cfg.Datasets.UrbanAreas.NameField != "SUA_NAME21" {
		t.Errorf("unexpected name field: %q", cfg.Datasets.UrbanAreas.NameField)
	}
	if len(cfg.MajorCities) != 2 || cfg.MajorCities[0] != "Sydney" {
		t.Errorf("unexpected major cities: %v", cfg.MajorCities)
	}
	if cfg.RESTServer.Port != 9090 {
		t.Errorf("unexpected REST port: %d", cfg.RESTServer.Port)
	}
	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}
}

func TestYAMLProviderDefaults(t *testing.T) {
	path := writeTempConfig(t, `
datasets:
  stations:
    path: stations.csv
  solar-farms:
    path: farms.csv
  urban-areas:
    path: sua.shp
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if len(cfg.MajorCities) != len(DefaultMajorCities) {
		t.Errorf("expected default major cities, got %v", cfg.MajorCities)
	}
	if cfg.Datasets.UrbanAreas.NameField != DefaultAreaNameField {
		t.Errorf("expected default name field, got %q", cfg.Datasets.UrbanAreas.NameField)
	}
	if cfg.Datasets.Stations.Backend != "csv" {
		t.Errorf("expected csv default backend, got %q", cfg.Datasets.Stations.Backend)
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	_, err := NewYAMLProvider("/nonexistent/config.yaml").LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
