package geodata

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"

	"stationmap/internal/types"
)

// LoadUrbanAreas reads the urban-area boundary polygons from an ESRI
// shapefile. nameField is the attribute carrying the area name. Features
// without polygonal geometry are rejected; the shapefile is expected to
// contain only administrative boundary polygons in WGS84 lon/lat.
func LoadUrbanAreas(path, nameField string) ([]types.UrbanArea, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("opening urban areas shapefile: %w", err)
	}

	var areas []types.UrbanArea
	for {
		g, fields, more := d.DecodeRowFields(nameField)
		if !more {
			break
		}

		poly, ok := g.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("urban area %q: geometry is %T, not polygonal", fields[nameField], g)
		}

		areas = append(areas, types.UrbanArea{
			Name:     fields[nameField],
			Boundary: poly,
		})
	}

	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("decoding urban areas shapefile: %w", err)
	}

	return areas, nil
}
