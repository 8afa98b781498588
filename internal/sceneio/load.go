package sceneio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rasterlab/internal/geom"
	"rasterlab/internal/logging"
	"rasterlab/internal/scene"
)

// Supported reports whether Load understands the file extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wkt", ".txt", ".geojson", ".json", ".kml", ".csv", ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads shapes from path, choosing the format by extension. Formats
// without colors use c; YAML scenes carry their own.
func Load(path string, c geom.Color) ([]scene.Shape, error) {
	var (
		shapes []scene.Shape
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wkt", ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			shapes, err = ParseWKTLines(string(data), c)
		}
	case ".geojson", ".json":
		shapes, err = LoadGeoJSON(path, c)
	case ".kml":
		shapes, err = LoadKML(path, c)
	case ".csv":
		shapes, err = LoadCSV(path, c)
	case ".yaml", ".yml":
		var f *os.File
		f, err = os.Open(path)
		if err == nil {
			shapes, err = DecodeYAML(f)
			f.Close()
		}
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	logging.Logger().Info("scene loaded", "path", path, "shapes", len(shapes))
	return shapes, nil
}
