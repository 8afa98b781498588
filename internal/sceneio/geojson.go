package sceneio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

// geoObject covers geometries, features and collections; only the fields
// of the object's type are populated.
type geoObject struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoObject      `json:"geometry"`
	Geometries  []geoObject     `json:"geometries"`
	Features    []geoObject     `json:"features"`
}

func toPoints(raw [][]float64) []geom.Point {
	pts := make([]geom.Point, 0, len(raw))
	for _, c := range raw {
		if len(c) < 2 {
			continue
		}
		pts = append(pts, roundPt(c[0], c[1]))
	}
	return pts
}

func (g *geoObject) shapes(c geom.Color) ([]scene.Shape, error) {
	decode := func(v any) error {
		if len(g.Coordinates) == 0 {
			return fmt.Errorf("geojson %s: missing coordinates", g.Type)
		}
		if err := json.Unmarshal(g.Coordinates, v); err != nil {
			return fmt.Errorf("geojson %s: %w", g.Type, err)
		}
		return nil
	}
	switch g.Type {
	case "Point":
		var pt []float64
		if err := decode(&pt); err != nil {
			return nil, err
		}
		return pointShapes(toPoints([][]float64{pt}), c), nil
	case "MultiPoint":
		var pts [][]float64
		if err := decode(&pts); err != nil {
			return nil, err
		}
		return pointShapes(toPoints(pts), c), nil
	case "LineString":
		var ls [][]float64
		if err := decode(&ls); err != nil {
			return nil, err
		}
		if pts := toPoints(ls); len(pts) > 0 {
			return pathShapes(pts, c), nil
		}
		return nil, nil
	case "MultiLineString":
		var mls [][][]float64
		if err := decode(&mls); err != nil {
			return nil, err
		}
		var out []scene.Shape
		for _, ls := range mls {
			if pts := toPoints(ls); len(pts) > 0 {
				out = append(out, pathShapes(pts, c)...)
			}
		}
		return out, nil
	case "Polygon":
		var rings [][][]float64
		if err := decode(&rings); err != nil {
			return nil, err
		}
		return polygonShapes(rings, c), nil
	case "MultiPolygon":
		var polys [][][][]float64
		if err := decode(&polys); err != nil {
			return nil, err
		}
		var out []scene.Shape
		for _, rings := range polys {
			out = append(out, polygonShapes(rings, c)...)
		}
		return out, nil
	case "GeometryCollection":
		return collect(g.Geometries, c)
	case "Feature":
		if g.Geometry == nil {
			return nil, nil
		}
		return g.Geometry.shapes(c)
	case "FeatureCollection":
		return collect(g.Features, c)
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		return nil, errors.New("unsupported geojson type: " + g.Type)
	}
}

func polygonShapes(rings [][][]float64, c geom.Color) []scene.Shape {
	var out []scene.Shape
	for _, ring := range rings {
		if pts := toPoints(ring); len(pts) > 0 {
			out = append(out, ringShapes(pts, c)...)
		}
	}
	return out
}

func collect(objs []geoObject, c geom.Color) ([]scene.Shape, error) {
	var out []scene.Shape
	for i := range objs {
		got, err := objs[i].shapes(c)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	return out, nil
}

// DecodeGeoJSON converts a GeoJSON document into shapes colored c.
func DecodeGeoJSON(data []byte, c geom.Color) ([]scene.Shape, error) {
	var obj geoObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	shapes, err := obj.shapes(c)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, errors.New("no geometries found")
	}
	return shapes, nil
}

// LoadGeoJSON reads a GeoJSON file: Point, MultiPoint, LineString,
// MultiLineString, Polygon, MultiPolygon, GeometryCollection, Feature and
// FeatureCollection are supported.
func LoadGeoJSON(path string, c geom.Color) ([]scene.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeGeoJSON(data, c)
}
