package sceneio

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Point      *kmlCoords `xml:"Point"`
	LineString *kmlCoords `xml:"LineString"`
	Polygon    *struct {
		Outer string   `xml:"outerBoundaryIs>LinearRing>coordinates"`
		Inner []string `xml:"innerBoundaryIs>LinearRing>coordinates"`
	} `xml:"Polygon"`
}

// kmlTuples parses "x,y[,z] x,y[,z] ..."; altitude is ignored.
func kmlTuples(s string) []geom.Point {
	var pts []geom.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, roundPt(x, y))
	}
	return pts
}

func (pm kmlPlacemark) shapes(c geom.Color) []scene.Shape {
	var out []scene.Shape
	if pm.Point != nil {
		out = append(out, pointShapes(kmlTuples(pm.Point.Coordinates), c)...)
	}
	if pm.LineString != nil {
		if pts := kmlTuples(pm.LineString.Coordinates); len(pts) > 0 {
			out = append(out, pathShapes(pts, c)...)
		}
	}
	if pm.Polygon != nil {
		for _, ring := range append([]string{pm.Polygon.Outer}, pm.Polygon.Inner...) {
			if pts := kmlTuples(ring); len(pts) > 0 {
				out = append(out, ringShapes(pts, c)...)
			}
		}
	}
	return out
}

// DecodeKML reads every Placemark in r, at any depth, and converts its
// Point, LineString or Polygon into shapes colored c.
func DecodeKML(r io.Reader, c geom.Color) ([]scene.Shape, error) {
	dec := xml.NewDecoder(r)
	var shapes []scene.Shape
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, err
		}
		shapes = append(shapes, pm.shapes(c)...)
	}
	if len(shapes) == 0 {
		return nil, errors.New("kml: no geometries found")
	}
	return shapes, nil
}

// LoadKML reads a KML file.
func LoadKML(path string, c geom.Color) ([]scene.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeKML(f, c)
}
