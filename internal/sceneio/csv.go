package sceneio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

// DecodeCSV reads rows of vertices and returns them as one shape: a polygon
// for three or more vertices, otherwise a line or a point.
// Column detection: x|lon|lng|long|longitude and y|lat|latitude
// (case-insensitive). Rows that do not parse are skipped.
func DecodeCSV(r io.Reader, c geom.Color) ([]scene.Shape, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	var pts []geom.Point
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, roundPt(x, y))
	}
	if len(pts) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return ringShapes(pts, c), nil
}

// LoadCSV reads a CSV file.
func LoadCSV(path string, c geom.Color) ([]scene.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCSV(f, c)
}
