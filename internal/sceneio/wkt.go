package sceneio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

// parseTuples reads "x y, x y, ..." skipping malformed tuples.
func parseTuples(block string) []geom.Point {
	var out []geom.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, roundPt(x, y))
	}
	return out
}

// body returns the text between the first open and last close delimiter.
func body(s, open, close, kind string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j <= i {
		return "", fmt.Errorf("wkt %s: invalid", kind)
	}
	return s[i+len(open) : j], nil
}

// ParseWKT parses one WKT geometry into shapes colored c.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING and POLYGON.
// Points become single pixels, linestrings become lines and every polygon
// ring becomes a closed polygon outline.
func ParseWKT(wkt string, c geom.Color) ([]scene.Shape, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var shapes []scene.Shape
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		b, err := body(s, "(", ")", "multipoint")
		if err != nil {
			return nil, err
		}
		shapes = pointShapes(parseTuples(b), c)
	case strings.HasPrefix(up, "POINT"):
		b, err := body(s, "(", ")", "point")
		if err != nil {
			return nil, err
		}
		shapes = pointShapes(parseTuples(b), c)
	case strings.HasPrefix(up, "MULTILINESTRING"):
		b, err := body(s, "((", "))", "multilinestring")
		if err != nil {
			return nil, err
		}
		for _, part := range splitRings(b) {
			if pts := parseTuples(part); len(pts) > 0 {
				shapes = append(shapes, pathShapes(pts, c)...)
			}
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body(s, "(", ")", "linestring")
		if err != nil {
			return nil, err
		}
		if pts := parseTuples(b); len(pts) > 0 {
			shapes = pathShapes(pts, c)
		}
	case strings.HasPrefix(up, "POLYGON"):
		b, err := body(s, "((", "))", "polygon")
		if err != nil {
			return nil, err
		}
		for _, ring := range splitRings(b) {
			if pts := parseTuples(ring); len(pts) > 0 {
				shapes = append(shapes, ringShapes(pts, c)...)
			}
		}
	default:
		return nil, errors.New("unsupported wkt type")
	}
	if len(shapes) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return shapes, nil
}

// splitRings splits "a, b), (c, d" into its rings.
func splitRings(s string) []string {
	var rings []string
	for _, part := range strings.Split(s, ")") {
		part = strings.TrimLeft(part, " \t\r\n,(")
		if strings.TrimSpace(part) != "" {
			rings = append(rings, part)
		}
	}
	return rings
}

// ParseWKTLines parses one geometry per non-empty line, skipping lines that
// start with '#'.
func ParseWKTLines(text string, c geom.Color) ([]scene.Shape, error) {
	var shapes []scene.Shape
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		got, err := ParseWKT(line, c)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		shapes = append(shapes, got...)
	}
	if len(shapes) == 0 {
		return nil, errors.New("wkt: no geometries found")
	}
	return shapes, nil
}
