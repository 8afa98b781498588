// Package sceneio reads shapes from WKT text, GeoJSON, KML and CSV files and
// reads and writes whole scenes as YAML documents. Real coordinates are
// rounded to the nearest grid cell.
package sceneio

import (
	"math"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

func roundPt(x, y float64) geom.Point {
	return geom.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// pointShapes turns each point into a one-pixel line.
func pointShapes(pts []geom.Point, c geom.Color) []scene.Shape {
	out := make([]scene.Shape, 0, len(pts))
	for _, p := range pts {
		out = append(out, scene.Line{P1: p, P2: p, Color: c})
	}
	return out
}

// pathShapes joins consecutive points with lines.
func pathShapes(pts []geom.Point, c geom.Color) []scene.Shape {
	if len(pts) == 1 {
		return pointShapes(pts, c)
	}
	out := make([]scene.Shape, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		out = append(out, scene.Line{P1: pts[i], P2: pts[i+1], Color: c})
	}
	return out
}

// ringShapes drops an explicit closing vertex and returns a polygon, or a
// path when fewer than three vertices remain.
func ringShapes(pts []geom.Point, c geom.Color) []scene.Shape {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return pathShapes(pts, c)
	}
	return []scene.Shape{scene.Polygon{Vertices: geom.Polygon(pts).Clone(), Color: c}}
}
