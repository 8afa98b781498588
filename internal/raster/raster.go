// Package raster turns lines, circles, ellipses, cubic curves and polygon
// outlines into grid pixels. Every routine validates its input before the
// first pixel is emitted, so a returned error means nothing was drawn.
package raster

import (
	"slices"

	"rasterlab/internal/geom"
)

// PixelSink receives emitted pixels in emission order. Out-of-range
// coordinates are the sink's problem.
type PixelSink interface {
	SetPixel(x, y int, c geom.Color)
}

// SinkFunc adapts a function to PixelSink.
type SinkFunc func(x, y int, c geom.Color)

func (f SinkFunc) SetPixel(x, y int, c geom.Color) { f(x, y, c) }

// PixelSet records emitted pixels. The last color written to a cell wins.
type PixelSet struct {
	Pixels map[geom.Point]geom.Color
	Trace  []geom.Point
}

func NewPixelSet() *PixelSet {
	return &PixelSet{Pixels: make(map[geom.Point]geom.Color)}
}

func (s *PixelSet) SetPixel(x, y int, c geom.Color) {
	p := geom.Point{X: x, Y: y}
	s.Pixels[p] = c
	s.Trace = append(s.Trace, p)
}

// Has reports whether (x, y) was emitted.
func (s *PixelSet) Has(x, y int) bool {
	_, ok := s.Pixels[geom.Point{X: x, Y: y}]
	return ok
}

func (s *PixelSet) Len() int { return len(s.Pixels) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Line rasterizes the segment p1-p2 with Bresenham's algorithm, emitting
// from p1 towards p2. The result is 8-connected and the same pixel set
// regardless of endpoint order. A zero-length segment emits one pixel.
func Line(sink PixelSink, p1, p2 geom.Point, c geom.Color) {
	if !ordered(p1, p2) {
		// Walk the canonical direction so error-term ties break the same
		// way both ways round, then emit back to front.
		pts := LinePoints(p1, p2)
		for _, p := range pts {
			sink.SetPixel(p.X, p.Y, c)
		}
		return
	}
	bresenham(p1, p2, func(x, y int) { sink.SetPixel(x, y, c) })
}

// LinePoints returns the pixels of Line(p1, p2) in emission order.
func LinePoints(p1, p2 geom.Point) []geom.Point {
	n := max(abs(p2.X-p1.X), abs(p2.Y-p1.Y)) + 1
	pts := make([]geom.Point, 0, n)
	if ordered(p1, p2) {
		bresenham(p1, p2, func(x, y int) { pts = append(pts, geom.Point{X: x, Y: y}) })
		return pts
	}
	bresenham(p2, p1, func(x, y int) { pts = append(pts, geom.Point{X: x, Y: y}) })
	slices.Reverse(pts)
	return pts
}

// ordered reports whether p1 precedes p2 by x, then y.
func ordered(p1, p2 geom.Point) bool {
	return p1.X < p2.X || (p1.X == p2.X && p1.Y <= p2.Y)
}

func bresenham(p1, p2 geom.Point, plot func(x, y int)) {
	x0, y0, x1, y1 := p1.X, p1.Y, p2.X, p2.Y
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline connects consecutive points. When closed is set and there are at
// least three points the last point is joined back to the first.
func Polyline(sink PixelSink, pts []geom.Point, closed bool, c geom.Color) error {
	if len(pts) < 2 {
		return geom.Invalid("polyline", "need at least 2 points, got %d", len(pts))
	}
	for i := 0; i+1 < len(pts); i++ {
		Line(sink, pts[i], pts[i+1], c)
	}
	if closed && len(pts) > 2 {
		Line(sink, pts[len(pts)-1], pts[0], c)
	}
	return nil
}
