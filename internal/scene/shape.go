// Package scene holds drawable shape values and renders them through the
// rasterizer and filler.
package scene

import (
	"fmt"

	"rasterlab/internal/fill"
	"rasterlab/internal/geom"
	"rasterlab/internal/raster"
)

// Shape is one drawable value. The set of variants is closed: Line, Circle,
// Ellipse, Curve, Polygon and FillRegion.
type Shape interface {
	shape()
}

type Line struct {
	P1    geom.Point
	P2    geom.Point
	Color geom.Color
}

type Circle struct {
	Center geom.Point
	Radius int
	Color  geom.Color
}

type Ellipse struct {
	Center geom.Point
	RX     int
	RY     int
	Color  geom.Color
}

// Curve is a cubic Bezier curve. Build it with NewCurve when the control
// points come from user input.
type Curve struct {
	Ctrl  [4]geom.Point
	Color geom.Color
}

// NewCurve checks that pts holds exactly four control points.
func NewCurve(pts []geom.Point, c geom.Color) (Curve, error) {
	if len(pts) != 4 {
		return Curve{}, geom.Invalid("bezier", "need exactly 4 control points, got %d", len(pts))
	}
	return Curve{Ctrl: [4]geom.Point(pts), Color: c}, nil
}

// Polygon is a closed outline.
type Polygon struct {
	Vertices geom.Polygon
	Color    geom.Color
}

// FillRegion is a scanline-filled polygon with its outline drawn on top.
// An empty Outline skips the outline.
type FillRegion struct {
	Vertices geom.Polygon
	Fill     geom.Color
	Outline  geom.Color
}

func (Line) shape()       {}
func (Circle) shape()     {}
func (Ellipse) shape()    {}
func (Curve) shape()      {}
func (Polygon) shape()    {}
func (FillRegion) shape() {}

// Kind names the variant of s.
func Kind(s Shape) string {
	switch s.(type) {
	case Line:
		return "line"
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Curve:
		return "bezier"
	case Polygon:
		return "polygon"
	case FillRegion:
		return "fill"
	default:
		return "unknown"
	}
}

// Describe returns a short human readable summary of the geometry of s.
func Describe(s Shape) string {
	switch v := s.(type) {
	case Line:
		return v.P1.String() + " " + v.P2.String()
	case Circle:
		return fmt.Sprintf("%v r=%d", v.Center, v.Radius)
	case Ellipse:
		return fmt.Sprintf("%v rx=%d ry=%d", v.Center, v.RX, v.RY)
	case Curve:
		return geom.FormatPoints(v.Ctrl[:])
	case Polygon:
		return geom.FormatPoints(v.Vertices)
	case FillRegion:
		return geom.FormatPoints(v.Vertices)
	default:
		return ""
	}
}

// ColorOf returns the primary color of s.
func ColorOf(s Shape) geom.Color {
	switch v := s.(type) {
	case Line:
		return v.Color
	case Circle:
		return v.Color
	case Ellipse:
		return v.Color
	case Curve:
		return v.Color
	case Polygon:
		return v.Color
	case FillRegion:
		return v.Fill
	default:
		return ""
	}
}

// Options tunes rendering.
type Options struct {
	// Samples is the fixed curve flattening resolution. Zero means
	// raster.DefaultCurveSamples.
	Samples int
	// Flatness, when positive, switches curves to adaptive flattening with
	// this tolerance in grid units.
	Flatness float64
}

// Render draws s into sink. Invalid shapes return an error and draw nothing.
func Render(sink raster.PixelSink, s Shape, opts Options) error {
	switch v := s.(type) {
	case Line:
		raster.Line(sink, v.P1, v.P2, v.Color)
		return nil
	case Circle:
		return raster.Circle(sink, v.Center, v.Radius, v.Color)
	case Ellipse:
		return raster.Ellipse(sink, v.Center, v.RX, v.RY, v.Color)
	case Curve:
		if opts.Flatness > 0 {
			return raster.BezierAdaptive(sink, v.Ctrl[:], opts.Flatness, v.Color)
		}
		samples := opts.Samples
		if samples == 0 {
			samples = raster.DefaultCurveSamples
		}
		return raster.BezierSamples(sink, v.Ctrl[:], samples, v.Color)
	case Polygon:
		return raster.Polyline(sink, v.Vertices, true, v.Color)
	case FillRegion:
		if err := fill.ScanlineFill(sink, v.Vertices, v.Fill); err != nil {
			return err
		}
		if v.Outline == "" {
			return nil
		}
		return raster.Polyline(sink, v.Vertices, true, v.Outline)
	case nil:
		return fmt.Errorf("render: nil shape")
	default:
		return fmt.Errorf("render: unsupported shape %T", s)
	}
}
