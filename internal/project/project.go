// Package project maps 3D wireframe models onto the 2D grid.
package project

import (
	"fmt"
	"math"
	"strings"

	"rasterlab/internal/geom"
	"rasterlab/internal/raster"
)

// Model is a wireframe: vertices plus edges given as vertex index pairs.
type Model struct {
	Vertices []geom.Point3
	Edges    [][2]int
}

// Cube returns the axis-aligned cube with corners at ±half.
func Cube(half float64) Model {
	h := half
	return Model{
		Vertices: []geom.Point3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Kind selects a projection.
type Kind int

const (
	Orthographic Kind = iota
	Perspective
	Cavalier
	Cabinet
)

var kindNames = [...]string{"orthographic", "perspective", "cavalier", "cabinet"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every projection in declaration order.
func Kinds() []Kind { return []Kind{Orthographic, Perspective, Cavalier, Cabinet} }

// ParseKind accepts a projection name, case-insensitively. "orthogonal" is
// accepted as an alias of orthographic.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "orthogonal" {
		return Orthographic, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, geom.Invalid("projection", "unknown kind %q", s)
}

// Projector holds the projection parameters.
type Projector struct {
	// Distance is the viewer distance d in x·d/(z+d).
	Distance float64
	// Angle is the oblique receding angle in degrees.
	Angle float64
}

// Default returns distance 30 and a 45 degree oblique angle.
func Default() Projector { return Projector{Distance: 30, Angle: 45} }

func round(v float64) int { return int(math.Round(v)) }

// Project maps every vertex of m to the grid.
func (pr Projector) Project(m Model, kind Kind) ([]geom.Point, error) {
	out := make([]geom.Point, len(m.Vertices))
	sin, cos := math.Sincos(pr.Angle * math.Pi / 180)
	for i, v := range m.Vertices {
		var x, y float64
		switch kind {
		case Orthographic:
			x, y = v.X, v.Y
		case Perspective:
			den := v.Z + pr.Distance
			if den == 0 {
				return nil, geom.Invalid("perspective", "vertex %d lies in the eye plane", i)
			}
			x, y = v.X*pr.Distance/den, v.Y*pr.Distance/den
		case Cavalier:
			x, y = v.X+v.Z*cos, v.Y+v.Z*sin
		case Cabinet:
			x, y = v.X+0.5*v.Z*cos, v.Y+0.5*v.Z*sin
		default:
			return nil, geom.Invalid("projection", "unknown kind %v", kind)
		}
		out[i] = geom.Point{X: round(x), Y: round(y)}
	}
	return out, nil
}

// Draw projects m and rasterizes each edge as a line. Nothing is drawn when
// the projection fails or an edge refers to a missing vertex.
func (pr Projector) Draw(sink raster.PixelSink, m Model, kind Kind, c geom.Color) error {
	for i, e := range m.Edges {
		if e[0] < 0 || e[0] >= len(m.Vertices) || e[1] < 0 || e[1] >= len(m.Vertices) {
			return geom.Invalid("projection", "edge %d references vertex outside 0..%d", i, len(m.Vertices)-1)
		}
	}
	pts, err := pr.Project(m, kind)
	if err != nil {
		return err
	}
	for _, e := range m.Edges {
		raster.Line(sink, pts[e[0]], pts[e[1]], c)
	}
	return nil
}
