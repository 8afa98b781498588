// Package transform applies affine maps to polygons.
//
// Every function returns a new polygon and rounds each vertex to the grid
// after its own stage. Rounding is lossy: scaling by s and then by 1/s, or
// rotating by a and then by -a, can land one unit away from the start.
package transform

import (
	"math"

	"rasterlab/internal/geom"
)

func round(v float64) int { return int(math.Round(v)) }

// Translate moves every vertex by (dx, dy).
func Translate(poly geom.Polygon, dx, dy int) geom.Polygon {
	out := make(geom.Polygon, len(poly))
	for i, p := range poly {
		out[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// Scale scales every vertex's offset from fixed by (sx, sy).
func Scale(poly geom.Polygon, sx, sy float64, fixed geom.Point) geom.Polygon {
	out := make(geom.Polygon, len(poly))
	fx, fy := float64(fixed.X), float64(fixed.Y)
	for i, p := range poly {
		out[i] = geom.Point{
			X: round(fx + float64(p.X-fixed.X)*sx),
			Y: round(fy + float64(p.Y-fixed.Y)*sy),
		}
	}
	return out
}

// Rotate turns every vertex counter-clockwise (y up) by degrees around pivot.
func Rotate(poly geom.Polygon, degrees float64, pivot geom.Point) geom.Polygon {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	px, py := float64(pivot.X), float64(pivot.Y)
	out := make(geom.Polygon, len(poly))
	for i, p := range poly {
		dx, dy := float64(p.X-pivot.X), float64(p.Y-pivot.Y)
		out[i] = geom.Point{
			X: round(px + dx*cos - dy*sin),
			Y: round(py + dx*sin + dy*cos),
		}
	}
	return out
}

// Params describes a combined transform. Scaling and rotation share Pivot.
type Params struct {
	Sx      float64
	Sy      float64
	Degrees float64
	Tx      int
	Ty      int
	Pivot   geom.Point
}

// Identity returns parameters that leave a polygon unchanged.
func Identity() Params { return Params{Sx: 1, Sy: 1} }

// IsIdentity reports whether p maps every vertex to itself.
func (p Params) IsIdentity() bool {
	return p.Sx == 1 && p.Sy == 1 && p.Degrees == 0 && p.Tx == 0 && p.Ty == 0
}

// Apply runs scale, then rotate, then translate. The order is fixed.
func Apply(poly geom.Polygon, p Params) geom.Polygon {
	out := Scale(poly, p.Sx, p.Sy, p.Pivot)
	out = Rotate(out, p.Degrees, p.Pivot)
	return Translate(out, p.Tx, p.Ty)
}
