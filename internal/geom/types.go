// Package geom holds the plain geometric values shared by the rasterizer,
// filler, transform, clipper and projector packages.
package geom

import "strconv"

// Point addresses one cell of the integer grid.
type Point struct {
	X int
	Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Point3 is a real-valued vertex of a 3D model.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

type Segment struct {
	P1 Point
	P2 Point
}

// Degenerate reports whether both endpoints are the same cell.
func (s Segment) Degenerate() bool { return s.P1 == s.P2 }

// Polygon is an ordered vertex list. The closing edge (last to first) is
// implied and never stored.
type Polygon []Point

// Clone returns a copy that does not share storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Bounds returns the bounding window of the vertices. ok is false for an
// empty polygon.
func (p Polygon) Bounds() (w Window, ok bool) {
	if len(p) == 0 {
		return Window{}, false
	}
	w = Window{XMin: p[0].X, YMin: p[0].Y, XMax: p[0].X, YMax: p[0].Y}
	for _, v := range p[1:] {
		if v.X < w.XMin {
			w.XMin = v.X
		}
		if v.Y < w.YMin {
			w.YMin = v.Y
		}
		if v.X > w.XMax {
			w.XMax = v.X
		}
		if v.Y > w.YMax {
			w.YMax = v.Y
		}
	}
	return w, true
}

// Equal reports whether p and q have the same vertices in the same order.
func (p Polygon) Equal(q Polygon) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Window is an axis-aligned clip rectangle, bounds inclusive.
type Window struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

func (w Window) Valid() bool { return w.XMin <= w.XMax && w.YMin <= w.YMax }

func (w Window) Contains(p Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// Corners returns the window outline in clockwise order with y pointing up,
// the winding the polygon clipper expects.
func (w Window) Corners() Polygon {
	return Polygon{
		{X: w.XMin, Y: w.YMin},
		{X: w.XMin, Y: w.YMax},
		{X: w.XMax, Y: w.YMax},
		{X: w.XMax, Y: w.YMin},
	}
}

// Color is an opaque color token. The core never interprets it.
type Color string
