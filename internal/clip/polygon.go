package clip

import (
	"math"

	"rasterlab/internal/geom"
)

// cross returns (b-a) x (p-a).
func cross(a, b, p geom.Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// intersect returns where line s-e meets the line through a-b, rounded to
// the grid. ok is false for parallel lines.
func intersect(s, e, a, b geom.Point) (geom.Point, bool) {
	den := (b.Y-a.Y)*(e.X-s.X) - (b.X-a.X)*(e.Y-s.Y)
	if den == 0 {
		return geom.Point{}, false
	}
	ua := float64((b.X-a.X)*(s.Y-a.Y)-(b.Y-a.Y)*(s.X-a.X)) / float64(den)
	return geom.Point{
		X: int(math.Round(float64(s.X) + ua*float64(e.X-s.X))),
		Y: int(math.Round(float64(s.Y) + ua*float64(e.Y-s.Y))),
	}, true
}

// clipEdge keeps the part of subject on the inside of the directed edge
// a->b, where inside means cross(a, b, v) <= 0.
func clipEdge(subject geom.Polygon, a, b geom.Point) geom.Polygon {
	if len(subject) == 0 {
		return nil
	}
	out := make(geom.Polygon, 0, len(subject)+2)
	s := subject[len(subject)-1]
	sIn := cross(a, b, s) <= 0
	for _, e := range subject {
		eIn := cross(a, b, e) <= 0
		switch {
		case sIn && eIn:
			out = append(out, e)
		case sIn && !eIn:
			if p, ok := intersect(s, e, a, b); ok {
				out = append(out, p)
			}
		case !sIn && eIn:
			if p, ok := intersect(s, e, a, b); ok {
				out = append(out, p)
			}
			out = append(out, e)
		}
		s, sIn = e, eIn
	}
	return out
}

// PolygonAgainst clips subject against the convex polygon clipWin with the
// Sutherland-Hodgman algorithm. clipWin must be clockwise (y up); the
// opposite winding keeps the outside instead. The result may be empty, and
// parallel edge pairs contribute no intersection point.
func PolygonAgainst(subject, clipWin geom.Polygon) geom.Polygon {
	out := subject.Clone()
	for i := range clipWin {
		a := clipWin[i]
		b := clipWin[(i+1)%len(clipWin)]
		out = clipEdge(out, a, b)
		if len(out) == 0 {
			return geom.Polygon{}
		}
	}
	return out
}

// Polygon clips subject to w.
func Polygon(subject geom.Polygon, w geom.Window) geom.Polygon {
	return PolygonAgainst(subject, w.Corners())
}
