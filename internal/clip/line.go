// Package clip cuts segments and polygons down to the part inside an
// axis-aligned window. The window must satisfy Window.Valid; callers check
// that before clipping.
package clip

import (
	"math"

	"rasterlab/internal/geom"
)

// Outcode bits, one per window half-plane.
const (
	Inside = 0
	Left   = 1
	Right  = 2
	Bottom = 4
	Top    = 8
)

// Code classifies p against w.
func Code(p geom.Point, w geom.Window) int {
	code := Inside
	if p.X < w.XMin {
		code |= Left
	} else if p.X > w.XMax {
		code |= Right
	}
	if p.Y < w.YMin {
		code |= Bottom
	} else if p.Y > w.YMax {
		code |= Top
	}
	return code
}

// maxLineSteps bounds the Cohen-Sutherland loop. Each step moves one
// endpoint onto a window edge, so two per endpoint always suffice; the
// spare steps cover rounding of the intersection.
const maxLineSteps = 8

// Line clips seg to w with the Cohen-Sutherland algorithm. ok is false when
// no part of the segment lies inside w; a segment that collapses to a single
// inside point is still returned with ok set.
func Line(seg geom.Segment, w geom.Window) (clipped geom.Segment, ok bool) {
	x1, y1 := float64(seg.P1.X), float64(seg.P1.Y)
	x2, y2 := float64(seg.P2.X), float64(seg.P2.Y)
	p1, p2 := seg.P1, seg.P2
	c1, c2 := Code(p1, w), Code(p2, w)
	xmin, ymin := float64(w.XMin), float64(w.YMin)
	xmax, ymax := float64(w.XMax), float64(w.YMax)

	for range maxLineSteps {
		if c1|c2 == Inside {
			return geom.Segment{P1: p1, P2: p2}, true
		}
		if c1&c2 != 0 {
			return geom.Segment{}, false
		}
		out := c1
		if out == Inside {
			out = c2
		}
		var x, y float64
		switch {
		case out&Top != 0:
			x = x1 + (x2-x1)*(ymax-y1)/(y2-y1)
			y = ymax
		case out&Bottom != 0:
			x = x1 + (x2-x1)*(ymin-y1)/(y2-y1)
			y = ymin
		case out&Right != 0:
			y = y1 + (y2-y1)*(xmax-x1)/(x2-x1)
			x = xmax
		default:
			y = y1 + (y2-y1)*(xmin-x1)/(x2-x1)
			x = xmin
		}
		p := geom.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
		if out == c1 {
			p1, c1 = p, Code(p, w)
			x1, y1 = float64(p.X), float64(p.Y)
		} else {
			p2, c2 = p, Code(p, w)
			x2, y2 = float64(p.X), float64(p.Y)
		}
	}
	return geom.Segment{}, false
}
