package raster

import (
	"math"

	"golang.org/x/image/math/f32"

	"rasterlab/internal/geom"
)

// DefaultCurveSamples is the fixed flattening resolution used by Bezier.
const DefaultCurveSamples = 100

// maxSubdivision bounds the adaptive flattener at 2^16 segments.
const maxSubdivision = 16

func checkControl(op string, ctrl []geom.Point) error {
	if len(ctrl) != 4 {
		return geom.Invalid(op, "need exactly 4 control points, got %d", len(ctrl))
	}
	return nil
}

func round(v float64) int { return int(math.Round(v)) }

// FlattenCubic samples the cubic Bezier curve at samples+1 evenly spaced
// parameter values and returns the grid points in parameter order, with
// consecutive duplicates removed.
func FlattenCubic(ctrl []geom.Point, samples int) ([]geom.Point, error) {
	if err := checkControl("bezier", ctrl); err != nil {
		return nil, err
	}
	if samples < 1 {
		return nil, geom.Invalid("bezier", "samples must be positive, got %d", samples)
	}
	p0, p1, p2, p3 := ctrl[0], ctrl[1], ctrl[2], ctrl[3]
	pts := []geom.Point{p0}
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		u := 1 - t
		b0, b1, b2, b3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		x := b0*float64(p0.X) + b1*float64(p1.X) + b2*float64(p2.X) + b3*float64(p3.X)
		y := b0*float64(p0.Y) + b1*float64(p1.Y) + b2*float64(p2.Y) + b3*float64(p3.Y)
		q := geom.Point{X: round(x), Y: round(y)}
		if q != pts[len(pts)-1] {
			pts = append(pts, q)
		}
	}
	return pts, nil
}

// FlattenCubicAdaptive subdivides the curve at t=0.5 until both inner
// control points lie within tolerance grid units of the chord. Points come
// back in parameter order, so drawing lines between them leaves no gaps.
func FlattenCubicAdaptive(ctrl []geom.Point, tolerance float64) ([]geom.Point, error) {
	if err := checkControl("bezier", ctrl); err != nil {
		return nil, err
	}
	if !(tolerance > 0) {
		return nil, geom.Invalid("bezier", "tolerance must be positive, got %g", tolerance)
	}
	toVec := func(p geom.Point) f32.Vec2 { return f32.Vec2{float32(p.X), float32(p.Y)} }
	tol2 := float32(tolerance * tolerance)
	pts := []geom.Point{ctrl[0]}

	var sub func(a, b, c, d f32.Vec2, depth int)
	sub = func(a, b, c, d f32.Vec2, depth int) {
		if depth >= maxSubdivision || (chordDevSquared(a, d, b) <= tol2 && chordDevSquared(a, d, c) <= tol2) {
			q := geom.Point{X: round(float64(d[0])), Y: round(float64(d[1]))}
			if q != pts[len(pts)-1] {
				pts = append(pts, q)
			}
			return
		}
		ab, bc, cd := midPoint(a, b), midPoint(b, c), midPoint(c, d)
		abc, bcd := midPoint(ab, bc), midPoint(bc, cd)
		m := midPoint(abc, bcd)
		sub(a, ab, abc, m, depth+1)
		sub(m, bcd, cd, d, depth+1)
	}
	sub(toVec(ctrl[0]), toVec(ctrl[1]), toVec(ctrl[2]), toVec(ctrl[3]), 0)
	return pts, nil
}

func midPoint(p, q f32.Vec2) f32.Vec2 {
	return f32.Vec2{(p[0] + q[0]) * 0.5, (p[1] + q[1]) * 0.5}
}

// chordDevSquared returns the squared distance of p from the segment a-d.
func chordDevSquared(a, d, p f32.Vec2) float32 {
	vx, vy := d[0]-a[0], d[1]-a[1]
	wx, wy := p[0]-a[0], p[1]-a[1]
	l2 := vx*vx + vy*vy
	if l2 > 0 {
		t := (wx*vx + wy*vy) / l2
		t = max(0, min(1, t))
		wx -= t * vx
		wy -= t * vy
	}
	return wx*wx + wy*wy
}

// Bezier rasterizes a cubic Bezier curve by fixed-step flattening with
// DefaultCurveSamples steps.
func Bezier(sink PixelSink, ctrl []geom.Point, c geom.Color) error {
	return BezierSamples(sink, ctrl, DefaultCurveSamples, c)
}

// BezierSamples is Bezier with an explicit sample count.
func BezierSamples(sink PixelSink, ctrl []geom.Point, samples int, c geom.Color) error {
	pts, err := FlattenCubic(ctrl, samples)
	if err != nil {
		return err
	}
	drawFlattened(sink, pts, c)
	return nil
}

// BezierAdaptive rasterizes a cubic Bezier curve flattened to tolerance.
func BezierAdaptive(sink PixelSink, ctrl []geom.Point, tolerance float64, c geom.Color) error {
	pts, err := FlattenCubicAdaptive(ctrl, tolerance)
	if err != nil {
		return err
	}
	drawFlattened(sink, pts, c)
	return nil
}

func drawFlattened(sink PixelSink, pts []geom.Point, c geom.Color) {
	if len(pts) == 1 {
		sink.SetPixel(pts[0].X, pts[0].Y, c)
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		Line(sink, pts[i], pts[i+1], c)
	}
}
