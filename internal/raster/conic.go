package raster

import "rasterlab/internal/geom"

// Circle rasterizes a circle with the midpoint algorithm, emitting the eight
// octant reflections of every step. Radius 0 emits the center once.
func Circle(sink PixelSink, center geom.Point, r int, c geom.Color) error {
	if r < 0 {
		return geom.Invalid("circle", "negative radius %d", r)
	}
	cx, cy := center.X, center.Y
	if r == 0 {
		sink.SetPixel(cx, cy, c)
		return nil
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		sink.SetPixel(cx+x, cy+y, c)
		sink.SetPixel(cx+y, cy+x, c)
		sink.SetPixel(cx-y, cy+x, c)
		sink.SetPixel(cx-x, cy+y, c)
		sink.SetPixel(cx-x, cy-y, c)
		sink.SetPixel(cx-y, cy-x, c)
		sink.SetPixel(cx+y, cy-x, c)
		sink.SetPixel(cx+x, cy-y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return nil
}

// Ellipse rasterizes an axis-aligned ellipse with the two-region midpoint
// algorithm. Region 1 steps x while the slope magnitude is below 1, region 2
// steps y down to the axis. A zero radius degenerates to a segment along
// the other axis, or to the center when both are zero.
func Ellipse(sink PixelSink, center geom.Point, rx, ry int, c geom.Color) error {
	if rx < 0 || ry < 0 {
		return geom.Invalid("ellipse", "negative radius (%d, %d)", rx, ry)
	}
	cx, cy := center.X, center.Y
	switch {
	case rx == 0 && ry == 0:
		sink.SetPixel(cx, cy, c)
		return nil
	case rx == 0:
		Line(sink, geom.Point{X: cx, Y: cy - ry}, geom.Point{X: cx, Y: cy + ry}, c)
		return nil
	case ry == 0:
		Line(sink, geom.Point{X: cx - rx, Y: cy}, geom.Point{X: cx + rx, Y: cy}, c)
		return nil
	}

	plot4 := func(x, y int) {
		sink.SetPixel(cx+x, cy+y, c)
		sink.SetPixel(cx-x, cy+y, c)
		sink.SetPixel(cx+x, cy-y, c)
		sink.SetPixel(cx-x, cy-y, c)
	}

	rx2 := float64(rx) * float64(rx)
	ry2 := float64(ry) * float64(ry)
	x, y := 0, ry
	dx := 0.0
	dy := 2 * rx2 * float64(y)

	// region 1
	p := ry2 - rx2*float64(ry) + 0.25*rx2
	for dx < dy {
		plot4(x, y)
		x++
		dx += 2 * ry2
		if p < 0 {
			p += dx + ry2
		} else {
			y--
			dy -= 2 * rx2
			p += dx - dy + ry2
		}
	}

	// region 2
	fx, fy := float64(x)+0.5, float64(y-1)
	p = ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y >= 0 {
		plot4(x, y)
		y--
		dy -= 2 * rx2
		if p > 0 {
			p += rx2 - dy
		} else {
			x++
			dx += 2 * ry2
			p += dx - dy + rx2
		}
	}
	return nil
}
