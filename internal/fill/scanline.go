// Package fill computes polygon interiors with an even-odd scanline pass
// and grows seeded regions over a logical color grid.
//
// Both fills are exposed as lazy sequences so a scheduler outside this
// package can consume them at its own pace and stop between steps.
package fill

import (
	"iter"
	"math"
	"slices"

	"rasterlab/internal/geom"
	"rasterlab/internal/raster"
)

// Span is a horizontal run of interior pixels covering [X0, X1) on row Y.
type Span struct {
	Y  int
	X0 int
	X1 int
}

func checkPolygon(poly geom.Polygon) error {
	if len(poly) < 3 {
		return geom.Invalid("scanline fill", "need at least 3 vertices, got %d", len(poly))
	}
	return nil
}

// crossings returns the sorted x positions where the edges of poly cross
// row y. An edge counts when y lies in its half-open span [ymin, ymax), so
// horizontal edges never count and shared vertices count once.
func crossings(poly geom.Polygon, y int, xs []float64) []float64 {
	xs = xs[:0]
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
			x := float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y) + float64(a.X)
			xs = append(xs, x)
		}
	}
	slices.Sort(xs)
	return xs
}

// rowSpans appends the spans of row y to dst.
func rowSpans(dst []Span, poly geom.Polygon, y int, xs []float64) ([]Span, []float64) {
	xs = crossings(poly, y, xs)
	for i := 0; i+1 < len(xs); i += 2 {
		x0 := int(math.Ceil(xs[i]))
		// [ceil(a), b): the last column is the largest integer below b
		x1 := int(math.Ceil(xs[i+1]))
		if x1 > x0 {
			dst = append(dst, Span{Y: y, X0: x0, X1: x1})
		}
	}
	return dst, xs
}

// Rows returns the interior spans of poly grouped by scanline, from the
// lowest to the highest vertex row. Rows without interior pixels are still
// produced, as empty slices, so one step always means one scanline.
// Ranging over the sequence again starts again from the first row.
func Rows(poly geom.Polygon) (iter.Seq[[]Span], error) {
	if err := checkPolygon(poly); err != nil {
		return nil, err
	}
	poly = poly.Clone()
	bounds, _ := poly.Bounds()
	return func(yield func([]Span) bool) {
		var xs []float64
		for y := bounds.YMin; y <= bounds.YMax; y++ {
			var row []Span
			row, xs = rowSpans(nil, poly, y, xs)
			if !yield(row) {
				return
			}
		}
	}, nil
}

// Scanline returns the interior spans of poly under the even-odd rule.
func Scanline(poly geom.Polygon) (iter.Seq[Span], error) {
	rows, err := Rows(poly)
	if err != nil {
		return nil, err
	}
	return func(yield func(Span) bool) {
		for row := range rows {
			for _, s := range row {
				if !yield(s) {
					return
				}
			}
		}
	}, nil
}

// Emit writes the pixels of s to sink from left to right.
func (s Span) Emit(sink raster.PixelSink, c geom.Color) {
	for x := s.X0; x < s.X1; x++ {
		sink.SetPixel(x, s.Y, c)
	}
}

// Len is the number of pixels in the span.
func (s Span) Len() int { return s.X1 - s.X0 }

// ScanlineFill emits every interior pixel of poly to sink.
func ScanlineFill(sink raster.PixelSink, poly geom.Polygon, c geom.Color) error {
	spans, err := Scanline(poly)
	if err != nil {
		return err
	}
	for s := range spans {
		s.Emit(sink, c)
	}
	return nil
}
