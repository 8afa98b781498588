package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rasterlab/internal/geom"
)

var square = geom.Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

func TestTranslate(t *testing.T) {
	got := Translate(square, 2, -3)
	assert.Equal(t, geom.Polygon{{2, -3}, {6, -3}, {6, 1}, {2, 1}}, got)
	assert.Equal(t, geom.Pt(0, 0), square[0], "input untouched")
}

func TestScaleAboutFixedPoint(t *testing.T) {
	got := Scale(square, 2, 0.5, geom.Pt(2, 2))
	assert.Equal(t, geom.Polygon{{-2, 1}, {6, 1}, {6, 3}, {-2, 3}}, got)
}

func TestScaleRoundTrip(t *testing.T) {
	poly := geom.Polygon{{-7, 3}, {5, 11}, {13, -4}, {0, 0}, {1, 9}}
	fixed := geom.Pt(2, -1)
	for _, s := range []float64{2, 3, 0.5, 0.3, -1.5, 7} {
		back := Scale(Scale(poly, s, s, fixed), 1/s, 1/s, fixed)
		for i := range poly {
			assert.LessOrEqual(t, abs(back[i].X-poly[i].X), 1, "s=%v vertex %d", s, i)
			assert.LessOrEqual(t, abs(back[i].Y-poly[i].Y), 1, "s=%v vertex %d", s, i)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRotate(t *testing.T) {
	got := Rotate(geom.Polygon{{5, 0}}, 90, geom.Pt(0, 0))
	assert.Equal(t, geom.Polygon{{0, 5}}, got)

	got = Rotate(geom.Polygon{{3, 1}}, 180, geom.Pt(1, 1))
	assert.Equal(t, geom.Polygon{{-1, 1}}, got)

	got = Rotate(square, 0, geom.Pt(9, 9))
	assert.Equal(t, square, got)
}

func TestApplyOrder(t *testing.T) {
	// (1,0) -> scale 2 -> (2,0) -> rotate 90 -> (0,2) -> translate (1,1) -> (1,3)
	p := Params{Sx: 2, Sy: 2, Degrees: 90, Tx: 1, Ty: 1}
	assert.Equal(t, geom.Polygon{{1, 3}}, Apply(geom.Polygon{{1, 0}}, p))

	// translate, rotate, scale lands on (-2,4) instead
	other := Scale(Rotate(Translate(geom.Polygon{{1, 0}}, 1, 1), 90, geom.Pt(0, 0)), 2, 2, geom.Pt(0, 0))
	assert.NotEqual(t, Apply(geom.Polygon{{1, 0}}, p), other)
}

func TestIdentity(t *testing.T) {
	id := Identity()
	assert.True(t, id.IsIdentity())
	assert.Equal(t, square, Apply(square, id))
	assert.False(t, Params{Sx: 1, Sy: 1, Tx: 1}.IsIdentity())
}
