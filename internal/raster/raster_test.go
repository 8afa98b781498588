package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasterlab/internal/geom"
)

func keys(s *PixelSet) map[geom.Point]bool {
	out := make(map[geom.Point]bool, len(s.Pixels))
	for p := range s.Pixels {
		out[p] = true
	}
	return out
}

// connected reports whether the pixels form one 8-connected component.
func connected(s map[geom.Point]bool) bool {
	if len(s) == 0 {
		return true
	}
	var start geom.Point
	for p := range s {
		start = p
		break
	}
	seen := map[geom.Point]bool{start: true}
	stack := []geom.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				q := geom.Pt(p.X+dx, p.Y+dy)
				if s[q] && !seen[q] {
					seen[q] = true
					stack = append(stack, q)
				}
			}
		}
	}
	return len(seen) == len(s)
}

func TestLineSymmetric(t *testing.T) {
	for x1 := -4; x1 <= 4; x1++ {
		for y1 := -4; y1 <= 4; y1 += 2 {
			for x2 := -5; x2 <= 5; x2 += 3 {
				for y2 := -5; y2 <= 5; y2++ {
					p1, p2 := geom.Pt(x1, y1), geom.Pt(x2, y2)
					a, b := NewPixelSet(), NewPixelSet()
					Line(a, p1, p2, "red")
					Line(b, p2, p1, "red")
					require.Equal(t, keys(a), keys(b), "%v-%v", p1, p2)
				}
			}
		}
	}
}

func TestLineTieBreak(t *testing.T) {
	a, b := NewPixelSet(), NewPixelSet()
	Line(a, geom.Pt(0, 0), geom.Pt(2, 1), "red")
	Line(b, geom.Pt(2, 1), geom.Pt(0, 0), "red")
	assert.Equal(t, keys(a), keys(b))
	assert.Equal(t, []geom.Point{{2, 1}, {1, 1}, {0, 0}}, b.Trace)
}

func TestLineShape(t *testing.T) {
	tests := []struct {
		p1, p2 geom.Point
	}{
		{geom.Pt(0, 0), geom.Pt(7, 3)},
		{geom.Pt(3, -2), geom.Pt(-4, 6)},
		{geom.Pt(0, 0), geom.Pt(0, -5)},
		{geom.Pt(-3, 1), geom.Pt(5, 1)},
		{geom.Pt(2, 2), geom.Pt(-2, -2)},
	}
	for _, tc := range tests {
		s := NewPixelSet()
		Line(s, tc.p1, tc.p2, "blue")
		dx, dy := abs(tc.p2.X-tc.p1.X), abs(tc.p2.Y-tc.p1.Y)
		assert.Len(t, s.Trace, max(dx, dy)+1, "%v-%v", tc.p1, tc.p2)
		assert.Equal(t, tc.p1, s.Trace[0])
		assert.Equal(t, tc.p2, s.Trace[len(s.Trace)-1])
		assert.True(t, connected(keys(s)))
	}
}

func TestLineDegenerate(t *testing.T) {
	s := NewPixelSet()
	Line(s, geom.Pt(3, 4), geom.Pt(3, 4), "red")
	assert.Equal(t, []geom.Point{{3, 4}}, s.Trace)
	assert.Equal(t, geom.Color("red"), s.Pixels[geom.Pt(3, 4)])
}

func TestLinePointsMatchesLine(t *testing.T) {
	s := NewPixelSet()
	Line(s, geom.Pt(5, 1), geom.Pt(-2, 4), "red")
	assert.Equal(t, s.Trace, LinePoints(geom.Pt(5, 1), geom.Pt(-2, 4)))
}

func TestCircleSymmetry(t *testing.T) {
	center := geom.Pt(2, -3)
	for r := 0; r <= 12; r++ {
		s := NewPixelSet()
		require.NoError(t, Circle(s, center, r, "red"))
		set := keys(s)
		for p := range set {
			x, y := p.X-center.X, p.Y-center.Y
			for _, q := range [][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
				assert.True(t, set[geom.Pt(center.X+q[0], center.Y+q[1])], "r=%d missing reflection of %v", r, p)
			}
			d := math.Hypot(float64(x), float64(y))
			assert.Less(t, math.Abs(d-float64(r)), 1.0)
		}
		assert.True(t, connected(set), "r=%d", r)
	}
}

func TestCircleZeroAndNegative(t *testing.T) {
	s := NewPixelSet()
	require.NoError(t, Circle(s, geom.Pt(1, 1), 0, "red"))
	assert.Equal(t, []geom.Point{{1, 1}}, s.Trace)

	s = NewPixelSet()
	err := Circle(s, geom.Pt(1, 1), -1, "red")
	var ie *geom.InvalidInputError
	assert.True(t, errors.As(err, &ie))
	assert.Zero(t, s.Len())
}

func TestEllipse(t *testing.T) {
	s := NewPixelSet()
	require.NoError(t, Ellipse(s, geom.Pt(0, 0), 5, 3, "red"))
	want := []geom.Point{
		{-5, -1}, {-5, 0}, {-5, 1}, {-4, -2}, {-4, 2}, {-3, -2}, {-3, 2}, {-2, -3}, {-2, 3}, {-1, -3}, {-1, 3}, {0, -3},
		{0, 3}, {1, -3}, {1, 3}, {2, -3}, {2, 3}, {3, -2}, {3, 2}, {4, -2}, {4, 2}, {5, -1}, {5, 0}, {5, 1},
	}
	got := keys(s)
	assert.Len(t, got, len(want))
	for _, p := range want {
		assert.True(t, got[p], "missing %v", p)
	}
}

func TestEllipseShape(t *testing.T) {
	for _, r := range [][2]int{{8, 4}, {3, 7}, {10, 10}, {20, 2}, {2, 20}} {
		s := NewPixelSet()
		require.NoError(t, Ellipse(s, geom.Pt(1, 2), r[0], r[1], "red"))
		set := keys(s)
		assert.True(t, connected(set), "%v", r)
		assert.True(t, set[geom.Pt(1+r[0], 2)])
		assert.True(t, set[geom.Pt(1-r[0], 2)])
		assert.True(t, set[geom.Pt(1, 2+r[1])])
		assert.True(t, set[geom.Pt(1, 2-r[1])])
		for p := range set {
			x, y := float64(p.X-1)/float64(r[0]), float64(p.Y-2)/float64(r[1])
			assert.Less(t, math.Abs(x*x+y*y-1), 0.5, "%v %v", r, p)
		}
	}
}

func TestEllipseDegenerate(t *testing.T) {
	s := NewPixelSet()
	require.NoError(t, Ellipse(s, geom.Pt(0, 0), 0, 3, "red"))
	assert.Equal(t, 7, s.Len())
	assert.True(t, s.Has(0, -3) && s.Has(0, 3))

	s = NewPixelSet()
	require.NoError(t, Ellipse(s, geom.Pt(0, 0), 4, 0, "red"))
	assert.Equal(t, 9, s.Len())
	assert.True(t, s.Has(-4, 0) && s.Has(4, 0))

	s = NewPixelSet()
	require.NoError(t, Ellipse(s, geom.Pt(2, 2), 0, 0, "red"))
	assert.Equal(t, []geom.Point{{2, 2}}, s.Trace)

	assert.Error(t, Ellipse(s, geom.Pt(0, 0), -1, 2, "red"))
}

func TestBezierDegenerate(t *testing.T) {
	p := geom.Pt(3, 3)
	s := NewPixelSet()
	require.NoError(t, Bezier(s, []geom.Point{p, p, p, p}, "red"))
	assert.Equal(t, []geom.Point{p}, s.Trace)

	s = NewPixelSet()
	require.NoError(t, BezierAdaptive(s, []geom.Point{p, p, p, p}, 0.5, "red"))
	assert.Equal(t, []geom.Point{p}, s.Trace)
}

func TestBezierArity(t *testing.T) {
	s := NewPixelSet()
	for _, n := range []int{0, 3, 5} {
		err := Bezier(s, make([]geom.Point, n), "red")
		var ie *geom.InvalidInputError
		assert.True(t, errors.As(err, &ie), "n=%d", n)
	}
	assert.Zero(t, s.Len())
	assert.Error(t, BezierSamples(s, make([]geom.Point, 4), 0, "red"))
	assert.Error(t, BezierAdaptive(s, make([]geom.Point, 4), 0, "red"))
}

func TestBezierStraight(t *testing.T) {
	s := NewPixelSet()
	ctrl := []geom.Point{{0, 0}, {3, 0}, {6, 0}, {9, 0}}
	require.NoError(t, Bezier(s, ctrl, "red"))
	assert.Equal(t, 10, s.Len())
	for x := 0; x <= 9; x++ {
		assert.True(t, s.Has(x, 0))
	}
}

func TestBezierNoGaps(t *testing.T) {
	ctrl := []geom.Point{{-10, 0}, {-5, 15}, {12, -14}, {10, 3}}
	for name, draw := range map[string]func(PixelSink) error{
		"fixed":    func(s PixelSink) error { return Bezier(s, ctrl, "red") },
		"coarse":   func(s PixelSink) error { return BezierSamples(s, ctrl, 4, "red") },
		"adaptive": func(s PixelSink) error { return BezierAdaptive(s, ctrl, 0.25, "red") },
	} {
		s := NewPixelSet()
		require.NoError(t, draw(s), name)
		assert.True(t, connected(keys(s)), name)
		assert.Equal(t, ctrl[0], s.Trace[0], name)
		assert.Equal(t, ctrl[3], s.Trace[len(s.Trace)-1], name)
	}
}

func TestFlattenCubicAdaptiveOrder(t *testing.T) {
	ctrl := []geom.Point{{0, 0}, {0, 20}, {20, 20}, {20, 0}}
	pts, err := FlattenCubicAdaptive(ctrl, 0.5)
	require.NoError(t, err)
	// x is non-decreasing along this curve, so parameter order shows up as x order
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].X, pts[i-1].X)
		assert.NotEqual(t, pts[i], pts[i-1])
	}
}

func TestPolyline(t *testing.T) {
	tri := []geom.Point{{0, 0}, {4, 0}, {0, 4}}

	open := NewPixelSet()
	require.NoError(t, Polyline(open, tri, false, "blue"))
	assert.False(t, open.Has(0, 2))

	closed := NewPixelSet()
	require.NoError(t, Polyline(closed, tri, true, "blue"))
	assert.True(t, closed.Has(0, 2))

	two := NewPixelSet()
	require.NoError(t, Polyline(two, tri[:2], true, "blue"))
	assert.Len(t, two.Trace, 5)

	err := Polyline(NewPixelSet(), tri[:1], true, "blue")
	var ie *geom.InvalidInputError
	assert.True(t, errors.As(err, &ie))
}

func TestSinkFunc(t *testing.T) {
	var n int
	Line(SinkFunc(func(x, y int, c geom.Color) { n++ }), geom.Pt(0, 0), geom.Pt(3, 0), "red")
	assert.Equal(t, 4, n)
}
