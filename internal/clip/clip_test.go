package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasterlab/internal/geom"
)

var win = geom.Window{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

func seg(x1, y1, x2, y2 int) geom.Segment {
	return geom.Segment{P1: geom.Pt(x1, y1), P2: geom.Pt(x2, y2)}
}

func TestCode(t *testing.T) {
	assert.Equal(t, Inside, Code(geom.Pt(5, 5), win))
	assert.Equal(t, Inside, Code(geom.Pt(0, 10), win))
	assert.Equal(t, Left|Bottom, Code(geom.Pt(-1, -1), win))
	assert.Equal(t, Right|Top, Code(geom.Pt(11, 11), win))
	assert.Equal(t, Top, Code(geom.Pt(5, 11), win))
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   geom.Segment
		want geom.Segment
		ok   bool
	}{
		{"same side reject", seg(-5, -5, -1, -1), geom.Segment{}, false},
		{"diagonal entry", seg(-5, -5, 5, 5), seg(0, 0, 5, 5), true},
		{"inside", seg(1, 2, 8, 9), seg(1, 2, 8, 9), true},
		{"through", seg(-5, 5, 15, 5), seg(0, 5, 10, 5), true},
		{"vertical through", seg(3, -4, 3, 14), seg(3, 0, 3, 10), true},
		{"reversed", seg(5, 5, -5, -5), seg(5, 5, 0, 0), true},
		{"miss past corner", seg(-5, 8, 8, 20), geom.Segment{}, false},
		{"above", seg(-3, 12, 14, 15), geom.Segment{}, false},
		{"touch corner", seg(-2, 12, 2, 8), seg(0, 10, 2, 8), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Line(tc.in, win)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineZeroLengthIsNotRejection(t *testing.T) {
	got, ok := Line(seg(3, 3, 3, 3), win)
	require.True(t, ok)
	assert.True(t, got.Degenerate())

	_, ok = Line(seg(30, 3, 30, 3), win)
	assert.False(t, ok)
}

func TestLineResultInsideWindow(t *testing.T) {
	for x1 := -12; x1 <= 22; x1 += 5 {
		for y1 := -12; y1 <= 22; y1 += 7 {
			for x2 := -9; x2 <= 19; x2 += 4 {
				for y2 := -9; y2 <= 19; y2 += 6 {
					got, ok := Line(seg(x1, y1, x2, y2), win)
					if !ok {
						continue
					}
					assert.True(t, win.Contains(got.P1), "%v", got)
					assert.True(t, win.Contains(got.P2), "%v", got)
				}
			}
		}
	}
}

func TestPolygonInsideUnchanged(t *testing.T) {
	tri := geom.Polygon{{2, 2}, {8, 2}, {5, 8}}
	assert.ElementsMatch(t, tri, Polygon(tri, win))
}

func TestPolygonOutside(t *testing.T) {
	got := Polygon(geom.Polygon{{20, 20}, {30, 20}, {25, 30}}, win)
	assert.Empty(t, got)
}

func TestPolygonPartial(t *testing.T) {
	got := Polygon(geom.Polygon{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}, win)
	assert.ElementsMatch(t, geom.Polygon{{0, 0}, {5, 0}, {5, 5}, {0, 5}}, got)

	diamond := geom.Polygon{{5, -4}, {14, 5}, {5, 14}, {-4, 5}}
	got = Polygon(diamond, win)
	assert.ElementsMatch(t, geom.Polygon{{0, 1}, {1, 0}, {9, 0}, {10, 1}, {10, 9}, {9, 10}, {1, 10}, {0, 9}}, got)
	for _, p := range got {
		assert.True(t, win.Contains(p))
	}
}

func TestPolygonWrongWindingInverts(t *testing.T) {
	tri := geom.Polygon{{2, 2}, {8, 2}, {5, 8}}
	ccw := geom.Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Empty(t, PolygonAgainst(tri, ccw))
}

func TestPolygonDoesNotAliasInput(t *testing.T) {
	tri := geom.Polygon{{2, 2}, {8, 2}, {5, 8}}
	got := Polygon(tri, win)
	got[0] = geom.Pt(-1, -1)
	assert.Equal(t, geom.Pt(2, 2), tri[0])
}
