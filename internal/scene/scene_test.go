package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasterlab/internal/geom"
	"rasterlab/internal/raster"
)

func TestKind(t *testing.T) {
	tests := []struct {
		s    Shape
		want string
	}{
		{Line{}, "line"},
		{Circle{}, "circle"},
		{Ellipse{}, "ellipse"},
		{Curve{}, "bezier"},
		{Polygon{}, "polygon"},
		{FillRegion{}, "fill"},
		{nil, "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Kind(tc.s))
	}
}

func TestNewCurve(t *testing.T) {
	_, err := NewCurve([]geom.Point{{0, 0}, {1, 1}, {2, 2}}, "red")
	var ie *geom.InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "bezier", ie.Op)

	c, err := NewCurve([]geom.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, "red")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, 3), c.Ctrl[3])
}

func TestRenderMatchesRasterizer(t *testing.T) {
	direct := raster.NewPixelSet()
	require.NoError(t, raster.Circle(direct, geom.Pt(1, 2), 6, "green"))

	viaScene := raster.NewPixelSet()
	require.NoError(t, Render(viaScene, Circle{Center: geom.Pt(1, 2), Radius: 6, Color: "green"}, Options{}))
	assert.Equal(t, direct.Trace, viaScene.Trace)
}

func TestRenderCurveOptions(t *testing.T) {
	ctrl := [4]geom.Point{{-10, 0}, {-5, 12}, {5, -12}, {10, 0}}
	fixed := raster.NewPixelSet()
	require.NoError(t, raster.Bezier(fixed, ctrl[:], "red"))
	got := raster.NewPixelSet()
	require.NoError(t, Render(got, Curve{Ctrl: ctrl, Color: "red"}, Options{}))
	assert.Equal(t, fixed.Pixels, got.Pixels)

	adaptive := raster.NewPixelSet()
	require.NoError(t, Render(adaptive, Curve{Ctrl: ctrl, Color: "red"}, Options{Flatness: 0.25}))
	assert.True(t, adaptive.Has(-10, 0))
	assert.True(t, adaptive.Has(10, 0))
}

func TestRenderFillRegionOutlineOnTop(t *testing.T) {
	s := raster.NewPixelSet()
	tri := geom.Polygon{{0, 0}, {4, 0}, {0, 4}}
	require.NoError(t, Render(s, FillRegion{Vertices: tri, Fill: "purple", Outline: "blue"}, Options{}))
	assert.Equal(t, geom.Color("blue"), s.Pixels[geom.Pt(0, 0)])
	assert.Equal(t, geom.Color("blue"), s.Pixels[geom.Pt(2, 2)])
	assert.Equal(t, geom.Color("purple"), s.Pixels[geom.Pt(1, 1)])

	noOutline := raster.NewPixelSet()
	require.NoError(t, Render(noOutline, FillRegion{Vertices: tri, Fill: "purple"}, Options{}))
	assert.Equal(t, 10, noOutline.Len())
}

func TestRenderInvalid(t *testing.T) {
	s := raster.NewPixelSet()
	assert.Error(t, Render(s, Circle{Radius: -1}, Options{}))
	assert.Error(t, Render(s, FillRegion{Vertices: geom.Polygon{{0, 0}, {1, 1}}}, Options{}))
	assert.Error(t, Render(s, Polygon{Vertices: geom.Polygon{{0, 0}}}, Options{}))
	assert.Error(t, Render(s, nil, Options{}))
	assert.Zero(t, s.Len())
}

func TestSceneRenderOrderAndStop(t *testing.T) {
	var sc Scene
	sc.Add(Line{P1: geom.Pt(0, 0), P2: geom.Pt(3, 0), Color: "red"})
	sc.Add(Line{P1: geom.Pt(0, 0), P2: geom.Pt(0, 3), Color: "blue"})
	require.Equal(t, 2, sc.Len())

	s := raster.NewPixelSet()
	require.NoError(t, sc.Render(s, Options{}))
	assert.Equal(t, geom.Color("blue"), s.Pixels[geom.Pt(0, 0)], "later shapes paint over earlier ones")
	assert.Equal(t, 7, s.Len())

	sc.Add(Ellipse{RX: -2, RY: 1})
	sc.Add(Line{P1: geom.Pt(9, 9), P2: geom.Pt(9, 9), Color: "red"})
	s = raster.NewPixelSet()
	err := sc.Render(s, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape 2 (ellipse)")
	assert.False(t, s.Has(9, 9))

	sc.Clear()
	assert.Zero(t, sc.Len())
}

func TestReplacePolygon(t *testing.T) {
	sq := geom.Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	moved := geom.Polygon{{1, 1}, {3, 1}, {3, 3}, {1, 3}}
	var sc Scene
	sc.Add(Circle{Radius: 1})
	sc.Add(Polygon{Vertices: sq.Clone(), Color: "red"})

	assert.True(t, sc.ReplacePolygon(sq, moved))
	got := sc.Shapes[1].(Polygon)
	assert.Equal(t, moved, got.Vertices)
	assert.Equal(t, geom.Color("red"), got.Color)

	moved[0] = geom.Pt(-9, -9)
	assert.Equal(t, geom.Pt(1, 1), sc.Shapes[1].(Polygon).Vertices[0], "stored copy")

	assert.False(t, sc.ReplacePolygon(sq, moved))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "0,0 3,4", Describe(Line{P1: geom.Pt(0, 0), P2: geom.Pt(3, 4)}))
	assert.Equal(t, "1,2 r=5", Describe(Circle{Center: geom.Pt(1, 2), Radius: 5}))
	assert.Equal(t, geom.Color("red"), ColorOf(FillRegion{Fill: "red", Outline: "blue"}))
}

func TestRemove(t *testing.T) {
	var sc Scene
	sc.Add(Circle{Radius: 1})
	sc.Add(Circle{Radius: 2})
	sc.Add(Circle{Radius: 3})

	assert.False(t, sc.Remove(-1))
	assert.False(t, sc.Remove(3))
	require.True(t, sc.Remove(1))
	require.Equal(t, 2, sc.Len())
	assert.Equal(t, 3, sc.Shapes[1].(Circle).Radius)
}
