package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasterlab/internal/geom"
	"rasterlab/internal/raster"
)

func TestCube(t *testing.T) {
	m := Cube(5)
	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Edges, 12)
	for _, e := range m.Edges {
		a, b := m.Vertices[e[0]], m.Vertices[e[1]]
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		assert.Equal(t, 1, diff, "edge %v must follow one axis", e)
	}
}

func TestProject(t *testing.T) {
	m := Model{Vertices: []geom.Point3{{X: 5, Y: 5, Z: 5}, {X: 5, Y: 5, Z: -5}, {X: -5, Y: -5, Z: -5}}}
	pr := Default()
	tests := []struct {
		kind Kind
		want []geom.Point
	}{
		{Orthographic, []geom.Point{{5, 5}, {5, 5}, {-5, -5}}},
		{Perspective, []geom.Point{{4, 4}, {6, 6}, {-6, -6}}},
		{Cavalier, []geom.Point{{9, 9}, {1, 1}, {-9, -9}}},
		{Cabinet, []geom.Point{{7, 7}, {3, 3}, {-7, -7}}},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got, err := pr.Project(m, tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProjectEyePlane(t *testing.T) {
	m := Model{Vertices: []geom.Point3{{X: 1, Y: 1, Z: -30}}}
	_, err := Default().Project(m, Perspective)
	var ie *geom.InvalidInputError
	assert.ErrorAs(t, err, &ie)

	_, err = Default().Project(m, Orthographic)
	assert.NoError(t, err)
}

func TestProjectUnknownKind(t *testing.T) {
	_, err := Default().Project(Cube(1), Kind(9))
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind(" Orthogonal ")
	require.NoError(t, err)
	assert.Equal(t, Orthographic, got)

	_, err = ParseKind("fisheye")
	assert.Error(t, err)
}

func TestDrawOrthographicCube(t *testing.T) {
	set := raster.NewPixelSet()
	require.NoError(t, Default().Draw(set, Cube(5), Orthographic, "red"))
	// front and back faces coincide: a 10x10 square outline
	assert.Equal(t, 40, set.Len())
	assert.True(t, set.Has(-5, -5))
	assert.True(t, set.Has(5, 5))
	assert.False(t, set.Has(0, 0))
}

func TestDrawBadEdge(t *testing.T) {
	m := Cube(5)
	m.Edges = append(m.Edges, [2]int{0, 8})
	set := raster.NewPixelSet()
	err := Default().Draw(set, m, Cabinet, "red")
	assert.Error(t, err)
	assert.Zero(t, set.Len())
}
