package scene

import (
	"fmt"
	"slices"

	"rasterlab/internal/geom"
	"rasterlab/internal/logging"
	"rasterlab/internal/raster"
)

// Scene is an ordered list of shapes owned by the caller. The zero value is
// an empty scene ready to use.
type Scene struct {
	Shapes []Shape
}

func (s *Scene) Add(sh Shape) { s.Shapes = append(s.Shapes, sh) }

func (s *Scene) Clear() { s.Shapes = s.Shapes[:0] }

func (s *Scene) Len() int { return len(s.Shapes) }

// Remove deletes the shape at index i and reports whether i was in range.
func (s *Scene) Remove(i int) bool {
	if i < 0 || i >= len(s.Shapes) {
		return false
	}
	s.Shapes = slices.Delete(s.Shapes, i, i+1)
	return true
}

// ReplacePolygon swaps the vertices of the first Polygon or FillRegion whose
// vertices equal old. It reports whether a shape was replaced.
func (s *Scene) ReplacePolygon(old, updated geom.Polygon) bool {
	for i, sh := range s.Shapes {
		switch v := sh.(type) {
		case Polygon:
			if v.Vertices.Equal(old) {
				v.Vertices = updated.Clone()
				s.Shapes[i] = v
				return true
			}
		case FillRegion:
			if v.Vertices.Equal(old) {
				v.Vertices = updated.Clone()
				s.Shapes[i] = v
				return true
			}
		}
	}
	return false
}

// Render draws every shape in insertion order and stops at the first
// invalid one.
func (s *Scene) Render(sink raster.PixelSink, opts Options) error {
	for i, sh := range s.Shapes {
		if err := Render(sink, sh, opts); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, Kind(sh), err)
		}
	}
	logging.Logger().Debug("scene rendered", "shapes", len(s.Shapes))
	return nil
}
