// Package canvas is the drawing surface: a finite color grid in y-up
// coordinates that the rasterizer and fillers write into, plus renderers
// that turn it into images and terminal text.
package canvas

import (
	"slices"

	"rasterlab/internal/geom"
)

// Grid is a finite logical grid. Cell (0, 0) is the origin and y grows
// upwards. The empty color "" is the background.
type Grid struct {
	bounds geom.Window
	w, h   int
	cells  []geom.Color
}

// NewGrid returns a w by h grid centered on the origin. For even sizes the
// extra column and row go to the negative side.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 1), max(h, 1)
	xmin, ymin := -(w / 2), -(h / 2)
	return &Grid{
		bounds: geom.Window{XMin: xmin, YMin: ymin, XMax: xmin + w - 1, YMax: ymin + h - 1},
		w:      w,
		h:      h,
		cells:  make([]geom.Color, w*h),
	}
}

// NewGridBounds returns a grid covering win, bounds inclusive.
func NewGridBounds(win geom.Window) (*Grid, error) {
	if !win.Valid() {
		return nil, geom.Invalid("grid", "empty bounds %d,%d,%d,%d", win.XMin, win.YMin, win.XMax, win.YMax)
	}
	w, h := win.XMax-win.XMin+1, win.YMax-win.YMin+1
	return &Grid{bounds: win, w: w, h: h, cells: make([]geom.Color, w*h)}, nil
}

func (g *Grid) Bounds() geom.Window { return g.bounds }
func (g *Grid) Width() int          { return g.w }
func (g *Grid) Height() int         { return g.h }

func (g *Grid) index(x, y int) (int, bool) {
	if !g.bounds.Contains(geom.Point{X: x, Y: y}) {
		return 0, false
	}
	return (y-g.bounds.YMin)*g.w + (x - g.bounds.XMin), true
}

// SetPixel paints a cell. Writes outside the grid are dropped.
func (g *Grid) SetPixel(x, y int, c geom.Color) {
	if i, ok := g.index(x, y); ok {
		g.cells[i] = c
	}
}

// ColorAt returns the color of a cell and false outside the grid.
func (g *Grid) ColorAt(x, y int) (geom.Color, bool) {
	i, ok := g.index(x, y)
	if !ok {
		return "", false
	}
	return g.cells[i], true
}

// Clear resets every cell to the background.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Count returns the number of painted cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != "" {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = slices.Clone(g.cells)
	return &c
}
