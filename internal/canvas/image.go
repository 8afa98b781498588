package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Image renders g with each cell cell pixels square. Row 0 of the image is
// the top row of the grid. Empty cells are white.
func (g *Grid) Image(cell int) *image.RGBA {
	cell = max(cell, 1)
	src := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	for j := 0; j < g.h; j++ {
		y := g.bounds.YMax - j
		for i := 0; i < g.w; i++ {
			c, _ := g.ColorAt(g.bounds.XMin+i, y)
			if c == "" {
				src.SetRGBA(i, j, background)
				continue
			}
			src.SetRGBA(i, j, Resolve(c))
		}
	}
	if cell == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.w*cell, g.h*cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes g.Image(cell) to w.
func (g *Grid) WritePNG(w io.Writer, cell int) error {
	if err := png.Encode(w, g.Image(cell)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the grid to a PNG file at path.
func (g *Grid) SavePNG(path string, cell int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return g.WritePNG(f, cell)
}
