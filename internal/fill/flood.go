package fill

import (
	"iter"

	"rasterlab/internal/geom"
)

// Grid is a finite logical color grid. ColorAt reports false for cells
// outside the grid, which is what bounds a flood fill.
type Grid interface {
	ColorAt(x, y int) (geom.Color, bool)
	SetPixel(x, y int, c geom.Color)
}

var neighbours = [4]geom.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Flood returns the 4-connected flood fill from seed as a sequence of
// filled cells. The region is every cell reachable from seed whose color
// equals the seed's original color. Each cell is written to g before it is
// yielded, so stopping early leaves g holding exactly the consumed steps.
//
// The sequence yields nothing when the seed lies outside g or already has
// color c. It keeps its own visited set, so a cell is never processed twice
// even if g reads back a different color than was written.
func Flood(g Grid, seed geom.Point, c geom.Color) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		orig, ok := g.ColorAt(seed.X, seed.Y)
		if !ok || orig == c {
			return
		}
		visited := map[geom.Point]struct{}{seed: {}}
		queue := []geom.Point{seed}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			g.SetPixel(p.X, p.Y, c)
			if !yield(p) {
				return
			}
			for _, d := range neighbours {
				q := p.Add(d)
				if _, seen := visited[q]; seen {
					continue
				}
				if col, ok := g.ColorAt(q.X, q.Y); !ok || col != orig {
					continue
				}
				visited[q] = struct{}{}
				queue = append(queue, q)
			}
		}
	}
}

// FloodFill runs Flood to completion and returns the number of cells filled.
func FloodFill(g Grid, seed geom.Point, c geom.Color) int {
	n := 0
	for range Flood(g, seed, c) {
		n++
	}
	return n
}
