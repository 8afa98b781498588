package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rasterlab/internal/geom"
)

var axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))

// brailleBuf packs micro pixels into braille characters, 2 wide and 4 tall
// per character. Each character keeps the color of its last painted dot.
type brailleBuf struct {
	w, h  int
	mask  [][]uint8
	axis  [][]uint8
	color [][]geom.Color
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.mask = make([][]uint8, h)
	b.axis = make([][]uint8, h)
	b.color = make([][]geom.Color, h)
	for i := range h {
		b.mask[i] = make([]uint8, w)
		b.axis[i] = make([]uint8, w)
		b.color[i] = make([]geom.Color, w)
	}
	return b
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (b *brailleBuf) cell(mx, my int) (cx, cy int, bit uint8, ok bool) {
	if mx < 0 || my < 0 {
		return 0, 0, 0, false
	}
	cx, cy = mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return 0, 0, 0, false
	}
	return cx, cy, brailleBits[mx%2][my%4], true
}

// setPixel sets a micro pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int, c geom.Color) {
	if cx, cy, bit, ok := b.cell(mx, my); ok {
		b.mask[cy][cx] |= bit
		b.color[cy][cx] = c
	}
}

func (b *brailleBuf) setAxis(mx, my int) {
	if cx, cy, bit, ok := b.cell(mx, my); ok {
		b.axis[cy][cx] |= bit
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb strings.Builder
	for y := range b.h {
		sb.Reset()
		for x := 0; x < b.w; {
			if b.mask[y][x] == 0 {
				run := x
				var raw strings.Builder
				for run < b.w && b.mask[y][run] == 0 {
					raw.WriteRune(brailleRune(b.axis[y][run]))
					run++
				}
				sb.WriteString(axisStyle.Render(raw.String()))
				x = run
				continue
			}
			// group equal colors into one styled run
			c := b.color[y][x]
			run := x
			var raw strings.Builder
			for run < b.w && b.mask[y][run] != 0 && b.color[y][run] == c {
				raw.WriteRune(brailleRune(b.mask[y][run]))
				run++
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c))).Render(raw.String()))
			x = run
		}
		out[y] = sb.String()
	}
	return out
}

func brailleRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// brailleScale returns the micro pixels per grid cell that fit g into w by
// h characters, at least 1.
func brailleScale(g *Grid, w, h int) int {
	return max(1, min(2*w/g.w, 4*h/g.h))
}

// Braille renders g into w by h characters of braille dots. Cells are
// squares of micro pixels, the origin axes are drawn dimmed and the grid is
// cropped when it does not fit.
func Braille(g *Grid, w, h int) []string {
	w, h = max(w, 1), max(h, 1)
	s := brailleScale(g, w, h)
	b := newBrailleBuf(w, h)
	if g.bounds.XMin <= 0 && g.bounds.XMax >= 0 {
		mx := -g.bounds.XMin*s + s/2
		for my := 0; my < g.h*s; my++ {
			b.setAxis(mx, my)
		}
	}
	if g.bounds.YMin <= 0 && g.bounds.YMax >= 0 {
		my := g.bounds.YMax*s + s/2
		for mx := 0; mx < g.w*s; mx++ {
			b.setAxis(mx, my)
		}
	}
	for j := 0; j < g.h; j++ {
		for i := 0; i < g.w; i++ {
			c := g.cells[j*g.w+i]
			if c == "" {
				continue
			}
			// row j counts up from YMin; the buffer counts down from YMax
			top := (g.h - 1 - j) * s
			for dy := range s {
				for dx := range s {
					b.setPixel(i*s+dx, top+dy, c)
				}
			}
		}
	}
	return b.toLines()
}

// BrailleCell maps a character position of Braille(g, w, h) back to the
// grid cell under it.
func BrailleCell(g *Grid, w, h, col, row int) (geom.Point, bool) {
	if col < 0 || row < 0 || col >= w || row >= h {
		return geom.Point{}, false
	}
	s := brailleScale(g, max(w, 1), max(h, 1))
	i, j := (2*col+1)/s, (4*row+2)/s
	if i >= g.w || j >= g.h {
		return geom.Point{}, false
	}
	return geom.Point{X: g.bounds.XMin + i, Y: g.bounds.YMax - j}, true
}

// Blocks renders one grid cell as two characters: a colored block for
// painted cells and a dim dot otherwise.
func Blocks(g *Grid) []string {
	out := make([]string, g.h)
	var sb strings.Builder
	for j := 0; j < g.h; j++ {
		sb.Reset()
		y := g.bounds.YMax - j
		for i := 0; i < g.w; i++ {
			c, _ := g.ColorAt(g.bounds.XMin+i, y)
			if c == "" {
				sb.WriteString(axisStyle.Render("· "))
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c))).Render("██"))
		}
		out[j] = sb.String()
	}
	return out
}

// BlockCell maps a character position of Blocks(g) back to a grid cell.
func BlockCell(g *Grid, col, row int) (geom.Point, bool) {
	if col < 0 || row < 0 {
		return geom.Point{}, false
	}
	p := geom.Point{X: g.bounds.XMin + col/2, Y: g.bounds.YMax - row}
	return p, g.bounds.Contains(p)
}
