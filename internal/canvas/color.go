package canvas

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"rasterlab/internal/geom"
)

var (
	fallback   = color.RGBA{A: 0xff}
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Resolve maps a color token to RGBA. Tokens are SVG color names or
// "#rgb"/"#rrggbb" hex strings; anything else resolves to black.
func Resolve(c geom.Color) color.RGBA {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return fallback
		}
		r, g, b := col.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	if rgba, ok := colornames.Map[s]; ok {
		return rgba
	}
	return fallback
}

// Known reports whether c resolves to a real color rather than the
// fallback.
func Known(c geom.Color) bool {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	_, ok := colornames.Map[s]
	return ok
}

// Hex returns c as a "#rrggbb" string for terminal styling.
func Hex(c geom.Color) string {
	col, _ := colorful.MakeColor(Resolve(c))
	return col.Hex()
}
