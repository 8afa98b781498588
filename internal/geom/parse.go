package geom

import (
	"strconv"
	"strings"
)

// splitValues breaks "1, 2 3,4" into its numeric fields. Commas and any
// whitespace both act as separators.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseInts parses a comma or space separated list of integers.
func ParseInts(s string) ([]int, error) {
	var out []int
	for _, f := range splitValues(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, Invalid("parse", "bad integer %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParsePoints parses "x,y x,y ..." into an ordered point list.
// Empty input yields an empty list.
func ParsePoints(s string) ([]Point, error) {
	vals, err := ParseInts(s)
	if err != nil {
		return nil, err
	}
	if len(vals)%2 != 0 {
		return nil, Invalid("parse points", "odd number of coordinates (%d)", len(vals))
	}
	pts := make([]Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		pts = append(pts, Point{X: vals[i], Y: vals[i+1]})
	}
	return pts, nil
}

// ParsePoint parses exactly one "x,y" pair.
func ParsePoint(s string) (Point, error) {
	pts, err := ParsePoints(s)
	if err != nil {
		return Point{}, err
	}
	if len(pts) != 1 {
		return Point{}, Invalid("parse point", "want 1 point, got %d", len(pts))
	}
	return pts[0], nil
}

// ParseWindow parses "xmin,ymin,xmax,ymax" and rejects ill-formed windows,
// which the clipper does not check for itself.
func ParseWindow(s string) (Window, error) {
	vals, err := ParseInts(s)
	if err != nil {
		return Window{}, err
	}
	if len(vals) != 4 {
		return Window{}, Invalid("parse window", "want 4 values, got %d", len(vals))
	}
	w := Window{XMin: vals[0], YMin: vals[1], XMax: vals[2], YMax: vals[3]}
	if !w.Valid() {
		return Window{}, Invalid("parse window", "min exceeds max in %v", vals)
	}
	return w, nil
}

// FormatPoints is the inverse of ParsePoints.
func FormatPoints(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
