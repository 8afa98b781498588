package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"rasterlab/internal/clip"
	"rasterlab/internal/config"
	"rasterlab/internal/geom"
	"rasterlab/internal/project"
	"rasterlab/internal/raster"
	"rasterlab/internal/scene"
	"rasterlab/internal/transform"
)

// painter draws a transient overlay that is not part of the scene.
type painter func(raster.PixelSink) error

type animKind int

const (
	animNone animKind = iota
	animScanline
	animFlood
)

// action is the parsed effect of one command or one finished mouse gesture.
type action struct {
	add     []scene.Shape
	overlay []painter
	// replace swaps a scene polygon when found; add is used otherwise.
	replace *[2]geom.Polygon
	anim    animKind
	poly    geom.Polygon
	seed    geom.Point
	// demo hides the scene behind the overlay until the scene next changes.
	demo    bool
	reset   bool
	save    string
	load    string
	status  string
}

const commandHelp = "line circle ellipse bezier polygon scanline flood clipline clippoly transform project clear save load"

func shapeOverlay(s scene.Shape, opts scene.Options) painter {
	return func(sink raster.PixelSink) error { return scene.Render(sink, s, opts) }
}

// parseCommand turns a prompt line such as "circle 0,0 5" into an action.
func parseCommand(line string, cfg config.Config) (action, error) {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	name = strings.ToLower(name)
	switch name {
	case "":
		return action{}, errors.New("empty command")
	case "line":
		pts, err := geom.ParsePoints(rest)
		if err != nil {
			return action{}, err
		}
		if len(pts) != 2 {
			return action{}, geom.Invalid("line", "need 2 points, got %d", len(pts))
		}
		return action{
			add:    []scene.Shape{scene.Line{P1: pts[0], P2: pts[1], Color: cfg.Color("line")}},
			status: "line " + geom.FormatPoints(pts),
		}, nil
	case "circle":
		v, err := geom.ParseInts(rest)
		if err != nil {
			return action{}, err
		}
		if len(v) != 3 {
			return action{}, geom.Invalid("circle", "want x,y r")
		}
		c := scene.Circle{Center: geom.Pt(v[0], v[1]), Radius: v[2], Color: cfg.Color("circle")}
		if c.Radius < 0 {
			return action{}, geom.Invalid("circle", "negative radius %d", c.Radius)
		}
		return action{add: []scene.Shape{c}, status: "circle " + scene.Describe(c)}, nil
	case "ellipse":
		v, err := geom.ParseInts(rest)
		if err != nil {
			return action{}, err
		}
		if len(v) != 4 {
			return action{}, geom.Invalid("ellipse", "want x,y rx ry")
		}
		e := scene.Ellipse{Center: geom.Pt(v[0], v[1]), RX: v[2], RY: v[3], Color: cfg.Color("ellipse")}
		if e.RX < 0 || e.RY < 0 {
			return action{}, geom.Invalid("ellipse", "negative radius")
		}
		return action{add: []scene.Shape{e}, status: "ellipse " + scene.Describe(e)}, nil
	case "bezier":
		pts, err := geom.ParsePoints(rest)
		if err != nil {
			return action{}, err
		}
		c, err := scene.NewCurve(pts, cfg.Color("bezier"))
		if err != nil {
			return action{}, err
		}
		return action{add: []scene.Shape{c}, status: "bezier " + scene.Describe(c)}, nil
	case "polygon":
		pts, err := geom.ParsePoints(rest)
		if err != nil {
			return action{}, err
		}
		if len(pts) < 2 {
			return action{}, geom.Invalid("polygon", "need at least 2 points, got %d", len(pts))
		}
		return action{
			add:    []scene.Shape{scene.Polygon{Vertices: pts, Color: cfg.Color("polygon")}},
			status: fmt.Sprintf("polygon with %d vertices", len(pts)),
		}, nil
	case "scanline":
		pts, err := geom.ParsePoints(rest)
		if err != nil {
			return action{}, err
		}
		if len(pts) < 3 {
			return action{}, geom.Invalid("scanline", "need at least 3 vertices, got %d", len(pts))
		}
		return action{anim: animScanline, poly: pts, status: "scanline fill"}, nil
	case "flood":
		p, err := geom.ParsePoint(rest)
		if err != nil {
			return action{}, err
		}
		return action{anim: animFlood, seed: p, status: "flood fill from " + p.String()}, nil
	case "clipline":
		return parseClipLine(rest, cfg)
	case "clippoly":
		return parseClipPoly(rest, cfg)
	case "transform":
		return parseTransform(rest, cfg)
	case "project":
		kind, err := project.ParseKind(rest)
		if err != nil {
			return action{}, err
		}
		pr := cfg.Projector()
		m := project.Cube(cfg.Projection.Cube)
		c := cfg.Color("projection")
		return action{
			demo:    true,
			overlay: []painter{func(sink raster.PixelSink) error { return pr.Draw(sink, m, kind, c) }},
			status:  kind.String() + " projection",
		}, nil
	case "clear":
		return action{reset: true, status: "cleared"}, nil
	case "save":
		if rest == "" {
			return action{}, errors.New("save: missing path")
		}
		return action{save: rest}, nil
	case "load":
		if rest == "" {
			return action{}, errors.New("load: missing path")
		}
		return action{load: rest}, nil
	default:
		return action{}, fmt.Errorf("unknown command %q (try: %s)", name, commandHelp)
	}
}

// splitWindow reads a leading xmin,ymin,xmax,ymax and the points after it.
func splitWindow(rest, op string) (geom.Window, []geom.Point, error) {
	vals, err := geom.ParseInts(rest)
	if err != nil {
		return geom.Window{}, nil, err
	}
	if len(vals) < 4 {
		return geom.Window{}, nil, geom.Invalid(op, "want xmin,ymin,xmax,ymax followed by points")
	}
	w := geom.Window{XMin: vals[0], YMin: vals[1], XMax: vals[2], YMax: vals[3]}
	if !w.Valid() {
		return geom.Window{}, nil, geom.Invalid(op, "min exceeds max in %v", vals[:4])
	}
	tail := vals[4:]
	if len(tail)%2 != 0 {
		return geom.Window{}, nil, geom.Invalid(op, "odd number of coordinates (%d)", len(tail))
	}
	pts := make([]geom.Point, 0, len(tail)/2)
	for i := 0; i < len(tail); i += 2 {
		pts = append(pts, geom.Pt(tail[i], tail[i+1]))
	}
	return w, pts, nil
}

func parseClipLine(rest string, cfg config.Config) (action, error) {
	w, pts, err := splitWindow(rest, "clipline")
	if err != nil {
		return action{}, err
	}
	if len(pts) != 2 {
		return action{}, geom.Invalid("clipline", "need 2 points, got %d", len(pts))
	}
	opts := cfg.SceneOptions()
	a := action{demo: true}
	a.overlay = append(a.overlay,
		shapeOverlay(scene.Polygon{Vertices: w.Corners(), Color: cfg.Color("window")}, opts),
		shapeOverlay(scene.Line{P1: pts[0], P2: pts[1], Color: cfg.Color("preview")}, opts),
	)
	seg, ok := clip.Line(geom.Segment{P1: pts[0], P2: pts[1]}, w)
	if !ok {
		a.status = "no intersection"
		return a, nil
	}
	a.overlay = append(a.overlay, shapeOverlay(scene.Line{P1: seg.P1, P2: seg.P2, Color: cfg.Color("clipped")}, opts))
	a.status = "clipped to " + seg.P1.String() + " " + seg.P2.String()
	return a, nil
}

func parseClipPoly(rest string, cfg config.Config) (action, error) {
	w, pts, err := splitWindow(rest, "clippoly")
	if err != nil {
		return action{}, err
	}
	if len(pts) < 3 {
		return action{}, geom.Invalid("clippoly", "need at least 3 vertices, got %d", len(pts))
	}
	opts := cfg.SceneOptions()
	a := action{demo: true}
	a.overlay = append(a.overlay,
		shapeOverlay(scene.Polygon{Vertices: w.Corners(), Color: cfg.Color("window")}, opts),
		shapeOverlay(scene.Polygon{Vertices: pts, Color: cfg.Color("preview")}, opts),
	)
	out := clip.Polygon(pts, w)
	switch {
	case len(out) == 0:
		a.status = "polygon lies outside the window"
	case len(out) < 2:
		a.status = "clipped to a single point"
		a.overlay = append(a.overlay, shapeOverlay(scene.Line{P1: out[0], P2: out[0], Color: cfg.Color("clipped")}, opts))
	default:
		a.overlay = append(a.overlay, shapeOverlay(scene.Polygon{Vertices: out, Color: cfg.Color("clipped")}, opts))
		a.status = fmt.Sprintf("clipped polygon has %d vertices", len(out))
	}
	return a, nil
}

// parseTransform reads "tx ty sx sy deg px,py points...".
func parseTransform(rest string, cfg config.Config) (action, error) {
	f := strings.Fields(rest)
	if len(f) < 6 {
		return action{}, geom.Invalid("transform", "want tx ty sx sy deg px,py points")
	}
	nums := make([]float64, 5)
	for i := range nums {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return action{}, geom.Invalid("transform", "invalid number %q", f[i])
		}
		nums[i] = v
	}
	pts, err := geom.ParsePoints(strings.Join(f[5:], " "))
	if err != nil {
		return action{}, err
	}
	if len(pts) < 2 {
		return action{}, geom.Invalid("transform", "want a pivot and at least one polygon point")
	}
	pivot, poly := pts[0], geom.Polygon(pts[1:])
	p := transform.Params{
		Tx:      int(math.Round(nums[0])),
		Ty:      int(math.Round(nums[1])),
		Sx:      nums[2],
		Sy:      nums[3],
		Degrees: nums[4],
		Pivot:   pivot,
	}
	out := transform.Apply(poly, p)
	return action{
		replace: &[2]geom.Polygon{poly, out},
		add:     []scene.Shape{scene.Polygon{Vertices: out, Color: cfg.Color("polygon")}},
		status:  "transformed to " + geom.FormatPoints(out),
	}, nil
}
