package tui

import (
	"fmt"
	"math"

	list "github.com/charmbracelet/bubbles/list"

	"rasterlab/internal/config"
	"rasterlab/internal/geom"
	"rasterlab/internal/project"
	"rasterlab/internal/scene"
)

// tool is the mouse input mode.
type tool int

const (
	toolNone tool = iota
	toolLine
	toolCircle
	toolEllipse
	toolBezier
	toolPolygon
	toolScanline
	toolFlood
)

var toolNames = [...]string{"none", "line", "circle", "ellipse", "bezier", "polygon", "scanline", "flood"}

func (t tool) String() string { return toolNames[t] }

// points returns how many clicks complete a gesture; 0 means Enter
// finishes it.
func (t tool) points() int {
	switch t {
	case toolLine, toolCircle, toolEllipse:
		return 2
	case toolBezier:
		return 4
	case toolFlood:
		return 1
	default:
		return 0
	}
}

func (t tool) hint(n int) string {
	switch t {
	case toolLine:
		return [...]string{"click the first endpoint", "click the second endpoint"}[min(n, 1)]
	case toolCircle:
		return [...]string{"click the center", "click the rim to set the radius"}[min(n, 1)]
	case toolEllipse:
		return [...]string{"click the center", "click a corner to set both radii"}[min(n, 1)]
	case toolBezier:
		return fmt.Sprintf("click control point P%d", min(n, 3))
	case toolPolygon, toolScanline:
		return fmt.Sprintf("%d vertices, click to add, enter to finish", n)
	case toolFlood:
		return "click the seed cell"
	default:
		return ""
	}
}

func radius(a, b geom.Point) int {
	return int(math.Round(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// gesture builds the action for a finished mouse gesture.
func gesture(t tool, pts []geom.Point, cfg config.Config) (action, error) {
	switch t {
	case toolLine:
		return parseCommand("line "+geom.FormatPoints(pts), cfg)
	case toolCircle:
		return parseCommand(fmt.Sprintf("circle %v %d", pts[0], radius(pts[0], pts[1])), cfg)
	case toolEllipse:
		d := pts[1].Sub(pts[0])
		return parseCommand(fmt.Sprintf("ellipse %v %d %d", pts[0], absInt(d.X), absInt(d.Y)), cfg)
	case toolBezier:
		return parseCommand("bezier "+geom.FormatPoints(pts), cfg)
	case toolPolygon:
		return parseCommand("polygon "+geom.FormatPoints(pts), cfg)
	case toolScanline:
		return parseCommand("scanline "+geom.FormatPoints(pts), cfg)
	case toolFlood:
		return parseCommand("flood "+pts[0].String(), cfg)
	default:
		return action{}, fmt.Errorf("no tool selected")
	}
}

// preview returns the rubber-band shapes shown while a gesture is in
// progress and the pointer is at hover.
func preview(t tool, pts []geom.Point, hover geom.Point, cfg config.Config) []scene.Shape {
	if len(pts) == 0 {
		return nil
	}
	c := cfg.Color("preview")
	last := pts[len(pts)-1]
	switch t {
	case toolLine:
		return []scene.Shape{scene.Line{P1: pts[0], P2: hover, Color: c}}
	case toolCircle:
		return []scene.Shape{scene.Circle{Center: pts[0], Radius: radius(pts[0], hover), Color: c}}
	case toolEllipse:
		d := hover.Sub(pts[0])
		return []scene.Shape{scene.Ellipse{Center: pts[0], RX: absInt(d.X), RY: absInt(d.Y), Color: c}}
	case toolBezier, toolPolygon, toolScanline:
		out := make([]scene.Shape, 0, len(pts))
		for i := 0; i+1 < len(pts); i++ {
			out = append(out, scene.Line{P1: pts[i], P2: pts[i+1], Color: cfg.Color("scanline")})
		}
		return append(out, scene.Line{P1: last, P2: hover, Color: c})
	default:
		return nil
	}
}

// toolItem is an entry of the tool sidebar.
type toolItem struct {
	title, desc string
	tool        tool
	// command runs immediately instead of arming a tool.
	command string
	// prompt opens the command prompt prefilled with this text.
	prompt string
}

func (i toolItem) Title() string       { return i.title }
func (i toolItem) Description() string { return i.desc }
func (i toolItem) FilterValue() string { return i.title }

func toolItems() []list.Item {
	items := []list.Item{
		toolItem{title: "1 line", desc: "Bresenham segment", tool: toolLine},
		toolItem{title: "2 circle", desc: "midpoint circle", tool: toolCircle},
		toolItem{title: "3 ellipse", desc: "midpoint ellipse", tool: toolEllipse},
		toolItem{title: "4 bezier", desc: "cubic curve", tool: toolBezier},
		toolItem{title: "5 polygon", desc: "closed outline", tool: toolPolygon},
		toolItem{title: "6 scanline", desc: "animated even-odd fill", tool: toolScanline},
		toolItem{title: "7 flood", desc: "animated 4-connected fill", tool: toolFlood},
		toolItem{title: "clip line", desc: "xmin,ymin,xmax,ymax x,y x,y", prompt: "clipline "},
		toolItem{title: "clip polygon", desc: "xmin,ymin,xmax,ymax points", prompt: "clippoly "},
		toolItem{title: "transform", desc: "tx ty sx sy deg px,py points", prompt: "transform "},
	}
	for _, k := range project.Kinds() {
		items = append(items, toolItem{title: "project " + k.String(), desc: "wireframe cube", command: "project " + k.String()})
	}
	return items
}
