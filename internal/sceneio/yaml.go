package sceneio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rasterlab/internal/geom"
	"rasterlab/internal/scene"
)

// record is the YAML form of one shape, tagged by type.
type record struct {
	Type    string  `yaml:"type"`
	Color   string  `yaml:"color,omitempty"`
	Outline string  `yaml:"outline,omitempty"`
	Points  [][]int `yaml:"points,omitempty,flow"`
	Center  []int   `yaml:"center,omitempty,flow"`
	Radius  int     `yaml:"radius,omitempty"`
	RX      int     `yaml:"rx,omitempty"`
	RY      int     `yaml:"ry,omitempty"`
}

type document struct {
	Shapes []record `yaml:"shapes"`
}

func pairs(pts []geom.Point) [][]int {
	out := make([][]int, len(pts))
	for i, p := range pts {
		out[i] = []int{p.X, p.Y}
	}
	return out
}

func pair(p geom.Point) []int { return []int{p.X, p.Y} }

func toRecord(s scene.Shape) (record, error) {
	r := record{Type: scene.Kind(s)}
	switch v := s.(type) {
	case scene.Line:
		r.Color = string(v.Color)
		r.Points = pairs([]geom.Point{v.P1, v.P2})
	case scene.Circle:
		r.Color = string(v.Color)
		r.Center = pair(v.Center)
		r.Radius = v.Radius
	case scene.Ellipse:
		r.Color = string(v.Color)
		r.Center = pair(v.Center)
		r.RX, r.RY = v.RX, v.RY
	case scene.Curve:
		r.Color = string(v.Color)
		r.Points = pairs(v.Ctrl[:])
	case scene.Polygon:
		r.Color = string(v.Color)
		r.Points = pairs(v.Vertices)
	case scene.FillRegion:
		r.Color = string(v.Fill)
		r.Outline = string(v.Outline)
		r.Points = pairs(v.Vertices)
	default:
		return record{}, fmt.Errorf("yaml: unsupported shape %T", s)
	}
	return r, nil
}

func (r record) points() ([]geom.Point, error) {
	pts := make([]geom.Point, len(r.Points))
	for i, p := range r.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: want [x, y], got %v", i, p)
		}
		pts[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

func (r record) center() (geom.Point, error) {
	if len(r.Center) != 2 {
		return geom.Point{}, fmt.Errorf("center: want [x, y], got %v", r.Center)
	}
	return geom.Point{X: r.Center[0], Y: r.Center[1]}, nil
}

func (r record) shape() (scene.Shape, error) {
	c := geom.Color(r.Color)
	switch r.Type {
	case "line":
		pts, err := r.points()
		if err != nil {
			return nil, err
		}
		if len(pts) != 2 {
			return nil, geom.Invalid("line", "need 2 points, got %d", len(pts))
		}
		return scene.Line{P1: pts[0], P2: pts[1], Color: c}, nil
	case "circle":
		ctr, err := r.center()
		if err != nil {
			return nil, err
		}
		return scene.Circle{Center: ctr, Radius: r.Radius, Color: c}, nil
	case "ellipse":
		ctr, err := r.center()
		if err != nil {
			return nil, err
		}
		return scene.Ellipse{Center: ctr, RX: r.RX, RY: r.RY, Color: c}, nil
	case "bezier":
		pts, err := r.points()
		if err != nil {
			return nil, err
		}
		return scene.NewCurve(pts, c)
	case "polygon":
		pts, err := r.points()
		if err != nil {
			return nil, err
		}
		return scene.Polygon{Vertices: pts, Color: c}, nil
	case "fill":
		pts, err := r.points()
		if err != nil {
			return nil, err
		}
		return scene.FillRegion{Vertices: pts, Fill: c, Outline: geom.Color(r.Outline)}, nil
	case "":
		return nil, errors.New("missing type")
	default:
		return nil, fmt.Errorf("unknown type %q", r.Type)
	}
}

// DecodeYAML reads a scene document:
//
//	shapes:
//	  - {type: circle, color: green, center: [0, 0], radius: 5}
//	  - {type: fill, color: purple, outline: blue, points: [[0, 0], [4, 0], [0, 4]]}
//
// Unknown fields are rejected.
func DecodeYAML(r io.Reader) ([]scene.Shape, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}
	shapes := make([]scene.Shape, 0, len(doc.Shapes))
	for i, rec := range doc.Shapes {
		s, err := rec.shape()
		if err != nil {
			return nil, fmt.Errorf("yaml shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// EncodeYAML writes shapes as a scene document readable by DecodeYAML.
func EncodeYAML(w io.Writer, shapes []scene.Shape) error {
	doc := document{Shapes: make([]record, 0, len(shapes))}
	for _, s := range shapes {
		r, err := toRecord(s)
		if err != nil {
			return err
		}
		doc.Shapes = append(doc.Shapes, r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return enc.Close()
}

// SaveYAML writes shapes to a YAML file at path.
func SaveYAML(path string, shapes []scene.Shape) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodeYAML(f, shapes)
}
