// Package config loads rasterlab settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"rasterlab/internal/geom"
	"rasterlab/internal/project"
	"rasterlab/internal/scene"
)

type Grid struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Cell is the PNG pixel size of one grid cell.
	Cell int `toml:"cell"`
}

// Colors holds the color token used by each tool.
type Colors struct {
	Line       string `toml:"line"`
	Circle     string `toml:"circle"`
	Ellipse    string `toml:"ellipse"`
	Bezier     string `toml:"bezier"`
	Polygon    string `toml:"polygon"`
	Scanline   string `toml:"scanline"`
	Outline    string `toml:"outline"`
	Flood      string `toml:"flood"`
	Window     string `toml:"window"`
	Preview    string `toml:"preview"`
	Clipped    string `toml:"clipped"`
	Projection string `toml:"projection"`
}

type Curve struct {
	Samples int `toml:"samples"`
	// Flatness > 0 switches to adaptive flattening.
	Flatness float64 `toml:"flatness"`
}

type Projection struct {
	Distance float64 `toml:"distance"`
	Angle    float64 `toml:"angle"`
	Cube     float64 `toml:"cube"`
}

type Animation struct {
	// DelayMS is the pause between animated fill steps.
	DelayMS int `toml:"delay_ms"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	Grid       Grid       `toml:"grid"`
	Colors     Colors     `toml:"colors"`
	Curve      Curve      `toml:"curve"`
	Projection Projection `toml:"projection"`
	Animation  Animation  `toml:"animation"`
	// Render is "braille" or "blocks".
	Render string `toml:"render"`
	Log    Log    `toml:"log"`
}

// Default returns the built-in settings: a 30x30 grid drawn at 20 pixels a
// cell and the stock tool colors.
func Default() Config {
	return Config{
		Grid: Grid{Width: 30, Height: 30, Cell: 20},
		Colors: Colors{
			Line:       "red",
			Circle:     "red",
			Ellipse:    "red",
			Bezier:     "red",
			Polygon:    "blue",
			Scanline:   "purple",
			Outline:    "blue",
			Flood:      "green",
			Window:     "black",
			Preview:    "#aaaaaa",
			Clipped:    "lime",
			Projection: "red",
		},
		Curve:      Curve{Samples: 100},
		Projection: Projection{Distance: 30, Angle: 45, Cube: 5},
		Animation:  Animation{DelayMS: 10},
		Render:     "braille",
		Log:        Log{Level: "info"},
	}
}

// Load decodes the TOML file at path over Default. Keys missing from the
// file keep their defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strict.String())
		}
		return err
	}
	return cfg.Validate()
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.Cell <= 0 {
		errs = append(errs, fmt.Errorf("grid cell must be positive, got %d", c.Grid.Cell))
	}
	if c.Curve.Samples <= 0 {
		errs = append(errs, fmt.Errorf("curve samples must be positive, got %d", c.Curve.Samples))
	}
	if c.Curve.Flatness < 0 {
		errs = append(errs, fmt.Errorf("curve flatness must not be negative, got %g", c.Curve.Flatness))
	}
	if c.Projection.Distance <= 0 {
		errs = append(errs, fmt.Errorf("projection distance must be positive, got %g", c.Projection.Distance))
	}
	if c.Projection.Cube <= 0 {
		errs = append(errs, fmt.Errorf("projection cube must be positive, got %g", c.Projection.Cube))
	}
	if c.Animation.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("animation delay must not be negative, got %d", c.Animation.DelayMS))
	}
	switch c.Render {
	case "braille", "blocks":
	default:
		errs = append(errs, fmt.Errorf("render must be braille or blocks, got %q", c.Render))
	}
	return errors.Join(errs...)
}

// SceneOptions returns the curve settings as render options.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{Samples: c.Curve.Samples, Flatness: c.Curve.Flatness}
}

// Projector returns the configured projector.
func (c Config) Projector() project.Projector {
	return project.Projector{Distance: c.Projection.Distance, Angle: c.Projection.Angle}
}

// Delay returns the animation step delay.
func (c Config) Delay() time.Duration {
	return time.Duration(c.Animation.DelayMS) * time.Millisecond
}

// Color returns the configured color for a tool name, or "red" for
// unknown tools.
func (c Config) Color(tool string) geom.Color {
	m := map[string]string{
		"line":       c.Colors.Line,
		"circle":     c.Colors.Circle,
		"ellipse":    c.Colors.Ellipse,
		"bezier":     c.Colors.Bezier,
		"polygon":    c.Colors.Polygon,
		"scanline":   c.Colors.Scanline,
		"outline":    c.Colors.Outline,
		"flood":      c.Colors.Flood,
		"window":     c.Colors.Window,
		"preview":    c.Colors.Preview,
		"clipped":    c.Colors.Clipped,
		"projection": c.Colors.Projection,
	}
	if v, ok := m[tool]; ok && v != "" {
		return geom.Color(v)
	}
	return "red"
}
