package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/canvas"
	"rasterlab/internal/config"
	"rasterlab/internal/logging"
	"rasterlab/internal/scene"
	"rasterlab/internal/sceneio"
	"rasterlab/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "rasterlab.toml", "TOML settings file")
	logPath := flag.String("log", "", "write logs to this file")
	render := flag.String("render", "", "render this scene file to PNG and exit")
	out := flag.String("o", "out.png", "PNG output path for -render")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	if *render != "" {
		if err := renderPNG(cfg, *render, *out); err != nil {
			closeLog()
			log.Fatal(err)
		}
		return
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		closeLog()
		log.Fatal(err)
	}
}

// loadConfig reads path over the defaults. A missing file means defaults.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// setupLogging installs a text logger writing to l.File. Without a file the
// logger stays silent since the terminal UI owns stdout.
func setupLogging(l config.Log) (func(), error) {
	if l.File == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logging.ParseLevel(l.Level)})))
	return func() {
		logging.SetLogger(nil)
		f.Close()
	}, nil
}

func renderPNG(cfg config.Config, in, out string) error {
	shapes, err := sceneio.Load(in, cfg.Color("polygon"))
	if err != nil {
		return err
	}
	g := canvas.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	sc := scene.Scene{Shapes: shapes}
	if err := sc.Render(g, cfg.SceneOptions()); err != nil {
		return err
	}
	if err := g.SavePNG(out, cfg.Grid.Cell); err != nil {
		return err
	}
	logging.Logger().Info("rendered", "in", in, "out", out, "pixels", g.Count())
	return nil
}
