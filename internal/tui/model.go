package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/canvas"
	"rasterlab/internal/config"
	"rasterlab/internal/geom"
	"rasterlab/internal/logging"
	"rasterlab/internal/raster"
	"rasterlab/internal/scene"
	"rasterlab/internal/sceneio"
)

type sidebarMode int

const (
	sidebarFiles sidebarMode = iota
	sidebarTools
)

const sidebarWidth = 28

type Model struct {
	cfg config.Config

	width  int
	height int

	showSidebar bool
	sidebar     sidebarMode
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	tools list.Model

	// Drawing state
	scene   scene.Scene
	grid    *canvas.Grid
	overlay []painter
	demo    bool

	// mouse input
	tool  tool
	input []geom.Point

	// hover state
	hovering bool
	hover    geom.Point

	// command prompt
	prompt bool
	ti     textinput.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// shape table
	showShapes bool
	tbl        table.Model

	anim    *animation
	animSeq int
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "rasterlab ready",
		grid:        canvas.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.tools = list.New(toolItems(), list.NewDefaultDelegate(), 0, 0)
	m.tools.Title = "Tools"
	m.tools.SetShowHelp(false)
	m.tools.SetShowStatusBar(false)
	m.tools.SetFilteringEnabled(false)

	m.ti = textinput.New()
	m.ti.Prompt = ":"
	m.ti.Placeholder = commandHelp
	m.ti.CharLimit = 0

	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, ...). Press Enter to draw; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a scene file at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// redraw rebuilds the grid from the scene and the current overlay.
func (m *Model) redraw() {
	m.grid.Clear()
	if !m.demo {
		if err := m.scene.Render(m.grid, m.cfg.SceneOptions()); err != nil {
			m.status = "render error: " + err.Error()
		}
	}
	for _, p := range m.overlay {
		if err := p(m.grid); err != nil {
			m.status = "render error: " + err.Error()
		}
	}
}

// apply performs a parsed command or gesture against the model.
func (m *Model) apply(a action) tea.Cmd {
	switch {
	case a.reset:
		m.cancelAnim()
		m.scene.Clear()
		m.demo, m.overlay = false, nil
		m.redraw()
		m.status = a.status
		return nil
	case a.save != "":
		m.save(a.save)
		return nil
	case a.load != "":
		m.loadPath(a.load)
		return nil
	case a.anim != animNone:
		return m.startAnim(a)
	case a.demo:
		m.cancelAnim()
		m.demo, m.overlay = true, a.overlay
		m.redraw()
		m.status = a.status
		return nil
	}
	opts := m.cfg.SceneOptions()
	for _, s := range a.add {
		if err := scene.Render(raster.SinkFunc(func(int, int, geom.Color) {}), s, opts); err != nil {
			m.status = "error: " + err.Error()
			return nil
		}
	}
	if a.replace != nil && m.scene.ReplacePolygon(a.replace[0], a.replace[1]) {
		logging.Logger().Debug("polygon replaced", "vertices", len(a.replace[1]))
	} else {
		for _, s := range a.add {
			m.scene.Add(s)
		}
	}
	m.demo, m.overlay = false, nil
	m.redraw()
	m.status = a.status
	return nil
}

// run parses and applies one prompt line.
func (m *Model) run(line string) tea.Cmd {
	a, err := parseCommand(line, m.cfg)
	if err != nil {
		m.status = "error: " + err.Error()
		logging.Logger().Debug("command rejected", "line", line, "err", err)
		return nil
	}
	logging.Logger().Debug("command", "line", line)
	return m.apply(a)
}

func (m *Model) save(path string) {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = m.grid.SavePNG(path, m.cfg.Grid.Cell)
	case ".yaml", ".yml":
		err = sceneio.SaveYAML(path, m.scene.Shapes)
	default:
		err = fmt.Errorf("save: unsupported file type %q (want .png or .yaml)", filepath.Ext(path))
	}
	if err != nil {
		m.status = "error: " + err.Error()
		logging.Logger().Error("save failed", "path", path, "err", err)
		return
	}
	m.status = "saved " + path
	logging.Logger().Info("saved", "path", path)
}
