package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/canvas"
	"rasterlab/internal/geom"
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	sidebarW int
	contentW int
	contentH int
	canvasX  int
	canvasY  int
	canvasW  int
	canvasH  int
}

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	lo.canvasW = max(10, lo.contentW-lo.sidebarW-1)
	lo.canvasH = lo.contentH
	if m.showSidebar {
		lo.canvasX = lo.sidebarW + 1
	}
	lo.canvasY = headerHeight
	return lo
}

// cellAt maps a terminal position to the grid cell drawn there.
func (m Model) cellAt(x, y int) (geom.Point, bool) {
	lo := m.layout()
	col, row := x-lo.canvasX, y-lo.canvasY
	if col < 0 || row < 0 || col >= lo.canvasW || row >= lo.canvasH {
		return geom.Point{}, false
	}
	if m.cfg.Render == "blocks" {
		return canvas.BlockCell(m.grid, col, row)
	}
	return canvas.BrailleCell(m.grid, lo.canvasW, lo.canvasH, col, row)
}

func (m *Model) selectTool(t tool) {
	m.tool = t
	m.input = nil
	m.status = fmt.Sprintf("%s: %s", t, t.hint(0))
}

// click adds a gesture point and finishes the gesture when complete.
func (m *Model) click(p geom.Point) tea.Cmd {
	if m.tool == toolNone {
		m.status = fmt.Sprintf("cell %v (pick a tool with 1-7)", p)
		return nil
	}
	m.input = append(m.input, p)
	if n := m.tool.points(); n > 0 && len(m.input) >= n {
		return m.finishGesture()
	}
	m.status = fmt.Sprintf("%s: %s", m.tool, m.tool.hint(len(m.input)))
	return nil
}

func (m *Model) finishGesture() tea.Cmd {
	pts := m.input
	m.input = nil
	a, err := gesture(m.tool, pts, m.cfg)
	if err != nil {
		m.status = "error: " + err.Error()
		return nil
	}
	return m.apply(a)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		m.tools.SetSize(sidebarWidth-2, lo.contentH-2)
		return m, nil
	case animTickMsg:
		return m, m.advance(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		p, ok := m.cellAt(msg.X, msg.Y)
		m.hovering, m.hover = ok, p
		if ok && m.anim == nil && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.click(p)
		}
		return m, nil
	}
	return m.updateSidebar(msg)
}

func (m Model) updateSidebar(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.showSidebar {
		return m, nil
	}
	var cmd tea.Cmd
	if m.sidebar == sidebarTools {
		m.tools, cmd = m.tools.Update(msg)
	} else {
		m.l, cmd = m.l.Update(msg)
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering the file list every key belongs to the list.
	if m.showSidebar && m.sidebar == sidebarFiles && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.anim != nil {
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelAnim()
			return m, tea.Quit
		case "esc":
			m.cancelAnim()
		}
		return m, nil
	}
	if m.prompt {
		switch msg.String() {
		case "esc":
			m.prompt = false
			m.ti.Blur()
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.ti.Value())
			m.prompt = false
			m.ti.Blur()
			m.ti.SetValue("")
			if line == "" {
				return m, nil
			}
			cmd := m.run(line)
			if m.showShapes {
				m.refreshShapes()
			}
			return m, cmd
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			return m, nil
		case "ctrl+d":
			w := strings.TrimSpace(m.ta.Value())
			if w == "" {
				m.status = "paste: empty"
				return m, nil
			}
			m.pasteWKT(w)
			m.pasteMode = false
			m.ta.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.showShapes {
		switch msg.String() {
		case "x", "delete":
			m.removeSelected()
			return m, nil
		case "esc", "a":
			m.showShapes = false
			return m, nil
		case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}

	switch k := msg.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case ":":
		m.prompt = true
		m.ti.SetValue("")
		m.ti.Focus()
		return m, nil
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode  (ctrl+d draws, esc cancels)"
		return m, nil
	case "tab":
		if m.showSidebar && m.sidebar == sidebarFiles {
			m.showSidebar = false
			return m, nil
		}
		m.showSidebar, m.sidebar = true, sidebarFiles
		m.refreshDir()
	case "t":
		if m.showSidebar && m.sidebar == sidebarTools {
			m.showSidebar = false
			return m, nil
		}
		m.showSidebar, m.sidebar = true, sidebarTools
	case "a":
		m.showShapes = true
		m.refreshShapes()
	case "h":
		m.helpVisible = !m.helpVisible
	case "r":
		if m.cfg.Render == "blocks" {
			m.cfg.Render = "braille"
		} else {
			m.cfg.Render = "blocks"
		}
		m.status = "render: " + m.cfg.Render
	case "1", "2", "3", "4", "5", "6", "7":
		m.selectTool(tool(k[0] - '0'))
	case "esc":
		if len(m.input) > 0 {
			m.input = nil
			m.status = m.tool.String() + ": input cleared"
		} else if m.demo {
			m.demo, m.overlay = false, nil
			m.redraw()
			m.status = "demo closed"
		}
	case "enter":
		if m.tool.points() == 0 && len(m.input) > 0 {
			return m, m.finishGesture()
		}
		if m.showSidebar {
			return m, m.sidebarSelect()
		}
		return m, nil
	}
	return m.updateSidebar(msg)
}

// sidebarSelect opens the selected file or runs the selected tool entry.
func (m *Model) sidebarSelect() tea.Cmd {
	if m.sidebar == sidebarFiles {
		if it, ok := m.l.SelectedItem().(fileItem); ok {
			m.loadPath(it.path)
		}
		return nil
	}
	it, ok := m.tools.SelectedItem().(toolItem)
	if !ok {
		return nil
	}
	switch {
	case it.command != "":
		return m.run(it.command)
	case it.prompt != "":
		m.prompt = true
		m.ti.SetValue(it.prompt)
		m.ti.CursorEnd()
		return m.ti.Focus()
	}
	m.selectTool(it.tool)
	return nil
}
