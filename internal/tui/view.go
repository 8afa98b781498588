package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rasterlab/internal/canvas"
	"rasterlab/internal/scene"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	title := titleStyle.Render(" rasterlab ─ raster graphics lab ")
	info := dimStyle.Render(fmt.Sprintf("  tool: %s  shapes: %d  grid: %dx%d", m.tool, m.scene.Len(), m.grid.Width(), m.grid.Height()))
	header := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, title, info))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		lst := m.l
		if m.sidebar == sidebarTools {
			lst = m.tools
		}
		lst.SetSize(sidebarWidth-2, lo.contentH-2)
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(lst.View())
	}

	var main string
	switch {
	case m.showShapes:
		colW := 0
		for _, c := range shapeColumns {
			colW += c.Width + 3
		}
		w := min(lo.canvasW, max(32, colW))
		m.tbl.SetWidth(w - 4)
		m.tbl.SetHeight(min(lo.canvasH-2, 20))
		box := boxStyle.Width(w).Render(m.tbl.View())
		main = lipgloss.Place(lo.canvasW, lo.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.canvasW)
		m.ta.SetHeight(min(lo.canvasH, 12))
		main = lipgloss.NewStyle().Width(lo.canvasW).Height(lo.canvasH).Render(m.ta.View())
	default:
		main = lipgloss.NewStyle().Width(lo.canvasW).Height(lo.canvasH).Render(m.renderCanvas(lo.canvasW, lo.canvasH))
	}

	body := main
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	}

	// Footer
	var bottom string
	if m.prompt {
		bottom = promptStyle.Width(lo.contentW).Render(m.ti.View())
	} else {
		status := dimStyle.Render(" " + m.status + " ")
		coords := ""
		if m.hovering {
			coords = dimStyle.Render(fmt.Sprintf("  x=%d y=%d  ", m.hover.X, m.hover.Y))
		}
		spacerW := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
		right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
		bottom = lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, right))
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, bottom, m.renderHelp())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderCanvas draws the grid plus the rubber band of the gesture in
// progress.
func (m Model) renderCanvas(w, h int) string {
	g := m.grid
	if m.hovering && len(m.input) > 0 && m.anim == nil {
		g = g.Clone()
		opts := m.cfg.SceneOptions()
		for _, s := range preview(m.tool, m.input, m.hover, m.cfg) {
			// a half-finished gesture may not be drawable yet
			_ = scene.Render(g, s, opts)
		}
	}
	if m.cfg.Render == "blocks" {
		return strings.Join(canvas.Blocks(g), "\n")
	}
	return strings.Join(canvas.Braille(g, w, h), "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch {
	case m.anim != nil:
		keys = []string{"esc cancel", "q quit"}
	case m.showShapes:
		keys = []string{"↑↓ select", "x delete", "esc close"}
	default:
		keys = []string{
			"1-7 tools",
			": command",
			"t tools",
			"Tab files",
			"p paste",
			"a shapes",
			"r render",
			"h help",
			"q quit",
		}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
