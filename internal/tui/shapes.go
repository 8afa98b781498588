package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"rasterlab/internal/scene"
)

var shapeColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "kind", Width: 8},
	{Title: "color", Width: 10},
	{Title: "geometry", Width: 36},
}

// shapeRows lists the scene in drawing order.
func shapeRows(sc scene.Scene) []table.Row {
	rows := make([]table.Row, 0, sc.Len())
	for i, s := range sc.Shapes {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), scene.Kind(s), string(scene.ColorOf(s)), scene.Describe(s)})
	}
	return rows
}

// refreshShapes rebuilds the shape table from the scene.
func (m *Model) refreshShapes() {
	// clear rows before swapping columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(shapeColumns)
	m.tbl.SetRows(shapeRows(m.scene))
}

// removeSelected deletes the shape under the table cursor.
func (m *Model) removeSelected() {
	i := m.tbl.Cursor()
	if !m.scene.Remove(i) {
		m.status = "no shape selected"
		return
	}
	m.redraw()
	m.refreshShapes()
	if i >= m.scene.Len() && i > 0 {
		m.tbl.SetCursor(i - 1)
	}
	m.status = "removed shape " + strconv.Itoa(i+1)
}
