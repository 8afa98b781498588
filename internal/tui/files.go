package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"rasterlab/internal/scene"
	"rasterlab/internal/sceneio"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !sceneio.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath reads a scene file. YAML scenes replace the current scene;
// geometry formats are added to it in the polygon color.
func (m *Model) loadPath(p string) {
	shapes, err := sceneio.Load(p, m.cfg.Color("polygon"))
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.cancelAnim()
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		m.scene = scene.Scene{Shapes: shapes}
	default:
		for _, s := range shapes {
			m.scene.Add(s)
		}
	}
	m.demo, m.overlay = false, nil
	m.redraw()
	m.status = fmt.Sprintf("loaded: %s  shapes=%d", filepath.Base(p), len(shapes))
	if m.showShapes {
		m.refreshShapes()
	}
}

// pasteWKT adds the shapes of one or more pasted WKT lines.
func (m *Model) pasteWKT(text string) {
	shapes, err := sceneio.ParseWKTLines(text, m.cfg.Color("polygon"))
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	for _, s := range shapes {
		m.scene.Add(s)
	}
	m.demo, m.overlay = false, nil
	m.redraw()
	m.status = fmt.Sprintf("rendered WKT  shapes=%d", len(shapes))
}
