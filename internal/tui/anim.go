package tui

import (
	"fmt"
	"iter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/fill"
	"rasterlab/internal/geom"
	"rasterlab/internal/logging"
	"rasterlab/internal/scene"
)

// animation pulls one fill step per tick. Stopping it early leaves the grid
// holding exactly the steps consumed so far.
type animation struct {
	id     int
	label  string
	steps  int
	step   func() bool
	stop   func()
	finish func(*Model)
}

type animTickMsg struct{ id int }

func (m Model) tick() tea.Cmd {
	id := m.anim.id
	return tea.Tick(m.cfg.Delay(), func(time.Time) tea.Msg { return animTickMsg{id: id} })
}

func pull[T any](seq iter.Seq[T], apply func(T)) (step func() bool, stop func()) {
	next, stop := iter.Pull(seq)
	return func() bool {
		v, ok := next()
		if ok {
			apply(v)
		}
		return ok
	}, stop
}

// startAnim begins an animated fill described by a.
func (m *Model) startAnim(a action) tea.Cmd {
	m.cancelAnim()
	m.animSeq++
	an := &animation{id: m.animSeq}
	g := m.grid
	switch a.anim {
	case animScanline:
		rows, err := fill.Rows(a.poly)
		if err != nil {
			m.status = "scanline: " + err.Error()
			return nil
		}
		fillC, outline := m.cfg.Color("scanline"), m.cfg.Color("outline")
		region := scene.FillRegion{Vertices: a.poly.Clone(), Fill: fillC, Outline: outline}
		an.label = "scanline"
		an.step, an.stop = pull(rows, func(row []fill.Span) {
			for _, sp := range row {
				sp.Emit(g, fillC)
			}
		})
		an.finish = func(m *Model) {
			m.scene.Add(region)
			m.demo, m.overlay = false, nil
			m.redraw()
		}
	case animFlood:
		c := m.cfg.Color("flood")
		if _, ok := g.ColorAt(a.seed.X, a.seed.Y); !ok {
			m.status = "flood: seed " + a.seed.String() + " is outside the grid"
			return nil
		}
		an.label = "flood"
		an.step, an.stop = pull(fill.Flood(g, a.seed, c), func(geom.Point) {})
	default:
		return nil
	}
	m.anim = an
	m.status = a.status + "  (esc cancels)"
	logging.Logger().Debug("animation started", "kind", an.label, "id", an.id)
	return m.tick()
}

// advance runs one step and schedules the next tick.
func (m *Model) advance(msg animTickMsg) tea.Cmd {
	if m.anim == nil || msg.id != m.anim.id {
		return nil
	}
	if m.anim.step() {
		m.anim.steps++
		return m.tick()
	}
	an := m.anim
	an.stop()
	m.anim = nil
	if an.finish != nil {
		an.finish(m)
	}
	m.status = fmt.Sprintf("%s done in %d steps", an.label, an.steps)
	logging.Logger().Debug("animation finished", "kind", an.label, "steps", an.steps)
	return nil
}

func (m *Model) cancelAnim() {
	if m.anim == nil {
		return
	}
	m.anim.stop()
	m.status = fmt.Sprintf("%s cancelled after %d steps", m.anim.label, m.anim.steps)
	m.anim = nil
}
