// Package tui is a live terminal trackball: dragging with the left
// mouse button orbits a wireframe cube rendered on a braille canvas.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trackball/internal/camera"
	"github.com/san-kum/trackball/internal/geom"
	"github.com/san-kum/trackball/internal/orbit"
	"github.com/san-kum/trackball/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	width  int
	height int
	canvas *viz.Canvas
	rig    *camera.Rig

	state    orbit.State[float64]
	dragging bool
	last     geom.Quat[float64]
	samples  int
}

func newModel() model {
	return model{
		width:  80,
		height: 24,
		canvas: viz.NewCanvas(80, 21),
		rig:    camera.NewRig(),
		last:   geom.QuatIdent[float64](),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := m.height - 3
		if rows < 4 {
			rows = 4
		}
		cols := m.width
		if cols < 8 {
			cols = 8
		}
		m.canvas = viz.NewCanvas(cols, rows)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.rig.Reset()
			m.state.Reset()
			m.dragging = false
			m.last = geom.QuatIdent[float64]()
			m.samples = 0
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.dragging = true
				m.track(msg.X, msg.Y)
			}
		case tea.MouseActionMotion:
			if m.dragging {
				m.track(msg.X, msg.Y)
			}
		case tea.MouseActionRelease:
			if m.dragging {
				m.dragging = false
				// One reset per press/release cycle, on the release edge.
				m.state.Reset()
			}
		}
	}

	return m, nil
}

// track feeds one pointer sample in subpixel resolution, four vertical
// and two horizontal subpixels per cell.
func (m *model) track(x, y int) {
	q := m.state.Compute(
		float64(x*2), float64(y*4),
		float64(m.canvas.Width*2), float64(m.canvas.Height*4),
	)
	m.rig.Apply(q)
	m.last = q
	m.samples++
}

func (m model) View() string {
	m.canvas.Clear()

	scale := float64(min(m.canvas.Width*2, m.canvas.Height*4)) / 4
	q := m.rig.Orientation()
	m.canvas.DrawWireframe(viz.Cube(1), q, scale)
	m.canvas.DrawWireframe(viz.Axes(1.6), q, scale)

	mode := dim.Render("idle")
	if m.dragging {
		mode = yellow.Render("drag")
	}

	status := fmt.Sprintf("%s  %s  rot %s  angle %s  samples %s",
		cyan.Render("trackball"),
		mode,
		white.Render(fmt.Sprintf("(%+.3f %+.3f %+.3f %+.3f)", m.last.X, m.last.Y, m.last.Z, m.last.W)),
		white.Render(fmt.Sprintf("%6.3f", m.rig.Angle())),
		white.Render(fmt.Sprintf("%d", m.samples)),
	)
	help := dim.Render("drag: orbit · r: reset · q: quit")

	return status + "\n" + m.canvas.String() + help
}

// Run starts the live view and blocks until it quits.
func Run() error {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
