package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballsim/internal/world"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 300
)

type TickMsg time.Time

// Model ticks the world at a fixed frame rate and draws the window box onto
// a braille canvas. Keyboard input drives the run/pause/step controller; the
// physics core itself never sees any of this state.
type Model struct {
	w       *world.World
	ctrl    *world.Controller
	canvas  *Canvas
	dt      float64
	t       float64
	fps     int
	bodies  int
	energy  []float64
	lastErr error
}

func NewModel(w *world.World, dt float64, fps, bodies int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		w:      w,
		ctrl:   world.NewController(),
		canvas: NewCanvas(canvasWidth, canvasHeight),
		dt:     dt,
		fps:    fps,
		bodies: bodies,
		energy: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.ctrl.Toggle()
		case "s":
			m.ctrl.StepForward(1)
		case "r":
			m.w.Reset(m.bodies)
			m.t = 0
			m.energy = m.energy[:0]
		}
	case TickMsg:
		if m.ctrl.ShouldTick() {
			if _, err := m.w.Tick(m.dt); err != nil {
				m.lastErr = err
			} else {
				m.t += m.dt
				m.energy = append(m.energy, m.w.KineticEnergy())
				if len(m.energy) > historyCapacity {
					m.energy = m.energy[1:]
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.draw()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("ballsim") + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%.2fs", m.t))
	row("bodies", fmt.Sprintf("%d", m.w.Len()))
	row("settled", fmt.Sprintf("%d", m.w.FixedCount()))
	row("despawned", fmt.Sprintf("%d", m.w.Dropped()))
	row("kinetic", fmt.Sprintf("%.2f", m.w.KineticEnergy()))
	if m.ctrl.Phase() != world.PhaseRunning {
		stats.WriteString(pausedStyle.Render(m.ctrl.Phase().String()) + "\n")
	}
	if m.lastErr != nil {
		stats.WriteString(pausedStyle.Render("error: "+m.lastErr.Error()) + "\n")
	}

	if len(m.energy) > 1 {
		graph := asciigraph.Plot(m.energy,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("kinetic energy"),
		)
		stats.WriteString(graphStyle.Render(graph))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
	help := helpStyle.Render("space pause · s step · r reset · q quit")
	return main + "\n" + help
}

// draw maps render-space positions into canvas sub-pixels. The window box
// spans the full canvas; y grows upward in the world and downward on screen.
func (m Model) draw() {
	m.canvas.Clear()

	p := m.w.Params()
	subW := float64(canvasWidth * 2)
	subH := float64(canvasHeight * 4)

	for _, b := range m.w.Bodies() {
		tr := b.RenderPosition(p.Scale)
		x := (tr.X + p.WindowWidth/2) / p.WindowWidth * subW
		y := (1 - (tr.Y+p.WindowHeight/2)/p.WindowHeight) * subH

		r := int(b.Size / p.WindowWidth * subW / 2)
		if b.Fixed {
			// Settled bodies render as a single dot.
			m.canvas.Set(int(x), int(y))
			continue
		}
		m.canvas.FillCircle(int(x), int(y), r)
	}
}
