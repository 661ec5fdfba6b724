package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/reaktor/internal/integrators"
	"github.com/san-kum/reaktor/internal/reactor"
	"github.com/san-kum/reaktor/internal/solver"
)

const (
	liveFPS     = 30
	liveHistory = 600
)

var (
	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Live animates a simulation by stepping the assembled derivative with
// fixed-step RK4 in wall-clock time. It trades the adaptive integrator's
// accuracy for a steady frame cadence; authoritative results come from
// the solver.
type Live struct {
	problem solver.Problem
	deriv   integrators.DerivFunc
	stepper *integrators.RK4

	y  []float64
	t  float64
	dt float64

	powerHist []float64
	running   bool
	done      bool
}

func NewLive(p solver.Problem, dt float64) *Live {
	return &Live{
		problem: p,
		deriv:   p.Deriv(),
		stepper: integrators.NewRK4(),
		y:       p.InitialState().ToArray(),
		t:       p.TStart,
		dt:      dt,
		running: true,
	}
}

func (m *Live) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/liveFPS, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.y = m.problem.InitialState().ToArray()
			m.t = m.problem.TStart
			m.powerHist = nil
			m.done = false
		}
	case tickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance runs one frame's worth of simulated time.
func (m *Live) advance() {
	frame := 1.0 / liveFPS
	steps := int(frame / m.dt)
	if steps < 1 {
		steps = 1
	}
	if steps > 2000 {
		steps = 2000
	}

	for i := 0; i < steps; i++ {
		if m.t >= m.problem.TMax {
			m.done = true
			break
		}
		m.y = m.stepper.Step(m.deriv, m.y, m.t, m.dt)
		m.t += m.dt
	}

	m.powerHist = append(m.powerHist, m.y[reactor.CompNeutronPopulation])
	if len(m.powerHist) > liveHistory {
		m.powerHist = m.powerHist[1:]
	}
}

func (m *Live) View() string {
	s := reactor.FromArray(m.y)

	var chart string
	if len(m.powerHist) > 1 {
		chart = asciigraph.Plot(m.powerHist,
			asciigraph.Height(12),
			asciigraph.Width(60),
			asciigraph.Caption("Power [W]"),
		)
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.done {
		status = "finished"
	}

	stats := statsStyle.Render(fmt.Sprintf(
		"t          %8.3f s  (%s)\n"+
			"power      %12.5g W\n"+
			"T fuel     %8.2f K\n"+
			"T mod      %8.2f K\n"+
			"drum       %8.2f deg\n"+
			"reactivity %+.3e dk",
		m.t, status, s.NeutronPopulation, s.TempFuel, s.TempMod,
		s.DrumAngle, s.TotalReactivity()))

	help := helpStyle.Render("space pause · r reset · q quit")

	return titleStyle.Render("reaktor live") + "\n\n" +
		graphStyle.Render(chart) + "\n" + stats + "\n" + help + "\n"
}

// RunLive starts the live view and blocks until it exits.
func RunLive(p solver.Problem, dt float64) error {
	_, err := tea.NewProgram(NewLive(p, dt)).Run()
	return err
}
