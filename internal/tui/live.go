// Package tui runs a scenario under a live terminal monitor showing
// population counts as the crystal grows. It only reads engine state at
// RunUntil boundaries, between frames.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/crystalsim/internal/metrics"
	"github.com/san-kum/crystalsim/internal/rules"
	"github.com/san-kum/crystalsim/internal/scenario"
	"github.com/san-kum/crystalsim/internal/viz"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	sc       *scenario.Scenario
	duration float64
	interval float64

	paused bool
	done   bool

	census    []int
	crystals  []float64
	particles []float64

	width int
}

func newModel(sc *scenario.Scenario, duration, interval float64) model {
	snap := sc.Engine().Snapshot()
	return model{
		sc:       sc,
		duration: duration,
		interval: interval,
		census:   metrics.Census(snap, len(rules.States())),
		width:    80,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.paused = !m.paused
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		if !m.paused && !m.done {
			eng := m.sc.Engine()
			next := eng.Now() + m.interval
			if next >= m.duration {
				next = m.duration
				m.done = true
			}
			eng.RunUntil(next)

			snap := eng.Snapshot()
			m.census = metrics.Census(snap, len(rules.States()))
			m.crystals = append(m.crystals, float64(m.census[rules.Crystal]))
			m.particles = append(m.particles, float64(m.census[rules.Particle]))
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	width := m.width
	if width < 40 {
		width = 40
	}

	b.WriteString(viz.Title.Render("crystalsim live") + "\n")
	b.WriteString(viz.Separator(width) + "\n\n")

	eng := m.sc.Engine()
	status := viz.StatusRunning.Render("running")
	switch {
	case m.done:
		status = viz.StatusDone.Render("done")
	case m.paused:
		status = viz.StatusDone.Render("paused")
	}
	b.WriteString(fmt.Sprintf("%s  t=%s / %.1f  events=%s\n",
		status,
		viz.MetricValue.Render(fmt.Sprintf("%.2f", eng.Now())),
		m.duration,
		viz.MetricValue.Render(fmt.Sprintf("%d", eng.Executed())),
	))
	b.WriteString(viz.ProgressBar(eng.Now()/m.duration, width-10) + "\n\n")

	for i, name := range rules.States() {
		b.WriteString(fmt.Sprintf("%s %s  ",
			viz.MetricLabel.Render(name+":"),
			viz.MetricValue.Render(fmt.Sprintf("%d", m.census[i]))))
	}
	b.WriteString("\n\n")

	if len(m.crystals) > 1 {
		b.WriteString(viz.MetricLabel.Render("crystal cells") + "\n")
		b.WriteString(asciigraph.Plot(m.crystals,
			asciigraph.Height(8),
			asciigraph.Width(width-12),
		) + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("space pause · q quit") + "\n")
	return b.String()
}

// Run drives the scenario to completion under the monitor.
func Run(sc *scenario.Scenario, duration, interval float64) error {
	p := tea.NewProgram(newModel(sc, duration, interval))
	_, err := p.Run()
	return err
}
