package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitae/internal/config"
	"vitae/internal/display"
	"vitae/internal/host"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("229"))
	faceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func moodFace(m display.Mood) string {
	switch m {
	case display.MoodHappy:
		return "(◕‿◕)"
	case display.MoodMotivated:
		return "(ᵔ◡ᵔ)"
	case display.MoodSad:
		return "(╥☁╥)"
	case display.MoodExcited:
		return "(≧◡≦)"
	default:
		return "(•‿•)"
	}
}

type tickMsg time.Time

// simModel drives the plugin with synthetic host events and doubles as its
// display surface; bubbletea serializes Update calls so the plugin's
// callbacks stay single-threaded like they are under a real host.
type simModel struct {
	plugin      *host.AgePlugin
	interval    time.Duration
	captureRate float64
	rng         *rand.Rand

	order   []string
	labels  map[string]string
	widgets map[string]string
	mood    display.Mood
	status  string
	epochs  int
}

func newSimModel(plugin *host.AgePlugin, interval time.Duration, captureRate float64) *simModel {
	return &simModel{
		plugin:      plugin,
		interval:    interval,
		captureRate: captureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		labels:      make(map[string]string),
		widgets:     make(map[string]string),
	}
}

func (m *simModel) Init() tea.Cmd {
	m.plugin.OnDisplaySetup(m)
	m.plugin.OnDisplayRefresh(m)
	return m.tick()
}

func (m *simModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h":
			// Force a capture, handy when tuning point values.
			m.plugin.OnHandshake(m, syntheticCapture(m.rng))
			m.plugin.OnDisplayRefresh(m)
		}
	case tickMsg:
		m.epochs++
		m.plugin.OnEpoch(m)
		if m.rng.Float64() < m.captureRate {
			m.plugin.OnHandshake(m, syntheticCapture(m.rng))
		}
		m.plugin.OnDisplayRefresh(m)
		return m, m.tick()
	}
	return m, nil
}

func (m *simModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", faceStyle.Render(moodFace(m.mood)),
		helpStyle.Render(fmt.Sprintf("epoch %d", m.epochs))))
	for _, name := range m.order {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(m.labels[name]+":"), m.widgets[name]))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("h: capture  q: quit"))
	return panelStyle.Render(b.String())
}

// host.View implementation.

func (m *simModel) AddWidget(name, label, value string, pos config.Position) {
	if _, ok := m.widgets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.labels[name] = label
	m.widgets[name] = value
}

func (m *simModel) SetWidget(name, value string) {
	if _, ok := m.widgets[name]; ok {
		m.widgets[name] = value
	}
}

func (m *simModel) SetMood(mood display.Mood) {
	m.mood = mood
}

func (m *simModel) SetStatus(status string) {
	m.status = status
}
