// Package tui implements the displayctl terminal user interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/display-labs/displayctl/internal/brightness"
	"github.com/display-labs/displayctl/internal/hypr"
	"github.com/display-labs/displayctl/internal/sunset"
	"github.com/display-labs/displayctl/internal/theme"
	"github.com/display-labs/displayctl/internal/tui/styles"
)

// Config wires the TUI to its collaborators.
type Config struct {
	Hypr        *hypr.Client
	Brightness  *brightness.Client
	Sunset      *sunset.Manager
	Logger      zerolog.Logger
	FadeSeconds float64
}

// Run launches the control panel and blocks until it exits. The Omarchy
// theme is applied at startup and live-reloaded while the panel is open.
func Run(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())

	var watcher theme.Watcher
	watcher.Subscribe(func() {
		program.Send(themeChangedMsg{})
	})
	defer watcher.Unsubscribe()

	_, err := program.Run()
	return err
}

type section int

const (
	sectionBrightness section = iota
	sectionNightLight
	sectionRotation
	sectionResolution
	sectionCount
)

type model struct {
	cfg    Config
	styles styles.Styles

	width  int
	height int
	focus  section

	brightnessPct int
	nightOn       bool
	warmthPct     int

	orientation hypr.Orientation

	monitors []hypr.Monitor
	monIdx   int
	modeIdx  int

	status  string
	lastErr string
}

func initialModel(cfg Config) model {
	return model{
		cfg:           cfg,
		styles:        styles.Build(styles.FromPalette(theme.Load())),
		brightnessPct: 80,
		warmthPct:     sunset.TempToPercent(4500),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadMonitors(), m.loadBrightness())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case monitorsMsg:
		m.monitors = msg
		if m.monIdx >= len(m.monitors) {
			m.monIdx = 0
		}
		m.modeIdx = m.currentModeIndex()

	case brightnessMsg:
		m.brightnessPct = brightness.Clamp(int(msg))

	case themeChangedMsg:
		m.styles = styles.Build(styles.FromPalette(theme.Load()))

	case statusMsg:
		m.status = string(msg)
		m.lastErr = ""

	case errMsg:
		m.lastErr = msg.err.Error()
		m.status = ""
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "down", "j":
		m.focus = (m.focus + 1) % sectionCount
		return m, nil

	case "shift+tab", "up", "k":
		m.focus = (m.focus + sectionCount - 1) % sectionCount
		return m, nil

	case "r":
		return m, m.loadMonitors()

	case "left", "h":
		return m.adjust(-1)

	case "right", "l":
		return m.adjust(1)

	case " ":
		if m.focus == sectionNightLight {
			m.nightOn = !m.nightOn
			if m.nightOn {
				return m, m.enableNightLight()
			}
			return m, m.disableNightLight()
		}

	case "m":
		if m.focus == sectionResolution && len(m.monitors) > 0 {
			m.monIdx = (m.monIdx + 1) % len(m.monitors)
			m.modeIdx = m.currentModeIndex()
		}

	case "enter":
		switch m.focus {
		case sectionRotation:
			return m, m.applyRotation()
		case sectionResolution:
			return m, m.applyMode()
		}
	}

	return m, nil
}

// adjust reacts to left/right on the focused section.
func (m model) adjust(dir int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case sectionBrightness:
		m.brightnessPct = brightness.Clamp(m.brightnessPct + dir*5)
		return m, m.setBrightness(m.brightnessPct)

	case sectionNightLight:
		m.warmthPct = clampPercent(m.warmthPct + dir*5)
		if m.nightOn {
			return m, m.setTemperature(sunset.PercentToTemp(m.warmthPct))
		}
		return m, nil

	case sectionRotation:
		all := hypr.Orientations()
		idx := (int(m.orientation) + dir + len(all)) % len(all)
		m.orientation = all[idx]
		return m, nil

	case sectionResolution:
		modes := m.currentModes()
		if len(modes) == 0 {
			return m, nil
		}
		m.modeIdx = (m.modeIdx + dir + len(modes)) % len(modes)
		return m, nil
	}

	return m, nil
}

func (m model) currentModes() []hypr.Mode {
	if m.monIdx >= len(m.monitors) {
		return nil
	}
	return m.monitors[m.monIdx].Modes
}

// currentModeIndex finds the active mode within the selected monitor's mode
// list, so the selection starts on what is currently applied.
func (m model) currentModeIndex() int {
	modes := m.currentModes()
	if m.monIdx >= len(m.monitors) {
		return 0
	}
	current := m.monitors[m.monIdx].Current
	for i, mode := range modes {
		if mode == current {
			return i
		}
	}
	return 0
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
