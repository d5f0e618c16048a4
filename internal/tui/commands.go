package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/display-labs/displayctl/internal/hypr"
	"github.com/display-labs/displayctl/internal/sunset"
)

// commandTimeout bounds every external tool invocation made from the TUI so
// a wedged tool cannot freeze the panel.
const commandTimeout = 5 * time.Second

type (
	monitorsMsg     []hypr.Monitor
	brightnessMsg   int
	themeChangedMsg struct{}
	statusMsg       string
	errMsg          struct{ err error }
)

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func (m model) loadMonitors() tea.Cmd {
	client := m.cfg.Hypr
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()
		return monitorsMsg(client.Monitors(ctx))
	}
}

func (m model) loadBrightness() tea.Cmd {
	client := m.cfg.Brightness
	logger := m.cfg.Logger
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		percent, err := client.Get(ctx)
		if err != nil {
			// Leave the slider at its default; brightness control may
			// simply be absent on this machine.
			logger.Debug().Err(err).Msg("brightness query failed")
			return nil
		}
		return brightnessMsg(percent)
	}
}

func (m model) setBrightness(percent int) tea.Cmd {
	client := m.cfg.Brightness
	logger := m.cfg.Logger
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := client.Set(ctx, percent); err != nil {
			// Slider actions are fire-and-forget; failures are logged, not
			// surfaced as a blocking error.
			logger.Debug().Err(err).Msg("brightness set failed")
		}
		return nil
	}
}

func (m model) enableNightLight() tea.Cmd {
	mgr := m.cfg.Sunset
	kelvin := sunset.PercentToTemp(m.warmthPct)
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := mgr.Enable(ctx, kelvin); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("night light on (%dK)", kelvin))
	}
}

func (m model) disableNightLight() tea.Cmd {
	mgr := m.cfg.Sunset
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := mgr.Disable(ctx); err != nil {
			return errMsg{err}
		}
		return statusMsg("night light off")
	}
}

func (m model) setTemperature(kelvin int) tea.Cmd {
	mgr := m.cfg.Sunset
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := mgr.SetTemperature(ctx, kelvin); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("%dK", kelvin))
	}
}

func (m model) applyRotation() tea.Cmd {
	client := m.cfg.Hypr
	orientation := m.orientation
	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := client.SetTransform(ctx, orientation); err != nil {
			return errMsg{err}
		}
		return statusMsg("rotated " + orientation.String())
	}
}

func (m model) applyMode() tea.Cmd {
	client := m.cfg.Hypr

	if m.monIdx >= len(m.monitors) {
		return nil
	}
	mon := m.monitors[m.monIdx]
	modes := m.currentModes()
	if m.modeIdx >= len(modes) {
		return nil
	}
	mode := modes[m.modeIdx]

	return func() tea.Msg {
		ctx, cancel := commandContext()
		defer cancel()

		if err := client.ApplyMode(ctx, mon.Name, mode, mon.X, mon.Y, mon.Scale); err != nil {
			return errMsg{fmt.Errorf("apply failed: %w", err)}
		}
		return statusMsg(fmt.Sprintf("%s set to %s @ %s", mon.Name, mode.Resolution(), mode.Refresh()))
	}
}
