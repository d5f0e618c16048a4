package tui

import (
	"fmt"
	"strings"

	"github.com/display-labs/displayctl/internal/hypr"
	"github.com/display-labs/displayctl/internal/sunset"
)

const sliderWidth = 24

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Display Control"))
	b.WriteString("\n\n")

	b.WriteString(m.section(sectionBrightness, "Brightness", m.brightnessView()))
	b.WriteString("\n")
	b.WriteString(m.section(sectionNightLight, "Night Light", m.nightLightView()))
	b.WriteString("\n")
	b.WriteString(m.section(sectionRotation, "Rotation", m.rotationView()))
	b.WriteString("\n")
	b.WriteString(m.section(sectionResolution, "Resolution & Refresh Rate", m.resolutionView()))
	b.WriteString("\n")

	if m.lastErr != "" {
		b.WriteString(m.styles.Error.Render(m.lastErr))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Muted.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab/j/k focus | h/l adjust | space toggle | enter apply | m monitor | r refresh | q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) section(s section, title, body string) string {
	style := m.styles.Section
	if m.focus == s {
		style = m.styles.SectionFocus
	}
	content := m.styles.Title.Render(title) + "\n" + body
	return style.Render(content) + "\n"
}

func (m model) brightnessView() string {
	return fmt.Sprintf("%s %3d%%", m.slider(m.brightnessPct), m.brightnessPct)
}

func (m model) nightLightView() string {
	state := m.styles.Muted.Render("off")
	if m.nightOn {
		state = m.styles.Accent.Render("on")
	}
	kelvin := sunset.PercentToTemp(m.warmthPct)
	return fmt.Sprintf("[%s]  %s %dK", state, m.slider(m.warmthPct), kelvin)
}

func (m model) rotationView() string {
	var parts []string
	for _, o := range hypr.Orientations() {
		label := o.String()
		if o == m.orientation {
			label = m.styles.Selected.Render(" " + label + " ")
		} else {
			label = m.styles.Text.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m model) resolutionView() string {
	if len(m.monitors) == 0 {
		return m.styles.Muted.Render("No monitors detected.")
	}

	mon := m.monitors[m.monIdx]
	modes := m.currentModes()

	var mode string
	if m.modeIdx < len(modes) {
		mode = modes[m.modeIdx].Resolution() + " @ " + modes[m.modeIdx].Refresh()
	}

	return fmt.Sprintf("%s  %s  (%d/%d)",
		m.styles.Accent.Render(mon.Name),
		m.styles.Selected.Render(" "+mode+" "),
		m.modeIdx+1, len(modes))
}

func (m model) slider(percent int) string {
	filled := percent * sliderWidth / 100
	if filled > sliderWidth {
		filled = sliderWidth
	}
	return m.styles.SliderFill.Render(strings.Repeat("█", filled)) +
		m.styles.SliderEmpty.Render(strings.Repeat("░", sliderWidth-filled))
}
