// Package styles builds the lipgloss styles for the displayctl TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Tokens Tokens

	Title        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Section      lipgloss.Style
	SectionFocus lipgloss.Style
	SliderFill   lipgloss.Style
	SliderEmpty  lipgloss.Style
	Selected     lipgloss.Style
}

// Default builds styles from the baseline tokens.
func Default() Styles {
	return Build(DefaultTokens)
}

// Build converts theme tokens into lipgloss styles.
func Build(tokens Tokens) Styles {
	section := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tokens.Border)).
		Padding(0, 1)

	return Styles{
		Tokens:       tokens,
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:         lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Section:      section,
		SectionFocus: section.BorderForeground(lipgloss.Color(tokens.Focus)),
		SliderFill:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		SliderEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Background)).Background(lipgloss.Color(tokens.Accent)),
	}
}
