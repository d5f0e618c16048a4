package theme

import (
	"fmt"
	"strings"
)

// Fixed fallback colors used when a role is absent from both the palette and
// its chained fallback.
const (
	defaultBackground  = "#1e1e2e"
	defaultForeground  = "#cdd6f4"
	defaultAccent      = "#89b4fa"
	defaultBorder      = "#45475a"
	defaultButtonBg    = "#313244"
	defaultButtonHover = "#45475a"
)

// Generate produces the GTK stylesheet for a palette. It is pure and
// deterministic: every color it emits resolves through a chained fallback,
// so the output never contains an empty value.
//
// Fallback chains: primary falls back to accent; the button background falls
// back to secondary; the button hover color falls back to accent then
// primary. The remaining roles have fixed defaults.
func Generate(p Palette) string {
	bg := p.get(RoleBackground, defaultBackground)
	fg := p.get(RoleForeground, defaultForeground)

	accent := p.get(RoleAccent, defaultAccent)
	primary := p.get(RolePrimary, accent)
	border := p.get(RoleBorder, defaultBorder)

	buttonBg := p.get(RoleSecondary, defaultButtonBg)
	buttonHover := p.get(RoleAccent, primary)
	if buttonHover == "" {
		buttonHover = defaultButtonHover
	}

	var css strings.Builder
	fmt.Fprintf(&css, "window { background-color: %s; color: %s; }\n", bg, fg)
	fmt.Fprintf(&css, "frame { margin: 10px; border: 1px solid %s; border-radius: 8px; padding: 12px; }\n", border)
	fmt.Fprintf(&css, "scale highlight { background-color: %s; }\n", primary)
	fmt.Fprintf(&css, "button { margin: 4px; padding: 8px; background-color: %s; border: none; border-radius: 4px; color: %s; }\n", buttonBg, fg)
	fmt.Fprintf(&css, "button:hover { background-color: %s; }\n", buttonHover)
	fmt.Fprintf(&css, "label { font-size: 16px; margin: 0 10px; color: %s; }\n", fg)
	fmt.Fprintf(&css, "dropdown, combobox { background-color: %s; color: %s; border: 1px solid %s; border-radius: 4px; padding: 6px; }\n", buttonBg, fg, border)
	fmt.Fprintf(&css, "dropdown:hover, combobox:hover { background-color: %s; }\n", buttonHover)

	return css.String()
}
