package styles

import "github.com/display-labs/displayctl/internal/theme"

// Tokens defines the semantic color roles for the TUI.
type Tokens struct {
	Background string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Warning    string
	Error      string
}

// DefaultTokens is the baseline palette, used when no Omarchy theme is
// resolvable.
var DefaultTokens = Tokens{
	Background: "#1e1e2e",
	Text:       "#cdd6f4",
	TextMuted:  "#6c7086",
	Border:     "#45475a",
	Accent:     "#89b4fa",
	Focus:      "#a6e3a1",
	Warning:    "#f9e2af",
	Error:      "#f38ba8",
}

// FromPalette maps theme color roles onto TUI tokens, keeping the defaults
// for roles the palette does not define. lipgloss accepts both hex and
// rgb() literals, so values pass through unconverted.
func FromPalette(p theme.Palette) Tokens {
	tokens := DefaultTokens

	apply := func(dst *string, role string) {
		if v, ok := p[role]; ok && v != "" {
			*dst = v
		}
	}

	apply(&tokens.Background, theme.RoleBackground)
	apply(&tokens.Text, theme.RoleForeground)
	apply(&tokens.Accent, theme.RolePrimary)
	apply(&tokens.Focus, theme.RoleAccent)
	apply(&tokens.Border, theme.RoleBorder)

	return tokens
}
