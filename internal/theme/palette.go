// Package theme resolves Omarchy theme colors into a GTK stylesheet.
package theme

// Palette maps semantic color role names to hex or rgb() color literals.
// Role names are open-ended: the source file may define anything, and the
// stylesheet generator reads the subset it knows about.
type Palette map[string]string

// Color roles consulted by the stylesheet generator.
const (
	RoleBackground = "background"
	RoleForeground = "foreground"
	RolePrimary    = "primary"
	RoleSecondary  = "secondary"
	RoleAccent     = "accent"
	RoleBorder     = "border"
)

// DefaultPalette returns the built-in Catppuccin Mocha palette. It is the
// last-resort color source and is never empty.
func DefaultPalette() Palette {
	return Palette{
		RoleBackground: "#1e1e2e",
		RoleForeground: "#cdd6f4",
		RolePrimary:    "#89b4fa",
		RoleSecondary:  "#f5c2e7",
		RoleAccent:     "#a6e3a1",
		RoleBorder:     "#45475a",
	}
}

// get returns the palette value for key, or def when the key is absent or
// empty.
func (p Palette) get(key, def string) string {
	if v, ok := p[key]; ok && v != "" {
		return v
	}
	return def
}
