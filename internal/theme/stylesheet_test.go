package theme

import (
	"strings"
	"testing"
)

func TestGenerateEmptyMatchesDefaultedRoles(t *testing.T) {
	// Roles whose fixed fallback equals the built-in palette value must
	// render identically whether the palette is empty or explicit. That
	// covers background, foreground, primary, and border; secondary and
	// accent intentionally differ between the two sources.
	empty := Generate(Palette{})
	def := Generate(DefaultPalette())

	for _, line := range []string{
		"window { background-color: #1e1e2e; color: #cdd6f4; }",
		"frame { margin: 10px; border: 1px solid #45475a; border-radius: 8px; padding: 12px; }",
		"scale highlight { background-color: #89b4fa; }",
		"label { font-size: 16px; margin: 0 10px; color: #cdd6f4; }",
	} {
		if !strings.Contains(empty, line) {
			t.Fatalf("empty palette output missing %q:\n%s", line, empty)
		}
		if !strings.Contains(def, line) {
			t.Fatalf("default palette output missing %q:\n%s", line, def)
		}
	}
}

func TestGenerateNeverEmitsEmptyColor(t *testing.T) {
	palettes := []Palette{
		{},
		{"background": ""},
		{"accent": "", "primary": "", "secondary": ""},
		DefaultPalette(),
	}

	for _, p := range palettes {
		css := Generate(p)
		if css == "" {
			t.Fatal("generated stylesheet is empty")
		}
		if strings.Contains(css, ": ;") || strings.Contains(css, ":;") {
			t.Fatalf("stylesheet contains an empty color value:\n%s", css)
		}
	}
}

func TestGeneratePrimaryFallsBackToAccent(t *testing.T) {
	css := Generate(Palette{"accent": "#a6e3a1"})
	if !strings.Contains(css, "scale highlight { background-color: #a6e3a1; }") {
		t.Fatalf("expected primary to resolve to accent:\n%s", css)
	}
}

func TestGenerateButtonFallbacks(t *testing.T) {
	// Button background comes from secondary; hover comes from accent then
	// primary.
	css := Generate(Palette{
		"secondary": "#f5c2e7",
		"primary":   "#89b4fa",
	})
	if !strings.Contains(css, "background-color: #f5c2e7; border: none") {
		t.Fatalf("expected button background from secondary:\n%s", css)
	}
	if !strings.Contains(css, "button:hover { background-color: #89b4fa; }") {
		t.Fatalf("expected hover fallback to primary:\n%s", css)
	}
}

func TestGenerateUsesOverrides(t *testing.T) {
	css := Generate(Palette{
		"background": "#000000",
		"foreground": "rgb(255, 255, 255)",
	})
	if !strings.Contains(css, "window { background-color: #000000; color: rgb(255, 255, 255); }") {
		t.Fatalf("expected overrides applied verbatim:\n%s", css)
	}
}

func TestGenerateSelectorSet(t *testing.T) {
	css := Generate(DefaultPalette())
	for _, selector := range []string{
		"window {", "frame {", "scale highlight {", "button {",
		"button:hover {", "label {", "dropdown, combobox {",
		"dropdown:hover, combobox:hover {",
	} {
		if !strings.Contains(css, selector) {
			t.Fatalf("stylesheet missing selector %q:\n%s", selector, css)
		}
	}
}
