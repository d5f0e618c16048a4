package theme

import (
	"strings"
	"testing"
)

func TestParseColorsWellFormed(t *testing.T) {
	input := strings.Join([]string{
		"background=#1e1e2e",
		"foreground = #cdd6f4",
		"  accent=rgb(166, 227, 161)  ",
		"border\t=\t#45475a",
	}, "\n")

	colors := ParseColors(strings.NewReader(input))
	if len(colors) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(colors), colors)
	}

	want := map[string]string{
		"background": "#1e1e2e",
		"foreground": "#cdd6f4",
		"accent":     "rgb(166, 227, 161)",
		"border":     "#45475a",
	}
	for key, value := range want {
		if colors[key] != value {
			t.Fatalf("key %q: expected %q, got %q", key, value, colors[key])
		}
	}
}

func TestParseColorsSkipsMalformedLines(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"no equals", "background #1e1e2e"},
		{"short value", "background=#1e"},
		{"wrong prefix", "background=blue"},
		{"empty value", "background="},
		{"empty key", "=#1e1e2e"},
		{"comment", "# background=#1e1e2e"},
		{"indented comment", "   # accent=#a6e3a1"},
		{"blank", "   "},
	}

	for _, tc := range cases {
		colors := ParseColors(strings.NewReader(tc.line))
		if len(colors) != 0 {
			t.Fatalf("%s: expected no entries for %q, got %v", tc.name, tc.line, colors)
		}
	}
}

func TestParseColorsCommentRuleAppliesToWholeLine(t *testing.T) {
	// A key starting with '#' trips the comment check before the '=' split
	// is ever reached. Documented behavior, not a bug.
	colors := ParseColors(strings.NewReader("#special=#ffffff"))
	if len(colors) != 0 {
		t.Fatalf("expected '#'-prefixed key to be unparsable, got %v", colors)
	}
}

func TestParseColorsRgbPrefixAccepted(t *testing.T) {
	colors := ParseColors(strings.NewReader("primary=rgba(137,180,250,0.9)"))
	if colors["primary"] != "rgba(137,180,250,0.9)" {
		t.Fatalf("expected rgb-prefixed value accepted, got %v", colors)
	}
}

func TestParseColorFileMissing(t *testing.T) {
	colors := ParseColorFile("/nonexistent/theme/colors")
	if len(colors) != 0 {
		t.Fatalf("expected empty palette for missing file, got %v", colors)
	}
}
