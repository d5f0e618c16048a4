package theme

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigDir points theme resolution at a temp config root and returns
// the omarchy directory inside it.
func withConfigDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	return filepath.Join(base, "omarchy")
}

func writeThemeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolvePathPriority(t *testing.T) {
	root := withConfigDir(t)

	if got := ResolvePath(); got != "" {
		t.Fatalf("expected no theme file, got %q", got)
	}

	legacy := filepath.Join(root, "theme.conf")
	writeThemeFile(t, legacy, "background=#1e1e2e\n")
	if got := ResolvePath(); got != legacy {
		t.Fatalf("expected legacy path %q, got %q", legacy, got)
	}

	// theme/colors wins over theme.conf when both exist.
	colors := filepath.Join(root, "theme", "colors")
	writeThemeFile(t, colors, "background=#11111b\n")
	if got := ResolvePath(); got != colors {
		t.Fatalf("expected %q to take precedence, got %q", colors, got)
	}
}

func TestLoadAndGenerateNoThemeFile(t *testing.T) {
	withConfigDir(t)

	css := LoadAndGenerate()
	if css == "" {
		t.Fatal("expected non-empty stylesheet")
	}
	if css != Generate(DefaultPalette()) {
		t.Fatal("expected default palette stylesheet when no theme file exists")
	}
}

func TestLoadAndGenerateEmptyFile(t *testing.T) {
	root := withConfigDir(t)
	writeThemeFile(t, filepath.Join(root, "theme", "colors"), "")

	if css := LoadAndGenerate(); css != Generate(DefaultPalette()) {
		t.Fatal("expected fallback stylesheet for empty theme file")
	}
}

func TestLoadAndGenerateNoValidEntries(t *testing.T) {
	root := withConfigDir(t)
	writeThemeFile(t, filepath.Join(root, "theme", "colors"),
		"# just a comment\nnot a color line\nkey=blue\n")

	if css := LoadAndGenerate(); css != Generate(DefaultPalette()) {
		t.Fatal("expected fallback stylesheet when no valid colors parse")
	}
}

func TestLoadAndGenerateWithOverrides(t *testing.T) {
	root := withConfigDir(t)
	writeThemeFile(t, filepath.Join(root, "theme", "colors"),
		"background=#11111b\nforeground=#f2f2f7\n")

	css := LoadAndGenerate()
	want := Generate(Palette{"background": "#11111b", "foreground": "#f2f2f7"})
	if css != want {
		t.Fatalf("expected override stylesheet, got:\n%s", css)
	}
}

func TestLoadAndGenerateMissingHome(t *testing.T) {
	// With no resolvable config base at all, resolution still degrades to
	// the built-in palette.
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	css := LoadAndGenerate()
	if css == "" {
		t.Fatal("expected non-empty stylesheet without HOME")
	}
}
