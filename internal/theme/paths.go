package theme

import (
	"os"
	"path/filepath"
)

// Theme file names under the Omarchy config directory, in priority order.
const (
	colorsFileName = "colors"
	legacyFileName = "theme.conf"
)

// configBase returns the user configuration root, honoring XDG_CONFIG_HOME
// before falling back to ~/.config.
func configBase() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// candidatePaths lists the theme file locations checked by ResolvePath, most
// specific first.
func candidatePaths() []string {
	base := configBase()
	if base == "" {
		return nil
	}
	root := filepath.Join(base, "omarchy")
	return []string{
		filepath.Join(root, "theme", colorsFileName),
		filepath.Join(root, legacyFileName),
	}
}

// ResolvePath returns the first existing theme file, or "" when none exists.
// Existence is the only check made here; content validation happens at parse
// time.
func ResolvePath() string {
	for _, path := range candidatePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
