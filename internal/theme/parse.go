package theme

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ParseColorFile reads key=value color definitions from path. An unreadable
// or empty file yields an empty palette; that is indistinguishable from a
// file defining no colors, and both mean "use the fallback palette".
func ParseColorFile(path string) Palette {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}
	}
	defer f.Close()

	return ParseColors(f)
}

// ParseColors parses color definitions from a reader, one key=value pair per
// line. Lines are trimmed first; empty lines and lines whose trimmed form
// starts with '#' are skipped. The comment check runs on the whole trimmed
// line, so a key that itself starts with '#' can never be defined; that
// quirk is kept deliberately.
func ParseColors(r io.Reader) Palette {
	colors := Palette{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == "" || !isColorValue(value) {
			// Not a color definition; other entries in the file are
			// ignored rather than treated as errors.
			continue
		}

		colors[key] = value
	}

	// A scan error midway leaves whatever parsed cleanly; the caller falls
	// back when that turns out to be nothing.
	return colors
}

// isColorValue reports whether a value looks like a color literal: at least
// four characters and prefixed "#" (hex) or "rgb" (functional notation).
// rgb() values are stored as-is since GTK CSS accepts them directly.
func isColorValue(v string) bool {
	if len(v) < 4 {
		return false
	}
	return strings.HasPrefix(v, "#") || strings.HasPrefix(v, "rgb")
}
