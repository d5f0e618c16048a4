package theme

// Load returns the effective palette: the parsed theme file when one exists
// and defines at least one color, otherwise the built-in default palette.
func Load() Palette {
	path := ResolvePath()
	if path == "" {
		return DefaultPalette()
	}

	colors := ParseColorFile(path)
	if len(colors) == 0 {
		return DefaultPalette()
	}

	return colors
}

// LoadAndGenerate resolves the theme file, parses it, and generates the
// stylesheet, falling back to the built-in palette when no file exists or
// parsing yields nothing. It never returns an empty string: every I/O
// failure degrades to the default palette.
func LoadAndGenerate() string {
	return Generate(Load())
}
