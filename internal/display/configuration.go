package display

const (
	defaultGutterConstant = "  "
)

// Configuration stores the geometry shared by every dashboard section.
type Configuration struct {
	Width         int    `mapstructure:"width"`
	Gutter        string `mapstructure:"gutter"`
	MaxCharacters int    `mapstructure:"max_chars"`
}

// ConfigurationProvider returns the current display configuration.
type ConfigurationProvider func() Configuration

// PaletteProvider returns the palette used to colorize output.
type PaletteProvider func() Palette

// DefaultConfiguration supplies baseline display values; a zero width means the terminal width.
func DefaultConfiguration() Configuration {
	return Configuration{
		Width:         0,
		Gutter:        defaultGutterConstant,
		MaxCharacters: DefaultMaxCharacters,
	}
}

// DefaultConfigurationValues exposes the display defaults keyed for the configuration loader.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		prefix + ".width":     defaults.Width,
		prefix + ".gutter":    defaults.Gutter,
		prefix + ".max_chars": defaults.MaxCharacters,
	}
}

// Resolve applies defaults to unset values and replaces a non-positive width with the terminal width of os.Stdout.
func (configuration Configuration) Resolve() Configuration {
	resolved := configuration
	if resolved.MaxCharacters <= 0 {
		resolved.MaxCharacters = DefaultMaxCharacters
	}
	resolved.Width = ResolveWidth(resolved.Width)
	return resolved
}

// ResolveConfiguration invokes provider when present and resolves the result.
func ResolveConfiguration(provider ConfigurationProvider) Configuration {
	configuration := DefaultConfiguration()
	if provider != nil {
		configuration = provider()
	}
	return configuration.Resolve()
}

// ResolvePalette invokes provider when present, falling back to DetectPalette on os.Stdout.
func ResolvePalette(provider PaletteProvider) Palette {
	if provider != nil {
		if palette := provider(); palette != nil {
			return palette
		}
	}
	return DetectPalette()
}
