package permissions

const (
	defaultVisibilityPathConstant = "~"
)

// Configuration stores the paths reported by the visibility command.
type Configuration struct {
	Paths []string `mapstructure:"paths"`
}

// DefaultConfiguration reports the home directory.
func DefaultConfiguration() Configuration {
	return Configuration{Paths: []string{defaultVisibilityPathConstant}}
}

// DefaultConfigurationValues exposes the visibility defaults keyed for the configuration loader.
func DefaultConfigurationValues(prefix string) map[string]any {
	return map[string]any{
		prefix + ".paths": DefaultConfiguration().Paths,
	}
}
