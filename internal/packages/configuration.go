package packages

import (
	"strings"
)

// Configuration stores the package names highlighted in the grid.
type Configuration struct {
	Red   []string `mapstructure:"red"`
	Green []string `mapstructure:"green"`
}

// DefaultConfiguration supplies empty highlight sets.
func DefaultConfiguration() Configuration {
	return Configuration{Red: []string{}, Green: []string{}}
}

// DefaultConfigurationValues exposes the packages defaults keyed for the configuration loader.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		prefix + ".red":   defaults.Red,
		prefix + ".green": defaults.Green,
	}
}

// Sanitize trims configured names and removes empty entries.
func (configuration Configuration) Sanitize() Configuration {
	return Configuration{
		Red:   sanitizeNames(configuration.Red),
		Green: sanitizeNames(configuration.Green),
	}
}

// Extend returns a configuration whose sets also contain the provided names.
func (configuration Configuration) Extend(red []string, green []string) Configuration {
	extended := Configuration{
		Red:   append(append([]string{}, configuration.Red...), red...),
		Green: append(append([]string{}, configuration.Green...), green...),
	}
	return extended.Sanitize()
}

func sanitizeNames(candidateNames []string) []string {
	sanitizedNames := make([]string, 0, len(candidateNames))
	for _, candidateName := range candidateNames {
		trimmedName := strings.TrimSpace(candidateName)
		if len(trimmedName) == 0 {
			continue
		}
		sanitizedNames = append(sanitizedNames, trimmedName)
	}
	return sanitizedNames
}
