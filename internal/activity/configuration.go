package activity

import (
	"strings"
)

const (
	defaultHomePathConstant     = "~"
	onDemandSessionRootConstant = "~/ondemand/data/sys/dashboard/batch_connect/sys/"
	onDemandJupyterNameConstant = "jupyter"
	onDemandRStudioNameConstant = "rstudio"
)

// Configuration stores the paths whose modification times proxy activity.
type Configuration struct {
	Home     string                `mapstructure:"home"`
	OnDemand []OnDemandApplication `mapstructure:"ondemand"`
}

// OnDemandApplication pairs an On-Demand application with the path tracking its sessions.
type OnDemandApplication struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// DefaultConfiguration tracks the home directory and the common Open OnDemand session directories.
func DefaultConfiguration() Configuration {
	applicationNames := []string{
		onDemandJupyterNameConstant,
		onDemandRStudioNameConstant,
	}

	applications := make([]OnDemandApplication, 0, len(applicationNames))
	for _, applicationName := range applicationNames {
		applications = append(applications, OnDemandApplication{
			Name: applicationName,
			Path: onDemandSessionRootConstant + applicationName,
		})
	}

	return Configuration{Home: defaultHomePathConstant, OnDemand: applications}
}

// DefaultConfigurationValues exposes the activity defaults keyed for the configuration loader.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	applications := make([]map[string]any, 0, len(defaults.OnDemand))
	for _, application := range defaults.OnDemand {
		applications = append(applications, map[string]any{
			"name": application.Name,
			"path": application.Path,
		})
	}
	return map[string]any{
		prefix + ".home":     defaults.Home,
		prefix + ".ondemand": applications,
	}
}

// Sanitize trims values and drops applications without a name or path.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := Configuration{Home: strings.TrimSpace(configuration.Home)}
	if len(sanitized.Home) == 0 {
		sanitized.Home = defaultHomePathConstant
	}
	for _, application := range configuration.OnDemand {
		trimmedApplication := OnDemandApplication{
			Name: strings.TrimSpace(application.Name),
			Path: strings.TrimSpace(application.Path),
		}
		if len(trimmedApplication.Name) == 0 || len(trimmedApplication.Path) == 0 {
			continue
		}
		sanitized.OnDemand = append(sanitized.OnDemand, trimmedApplication)
	}
	return sanitized
}

// Application finds a configured application by case-insensitive name.
func (configuration Configuration) Application(name string) (OnDemandApplication, bool) {
	trimmedName := strings.TrimSpace(name)
	for _, application := range configuration.OnDemand {
		if strings.EqualFold(application.Name, trimmedName) {
			return application, true
		}
	}
	return OnDemandApplication{}, false
}
