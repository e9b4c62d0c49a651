package status

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/activity"
	"github.com/temirov/panes/internal/display"
	"github.com/temirov/panes/internal/filesystem"
	"github.com/temirov/panes/internal/hosts"
	"github.com/temirov/panes/internal/names"
	"github.com/temirov/panes/internal/permissions"
	pathutils "github.com/temirov/panes/internal/utils/path"
)

const (
	statusCommandUseConstant              = "status"
	statusCommandShortDescriptionConstant = "Print the account dashboard"
	statusCommandLongDescriptionConstant  = "status prints a header naming the account and cluster followed by home directory visibility, the last active time and On-Demand usage."
	titleTemplateConstant                 = "%s on %s"
	hostnameLookupErrorTemplateConstant   = "unable to determine local hostname: %w"
	unknownClusterMessageConstant         = "hostname is not a known login node"
	dashboardRenderedMessageConstant      = "dashboard rendered"
	logFieldHostnameConstant              = "hostname"
	logFieldTitleConstant                 = "title"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the status dashboard command.
type CommandBuilder struct {
	LoggerProvider                LoggerProvider
	DisplayConfigurationProvider  display.ConfigurationProvider
	ActivityConfigurationProvider activity.ConfigurationProvider
	FileSystem                    filesystem.FileSystem
	Clock                         activity.Clock
	HomeExpander                  *pathutils.HomeExpander
	HostnameProvider              hosts.HostnameProvider
	UserLookup                    names.UserLookup
}

// Build constructs the status command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   statusCommandUseConstant,
		Short: statusCommandShortDescriptionConstant,
		Long:  statusCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	logger := builder.resolveLogger()
	writer := command.OutOrStdout()

	title, titleError := builder.resolveTitle(logger)
	if titleError != nil {
		return titleError
	}

	displayConfiguration := display.ResolveConfiguration(builder.DisplayConfigurationProvider)
	if dividerError := display.PrintDivider(writer, title, "", displayConfiguration.Gutter, displayConfiguration.Width); dividerError != nil {
		return dividerError
	}

	activityConfiguration := builder.resolveActivityConfiguration()
	homeExpander := builder.homeExpander()
	homeDirectory := homeExpander.Expand(activityConfiguration.Home)

	classifier := permissions.NewClassifier(builder.FileSystem)
	if visibilityError := permissions.ReportVisibility(writer, classifier, logger, displayConfiguration.Gutter, []string{homeDirectory}); visibilityError != nil {
		return visibilityError
	}

	tracker := activity.NewTracker(builder.FileSystem, builder.Clock)
	if lastActiveError := activity.ReportLastActive(writer, tracker, logger, displayConfiguration.Gutter, homeDirectory); lastActiveError != nil {
		return lastActiveError
	}

	applications := make([]activity.OnDemandApplication, 0, len(activityConfiguration.OnDemand))
	for _, application := range activityConfiguration.OnDemand {
		applications = append(applications, activity.OnDemandApplication{Name: application.Name, Path: homeExpander.Expand(application.Path)})
	}
	if onDemandError := activity.ReportOnDemand(writer, tracker, logger, displayConfiguration.Gutter, applications); onDemandError != nil {
		return onDemandError
	}

	logger.Debug(dashboardRenderedMessageConstant, zap.String(logFieldTitleConstant, title))
	return nil
}

func (builder *CommandBuilder) resolveTitle(logger *zap.Logger) (string, error) {
	displayName, displayNameError := names.CurrentDisplayName(builder.UserLookup)
	if displayNameError != nil {
		return "", displayNameError
	}

	hostnameProvider := builder.HostnameProvider
	if hostnameProvider == nil {
		hostnameProvider = os.Hostname
	}
	hostname, hostnameError := hostnameProvider()
	if hostnameError != nil {
		return "", fmt.Errorf(hostnameLookupErrorTemplateConstant, hostnameError)
	}

	clusterName, known := hosts.ClusterName(hostname)
	if !known {
		logger.Warn(unknownClusterMessageConstant, zap.String(logFieldHostnameConstant, hostname))
		clusterName = hostname
	}

	return fmt.Sprintf(titleTemplateConstant, displayName, clusterName), nil
}

func (builder *CommandBuilder) homeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander == nil {
		builder.HomeExpander = pathutils.NewHomeExpander()
	}
	return builder.HomeExpander
}

func (builder *CommandBuilder) resolveActivityConfiguration() activity.Configuration {
	configuration := activity.DefaultConfiguration()
	if builder.ActivityConfigurationProvider != nil {
		configuration = builder.ActivityConfigurationProvider()
	}
	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
