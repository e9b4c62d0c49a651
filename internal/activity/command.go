package activity

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/display"
	"github.com/temirov/panes/internal/filesystem"
	pathutils "github.com/temirov/panes/internal/utils/path"
)

const (
	activityCommandUseConstant              = "activity [PATH]"
	activityCommandShortDescriptionConstant = "Report when a directory was last active"
	activityCommandLongDescriptionConstant  = "activity describes how long ago a path was modified. Without arguments the configured home directory is reported."
	onDemandCommandUseConstant              = "ondemand"
	onDemandCommandShortDescriptionConstant = "Report when On-Demand applications were last used"
	onDemandCommandLongDescriptionConstant  = "ondemand prints one line per On-Demand application using the modification time of its session directory. Applications whose directories are missing are skipped."
	applicationFlagNameConstant             = "app"
	applicationFlagDescriptionConstant      = "Report a single application by name"
	pathFlagNameConstant                    = "path"
	pathFlagDescriptionConstant             = "Session directory for --app (overrides configuration)"
	pathWithoutApplicationMessageConstant   = "--path requires --app"
	unknownApplicationTemplateConstant      = "On-Demand application %q is not configured; provide --path"
	activityLineTemplateConstant            = "%s%s\n"
	activityWriteErrorTemplateConstant      = "unable to write activity of %s: %w"
	onDemandPathMissingMessageConstant      = "On-Demand session directory missing"
	activityReportedMessageConstant         = "activity reported"
	logFieldPathConstant                    = "path"
	logFieldApplicationConstant             = "application"
	logFieldDescriptionConstant             = "description"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current activity configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the activity command and its ondemand subcommand.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	DisplayConfigurationProvider display.ConfigurationProvider
	FileSystem                   filesystem.FileSystem
	Clock                        Clock
	HomeExpander                 *pathutils.HomeExpander
}

// Build constructs the activity command hierarchy.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	activityCommand := &cobra.Command{
		Use:   activityCommandUseConstant,
		Short: activityCommandShortDescriptionConstant,
		Long:  activityCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runActivity,
	}

	onDemandCommand := &cobra.Command{
		Use:   onDemandCommandUseConstant,
		Short: onDemandCommandShortDescriptionConstant,
		Long:  onDemandCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.runOnDemand,
	}
	onDemandCommand.Flags().String(applicationFlagNameConstant, "", applicationFlagDescriptionConstant)
	onDemandCommand.Flags().String(pathFlagNameConstant, "", pathFlagDescriptionConstant)

	activityCommand.AddCommand(onDemandCommand)

	return activityCommand, nil
}

func (builder *CommandBuilder) runActivity(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	targetPath := configuration.Home
	if len(arguments) == 1 {
		targetPath = arguments[0]
	}

	displayConfiguration := display.ResolveConfiguration(builder.DisplayConfigurationProvider)
	return ReportLastActive(
		command.OutOrStdout(),
		builder.tracker(),
		builder.resolveLogger(),
		displayConfiguration.Gutter,
		builder.homeExpander().Expand(targetPath),
	)
}

func (builder *CommandBuilder) runOnDemand(command *cobra.Command, _ []string) error {
	applicationFlagValue, applicationFlagError := command.Flags().GetString(applicationFlagNameConstant)
	if applicationFlagError != nil {
		return applicationFlagError
	}
	pathFlagValue, pathFlagError := command.Flags().GetString(pathFlagNameConstant)
	if pathFlagError != nil {
		return pathFlagError
	}

	applications, selectionError := builder.selectApplications(strings.TrimSpace(applicationFlagValue), strings.TrimSpace(pathFlagValue))
	if selectionError != nil {
		return selectionError
	}

	displayConfiguration := display.ResolveConfiguration(builder.DisplayConfigurationProvider)
	return ReportOnDemand(command.OutOrStdout(), builder.tracker(), builder.resolveLogger(), displayConfiguration.Gutter, applications)
}

func (builder *CommandBuilder) selectApplications(applicationName string, pathOverride string) ([]OnDemandApplication, error) {
	configuration := builder.resolveConfiguration()
	homeExpander := builder.homeExpander()

	if len(applicationName) == 0 {
		if len(pathOverride) > 0 {
			return nil, errors.New(pathWithoutApplicationMessageConstant)
		}
		applications := make([]OnDemandApplication, 0, len(configuration.OnDemand))
		for _, application := range configuration.OnDemand {
			applications = append(applications, OnDemandApplication{Name: application.Name, Path: homeExpander.Expand(application.Path)})
		}
		return applications, nil
	}

	application, configured := configuration.Application(applicationName)
	if len(pathOverride) > 0 {
		application = OnDemandApplication{Name: applicationName, Path: pathOverride}
	} else if !configured {
		return nil, fmt.Errorf(unknownApplicationTemplateConstant, applicationName)
	}

	application.Path = homeExpander.Expand(application.Path)
	return []OnDemandApplication{application}, nil
}

// ReportLastActive writes the gutter-prefixed last active line for path.
func ReportLastActive(writer io.Writer, tracker Tracker, logger *zap.Logger, gutter string, path string) error {
	description, descriptionError := tracker.LastActive(path)
	if descriptionError != nil {
		return descriptionError
	}
	if _, writeError := fmt.Fprintf(writer, activityLineTemplateConstant, gutter, description); writeError != nil {
		return fmt.Errorf(activityWriteErrorTemplateConstant, path, writeError)
	}
	logger.Debug(activityReportedMessageConstant, zap.String(logFieldPathConstant, path), zap.String(logFieldDescriptionConstant, description))
	return nil
}

// ReportOnDemand writes one line per application, skipping applications whose session directory does not exist.
func ReportOnDemand(writer io.Writer, tracker Tracker, logger *zap.Logger, gutter string, applications []OnDemandApplication) error {
	for _, application := range applications {
		reportError := tracker.OnDemandLastUsed(writer, application.Name, application.Path, gutter)
		if reportError == nil {
			continue
		}
		if errors.Is(reportError, fs.ErrNotExist) {
			logger.Debug(
				onDemandPathMissingMessageConstant,
				zap.String(logFieldApplicationConstant, application.Name),
				zap.String(logFieldPathConstant, application.Path),
			)
			continue
		}
		return reportError
	}
	return nil
}

func (builder *CommandBuilder) tracker() Tracker {
	return NewTracker(builder.FileSystem, builder.Clock)
}

func (builder *CommandBuilder) homeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander == nil {
		builder.HomeExpander = pathutils.NewHomeExpander()
	}
	return builder.HomeExpander
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
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
