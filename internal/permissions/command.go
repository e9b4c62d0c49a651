package permissions

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/display"
	"github.com/temirov/panes/internal/filesystem"
	pathutils "github.com/temirov/panes/internal/utils/path"
)

const (
	visibilityCommandUseConstant              = "visibility [PATH...]"
	visibilityCommandShortDescriptionConstant = "Report whether directories are visible to other users"
	visibilityCommandLongDescriptionConstant  = "visibility prints a public or private label for each path based on its \"other\" permission bits. Without arguments the configured paths are reported."
	visibilityLineTemplateConstant            = "%s%s\n"
	visibilityWriteErrorTemplateConstant      = "unable to write visibility of %s: %w"
	unreadablePathMessageConstant             = "path is not readable by the current user"
	visibilityReportedMessageConstant         = "visibility reported"
	logFieldPathConstant                      = "path"
	logFieldLabelConstant                     = "label"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current visibility configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the visibility command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	DisplayConfigurationProvider display.ConfigurationProvider
	FileSystem                   filesystem.FileSystem
	HomeExpander                 *pathutils.HomeExpander
}

// Build constructs the visibility command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   visibilityCommandUseConstant,
		Short: visibilityCommandShortDescriptionConstant,
		Long:  visibilityCommandLongDescriptionConstant,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	candidatePaths := arguments
	if len(candidatePaths) == 0 {
		candidatePaths = builder.resolveConfiguration().Paths
	}

	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}

	displayConfiguration := display.ResolveConfiguration(builder.DisplayConfigurationProvider)
	return ReportVisibility(
		command.OutOrStdout(),
		NewClassifier(builder.FileSystem),
		builder.resolveLogger(),
		displayConfiguration.Gutter,
		homeExpander.ExpandAll(candidatePaths),
	)
}

// ReportVisibility writes one gutter-prefixed public or private label per path.
func ReportVisibility(writer io.Writer, classifier Classifier, logger *zap.Logger, gutter string, paths []string) error {
	for _, path := range paths {
		label, labelError := classifier.PublicOrPrivate(path)
		if labelError != nil {
			return labelError
		}

		if !classifier.IsReadable(path) {
			logger.Warn(unreadablePathMessageConstant, zap.String(logFieldPathConstant, path))
		}

		if _, writeError := fmt.Fprintf(writer, visibilityLineTemplateConstant, gutter, label); writeError != nil {
			return fmt.Errorf(visibilityWriteErrorTemplateConstant, path, writeError)
		}
		logger.Debug(visibilityReportedMessageConstant, zap.String(logFieldPathConstant, path), zap.String(logFieldLabelConstant, label))
	}
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	return configuration
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
