package display

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	dividerCommandUseConstant              = "divider TITLE [MESSAGE...]"
	dividerCommandShortDescriptionConstant = "Print a dashboard section divider"
	dividerCommandLongDescriptionConstant  = "divider prints a blank line, the gutter-prefixed title, a rule as wide as the display and an optional message."
	dividerMissingTitleMessageConstant     = "divider requires a title"
	dividerPrintedMessageConstant          = "divider printed"
	logFieldTitleConstant                  = "title"
	logFieldWidthConstant                  = "width"
	messageWordSeparatorConstant           = " "
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// DividerCommandBuilder assembles the divider command.
type DividerCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the divider command.
func (builder *DividerCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   dividerCommandUseConstant,
		Short: dividerCommandShortDescriptionConstant,
		Long:  dividerCommandLongDescriptionConstant,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *DividerCommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 || len(strings.TrimSpace(arguments[0])) == 0 {
		return errors.New(dividerMissingTitleMessageConstant)
	}

	configuration := ResolveConfiguration(builder.ConfigurationProvider)
	title := arguments[0]
	message := strings.Join(arguments[1:], messageWordSeparatorConstant)

	if printError := PrintDivider(command.OutOrStdout(), title, message, configuration.Gutter, configuration.Width); printError != nil {
		return printError
	}

	resolveLogger(builder.LoggerProvider).Debug(
		dividerPrintedMessageConstant,
		zap.String(logFieldTitleConstant, title),
		zap.Int(logFieldWidthConstant, configuration.Width),
	)
	return nil
}

// resolveLogger invokes provider when present, falling back to a no-op logger.
func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}

	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
