package packages

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/display"
	"github.com/temirov/panes/internal/utils/flags"
	pathutils "github.com/temirov/panes/internal/utils/path"
)

const (
	packagesCommandUseConstant              = "packages [NAME...]"
	packagesCommandShortDescriptionConstant = "Print package names as a colorized grid"
	packagesCommandLongDescriptionConstant  = "packages lays out package names in fixed-width columns. Names in the green set are highlighted green, names in the red set red; green wins when a name is in both."
	fileFlagNameConstant                    = "file"
	fileFlagDescriptionConstant             = "Read additional names from a file (\"-\" reads standard input)"
	redFlagNameConstant                     = "red"
	redFlagDescriptionConstant              = "Names to highlight in red, added to the configured set"
	greenFlagNameConstant                   = "green"
	greenFlagDescriptionConstant            = "Names to highlight in green, added to the configured set"
	colorFlagNameConstant                   = "color"
	colorFlagDescriptionConstant            = "Colorize output"
	colorModeAutoConstant                   = "auto"
	colorModeAlwaysConstant                 = "always"
	colorModeNeverConstant                  = "never"
	standardInputFileNameConstant           = "-"
	fileReadErrorTemplateConstant           = "unable to read package list %s: %w"
	packagesPrintedMessageConstant          = "packages printed"
	logFieldCountConstant                   = "count"
	logFieldRedCountConstant                = "red"
	logFieldGreenCountConstant              = "green"
	logFieldColumnsConstant                 = "columns"
)

var colorChoice = flags.Choice{
	Name:          colorFlagNameConstant,
	DefaultChoice: colorModeAutoConstant,
	Choices:       []string{colorModeAutoConstant, colorModeAlwaysConstant, colorModeNeverConstant},
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current packages configuration.
type ConfigurationProvider func() Configuration

// FileReader reads the contents of a named file.
type FileReader func(path string) ([]byte, error)

// CommandBuilder assembles the packages command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	DisplayConfigurationProvider display.ConfigurationProvider
	PaletteProvider              display.PaletteProvider
	FileReader                   FileReader
	HomeExpander                 *pathutils.HomeExpander
}

// Build constructs the packages command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   packagesCommandUseConstant,
		Short: packagesCommandShortDescriptionConstant,
		Long:  packagesCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(fileFlagNameConstant, "", fileFlagDescriptionConstant)
	command.Flags().StringSlice(redFlagNameConstant, nil, redFlagDescriptionConstant)
	command.Flags().StringSlice(greenFlagNameConstant, nil, greenFlagDescriptionConstant)
	command.Flags().String(colorFlagNameConstant, colorModeAutoConstant, colorChoice.Usage(colorFlagDescriptionConstant))

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	redFlagValues, redFlagError := command.Flags().GetStringSlice(redFlagNameConstant)
	if redFlagError != nil {
		return redFlagError
	}
	greenFlagValues, greenFlagError := command.Flags().GetStringSlice(greenFlagNameConstant)
	if greenFlagError != nil {
		return greenFlagError
	}
	colorFlagValue, colorFlagError := command.Flags().GetString(colorFlagNameConstant)
	if colorFlagError != nil {
		return colorFlagError
	}
	colorMode, colorModeError := colorChoice.Resolve(colorFlagValue)
	if colorModeError != nil {
		return colorModeError
	}
	fileFlagValue, fileFlagError := command.Flags().GetString(fileFlagNameConstant)
	if fileFlagError != nil {
		return fileFlagError
	}

	packageNames := append([]string{}, arguments...)
	if trimmedFileName := strings.TrimSpace(fileFlagValue); len(trimmedFileName) > 0 {
		fileNames, fileNamesError := builder.readNames(command.InOrStdin(), trimmedFileName)
		if fileNamesError != nil {
			return fileNamesError
		}
		packageNames = append(packageNames, fileNames...)
	}

	configuration := builder.resolveConfiguration().Extend(redFlagValues, greenFlagValues)
	displayConfiguration := display.ResolveConfiguration(builder.DisplayConfigurationProvider)
	grid := display.PackageGrid{
		Palette:       builder.resolvePalette(colorMode),
		Gutter:        displayConfiguration.Gutter,
		Width:         displayConfiguration.Width,
		MaxCharacters: displayConfiguration.MaxCharacters,
	}

	if printError := grid.Print(command.OutOrStdout(), packageNames, display.NameSet(configuration.Red), display.NameSet(configuration.Green)); printError != nil {
		return printError
	}

	columns, _ := grid.Columns()
	builder.resolveLogger().Debug(
		packagesPrintedMessageConstant,
		zap.Int(logFieldCountConstant, len(packageNames)),
		zap.Int(logFieldRedCountConstant, len(configuration.Red)),
		zap.Int(logFieldGreenCountConstant, len(configuration.Green)),
		zap.Int(logFieldColumnsConstant, columns),
	)
	return nil
}

func (builder *CommandBuilder) readNames(standardInput io.Reader, fileName string) ([]string, error) {
	if fileName == standardInputFileNameConstant {
		return ParseNames(standardInput)
	}

	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	expandedFileName := homeExpander.Expand(fileName)

	fileReader := builder.FileReader
	if fileReader == nil {
		fileReader = os.ReadFile
	}
	contents, readError := fileReader(expandedFileName)
	if readError != nil {
		return nil, fmt.Errorf(fileReadErrorTemplateConstant, expandedFileName, readError)
	}
	return ParseNames(bytes.NewReader(contents))
}

func (builder *CommandBuilder) resolvePalette(colorMode string) display.Palette {
	switch colorMode {
	case colorModeNeverConstant:
		return display.PlainPalette{}
	case colorModeAlwaysConstant:
		return display.NewTerminalPalette(termenv.ANSI)
	default:
		return display.ResolvePalette(builder.PaletteProvider)
	}
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
