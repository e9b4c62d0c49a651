package profiles

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/filesystem"
	"github.com/temirov/panes/internal/utils/flags"
	pathutils "github.com/temirov/panes/internal/utils/path"
)

const (
	profileCommandUseConstant              = "profile"
	profileCommandShortDescriptionConstant = "Print or restore default shell profiles"
	profileCommandLongDescriptionConstant  = "profile provides the default .bashrc and .bash_profile templates used to restore a user's shell startup files."
	showCommandUseConstant                 = "show TEMPLATE"
	showCommandShortDescriptionConstant    = "Print a profile template"
	writeCommandUseConstant                = "write"
	writeCommandShortDescriptionConstant   = "Write .bashrc and .bash_profile into a directory"
	writeCommandLongDescriptionConstant    = "write restores both profile templates. Existing files are kept unless --force is set."
	directoryFlagNameConstant              = "directory"
	directoryFlagDescriptionConstant       = "Directory receiving the profile files"
	forceFlagNameConstant                  = "force"
	forceFlagDescriptionConstant           = "Overwrite existing profile files"
	defaultDirectoryConstant               = "~"
	profileFilePermissionsConstant         = fs.FileMode(0o644)
	writtenLineTemplateConstant            = "wrote %s\n"
	skippedLineTemplateConstant            = "kept %s\n"
	showWriteErrorTemplateConstant         = "unable to print template %s: %w"
	writeFileErrorTemplateConstant         = "unable to write profile %s: %w"
	inspectFileErrorTemplateConstant       = "unable to inspect profile %s: %w"
	profileWrittenMessageConstant          = "profile written"
	profileKeptMessageConstant             = "existing profile kept"
	logFieldPathConstant                   = "path"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the profile command hierarchy.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
	FileSystem     filesystem.FileSystem
	HomeExpander   *pathutils.HomeExpander
}

// WriteResult records the outcome for one profile file.
type WriteResult struct {
	Path    string
	Written bool
}

// Build constructs the profile command with show and write subcommands.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	profileCommand := &cobra.Command{
		Use:   profileCommandUseConstant,
		Short: profileCommandShortDescriptionConstant,
		Long:  profileCommandLongDescriptionConstant,
	}

	templateChoices := make([]string, 0, len(TemplateNames()))
	for _, templateName := range TemplateNames() {
		templateChoices = append(templateChoices, string(templateName))
	}

	showCommand := &cobra.Command{
		Use:       showCommandUseConstant,
		Short:     showCommandShortDescriptionConstant,
		Long:      flags.FormatChoiceUsage(string(TemplateBashrc), templateChoices, showCommandShortDescriptionConstant),
		Args:      cobra.ExactArgs(1),
		ValidArgs: templateChoices,
		RunE:      builder.runShow,
	}

	writeCommand := &cobra.Command{
		Use:   writeCommandUseConstant,
		Short: writeCommandShortDescriptionConstant,
		Long:  writeCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.runWrite,
	}
	writeCommand.Flags().String(directoryFlagNameConstant, defaultDirectoryConstant, directoryFlagDescriptionConstant)
	writeCommand.Flags().Bool(forceFlagNameConstant, false, forceFlagDescriptionConstant)

	profileCommand.AddCommand(showCommand, writeCommand)

	return profileCommand, nil
}

func (builder *CommandBuilder) runShow(command *cobra.Command, arguments []string) error {
	templateName, parseError := ParseTemplateName(arguments[0])
	if parseError != nil {
		return parseError
	}
	if _, writeError := io.WriteString(command.OutOrStdout(), Render(templateName.Lines())); writeError != nil {
		return fmt.Errorf(showWriteErrorTemplateConstant, templateName, writeError)
	}
	return nil
}

func (builder *CommandBuilder) runWrite(command *cobra.Command, _ []string) error {
	directoryFlagValue, directoryFlagError := command.Flags().GetString(directoryFlagNameConstant)
	if directoryFlagError != nil {
		return directoryFlagError
	}
	forceFlagValue, forceFlagError := command.Flags().GetBool(forceFlagNameConstant)
	if forceFlagError != nil {
		return forceFlagError
	}

	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	results, writeError := WriteProfiles(builder.FileSystem, homeExpander.Expand(directoryFlagValue), forceFlagValue)
	logger := builder.resolveLogger()
	for _, result := range results {
		lineTemplate := skippedLineTemplateConstant
		logMessage := profileKeptMessageConstant
		if result.Written {
			lineTemplate = writtenLineTemplateConstant
			logMessage = profileWrittenMessageConstant
		}
		logger.Info(logMessage, zap.String(logFieldPathConstant, result.Path))
		if _, printError := fmt.Fprintf(command.OutOrStdout(), lineTemplate, result.Path); printError != nil {
			return printError
		}
	}
	return writeError
}

// WriteProfiles writes every template into directory, keeping existing files unless force is set.
func WriteProfiles(fileSystem filesystem.FileSystem, directory string, force bool) ([]WriteResult, error) {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}

	results := make([]WriteResult, 0, len(TemplateNames()))
	for _, templateName := range TemplateNames() {
		profilePath := filepath.Join(directory, templateName.FileName())

		if !force {
			_, statError := fileSystem.Stat(profilePath)
			if statError == nil {
				results = append(results, WriteResult{Path: profilePath, Written: false})
				continue
			}
			if !errors.Is(statError, fs.ErrNotExist) {
				return results, fmt.Errorf(inspectFileErrorTemplateConstant, profilePath, statError)
			}
		}

		if writeError := fileSystem.WriteFile(profilePath, []byte(Render(templateName.Lines())), profileFilePermissionsConstant); writeError != nil {
			return results, fmt.Errorf(writeFileErrorTemplateConstant, profilePath, writeError)
		}
		results = append(results, WriteResult{Path: profilePath, Written: true})
	}
	return results, nil
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
