package hosts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/panes/internal/utils/flags"
)

const (
	hostCommandUseConstant              = "host [HOSTNAME]"
	hostCommandShortDescriptionConstant = "Translate a login node hostname into its cluster name"
	hostCommandLongDescriptionConstant  = "host prints the cluster served by a login node. Without arguments the local hostname is translated; --list prints every known login node."
	listFlagNameConstant                = "list"
	listFlagDescriptionConstant         = "List every known login node"
	outputFlagNameConstant              = "output"
	outputFlagDescriptionConstant       = "Format used by --list"
	outputFormatTableConstant           = "table"
	outputFormatYAMLConstant            = "yaml"
	listWithHostnameMessageConstant     = "--list does not accept a hostname"
	hostnameLookupErrorTemplateConstant = "unable to determine local hostname: %w"
	clusterLineTemplateConstant         = "%s\n"
	clusterResolvedMessageConstant      = "cluster resolved"
	logFieldHostnameConstant            = "hostname"
	logFieldClusterConstant             = "cluster"
)

var outputChoice = flags.Choice{
	Name:          outputFlagNameConstant,
	DefaultChoice: outputFormatTableConstant,
	Choices:       []string{outputFormatTableConstant, outputFormatYAMLConstant},
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// HostnameProvider reports the local hostname.
type HostnameProvider func() (string, error)

// CommandBuilder assembles the host command.
type CommandBuilder struct {
	LoggerProvider   LoggerProvider
	HostnameProvider HostnameProvider
}

// Build constructs the host command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   hostCommandUseConstant,
		Short: hostCommandShortDescriptionConstant,
		Long:  hostCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Bool(listFlagNameConstant, false, listFlagDescriptionConstant)
	command.Flags().String(outputFlagNameConstant, outputFormatTableConstant, outputChoice.Usage(outputFlagDescriptionConstant))

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	listFlagValue, listFlagError := command.Flags().GetBool(listFlagNameConstant)
	if listFlagError != nil {
		return listFlagError
	}

	if listFlagValue {
		if len(arguments) > 0 {
			return errors.New(listWithHostnameMessageConstant)
		}
		outputFlagValue, outputFlagError := command.Flags().GetString(outputFlagNameConstant)
		if outputFlagError != nil {
			return outputFlagError
		}
		outputFormat, outputFormatError := outputChoice.Resolve(outputFlagValue)
		if outputFormatError != nil {
			return outputFormatError
		}
		if outputFormat == outputFormatYAMLConstant {
			return RenderYAML(command.OutOrStdout(), Entries())
		}
		return RenderTable(command.OutOrStdout(), Entries())
	}

	hostname, hostnameError := builder.resolveHostname(arguments)
	if hostnameError != nil {
		return hostnameError
	}

	clusterName, clusterError := ResolveClusterName(hostname)
	if clusterError != nil {
		return clusterError
	}

	builder.resolveLogger().Debug(clusterResolvedMessageConstant, zap.String(logFieldHostnameConstant, hostname), zap.String(logFieldClusterConstant, clusterName))
	_, writeError := fmt.Fprintf(command.OutOrStdout(), clusterLineTemplateConstant, clusterName)
	return writeError
}

func (builder *CommandBuilder) resolveHostname(arguments []string) (string, error) {
	if len(arguments) == 1 {
		return strings.TrimSpace(arguments[0]), nil
	}

	hostnameProvider := builder.HostnameProvider
	if hostnameProvider == nil {
		hostnameProvider = os.Hostname
	}
	hostname, lookupError := hostnameProvider()
	if lookupError != nil {
		return "", fmt.Errorf(hostnameLookupErrorTemplateConstant, lookupError)
	}
	return hostname, nil
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
