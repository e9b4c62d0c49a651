package names

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	nameCommandUseConstant              = "name [FULL NAME...]"
	nameCommandShortDescriptionConstant = "Print a full name without its middle initial"
	nameCommandLongDescriptionConstant  = "name drops a middle initial from the given full name. Without arguments the current account's full name is used."
	nameLineTemplateConstant            = "%s\n"
)

// CommandBuilder assembles the name command.
type CommandBuilder struct {
	UserLookup UserLookup
}

// Build constructs the name command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   nameCommandUseConstant,
		Short: nameCommandShortDescriptionConstant,
		Long:  nameCommandLongDescriptionConstant,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	displayName := ""
	if len(arguments) > 0 {
		displayName = RemoveMiddleInitial(strings.Join(arguments, nameSeparatorConstant))
	} else {
		currentName, lookupError := CurrentDisplayName(builder.UserLookup)
		if lookupError != nil {
			return lookupError
		}
		displayName = currentName
	}

	_, writeError := fmt.Fprintf(command.OutOrStdout(), nameLineTemplateConstant, displayName)
	return writeError
}
