package display

import (
	"fmt"
	"io"
	"strings"
)

const (
	dividerRuleCharacterConstant      = "="
	dividerWriteErrorTemplateConstant = "unable to write divider: %w"
)

// PrintDivider writes a blank line, the gutter-prefixed title, a rule of width equals signs and the optional message.
func PrintDivider(writer io.Writer, title string, message string, gutter string, width int) error {
	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(gutter + title + "\n")
	builder.WriteString(strings.Repeat(dividerRuleCharacterConstant, max(width, 0)) + "\n")
	if len(message) > 0 {
		builder.WriteString(message + "\n")
	}

	if _, writeError := io.WriteString(writer, builder.String()); writeError != nil {
		return fmt.Errorf(dividerWriteErrorTemplateConstant, writeError)
	}
	return nil
}
