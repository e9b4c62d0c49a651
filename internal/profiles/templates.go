package profiles

import (
	"fmt"
	"slices"
	"strings"
)

const (
	lineSeparatorConstant                  = "\n"
	unknownTemplateMessageTemplateConstant = "unknown profile template %q (expected one of: %s)"
	templateNameSeparatorConstant          = ", "
)

// TemplateName identifies a shell profile template.
type TemplateName string

// Supported shell profile templates.
const (
	TemplateBashrc      TemplateName = TemplateName("bashrc")
	TemplateBashProfile TemplateName = TemplateName("bash_profile")
)

var bashrcLines = []string{
	"",
	"# .bashrc",
	"",
	"# Source global definitions",
	"if [ -f /etc/bashrc ]; then",
	"        . /etc/bashrc",
	"fi",
	"",
	"# Uncomment the following line if you don't like systemctl's auto-paging feature:",
	"# export SYSTEMD_PAGER=",
	"",
	"# User specific aliases and functions",
	"",
}

var bashProfileLines = []string{
	"",
	"# .bash_profile",
	"",
	"# Get the aliases and functions",
	"if [ -f ~/.bashrc ]; then",
	"        . ~/.bashrc",
	"fi",
	"",
	"# User specific environment and startup programs",
	"",
	"PATH=$PATH:$HOME/.local/bin:$HOME/bin",
	"",
	"export PATH",
	"",
}

var templateFileNames = map[TemplateName]string{
	TemplateBashrc:      ".bashrc",
	TemplateBashProfile: ".bash_profile",
}

// BashrcLines returns the default .bashrc content as ordered lines.
func BashrcLines() []string {
	return slices.Clone(bashrcLines)
}

// BashProfileLines returns the default .bash_profile content as ordered lines.
func BashProfileLines() []string {
	return slices.Clone(bashProfileLines)
}

// TemplateNames lists the supported templates in write order.
func TemplateNames() []TemplateName {
	return []TemplateName{TemplateBashrc, TemplateBashProfile}
}

// ParseTemplateName validates a template identifier.
func ParseTemplateName(rawName string) (TemplateName, error) {
	candidate := TemplateName(strings.TrimSpace(rawName))
	if _, known := templateFileNames[candidate]; known {
		return candidate, nil
	}

	supportedNames := make([]string, 0, len(templateFileNames))
	for _, templateName := range TemplateNames() {
		supportedNames = append(supportedNames, string(templateName))
	}
	return "", fmt.Errorf(unknownTemplateMessageTemplateConstant, rawName, strings.Join(supportedNames, templateNameSeparatorConstant))
}

// Lines returns the ordered lines of the named template.
func (templateName TemplateName) Lines() []string {
	switch templateName {
	case TemplateBashrc:
		return BashrcLines()
	case TemplateBashProfile:
		return BashProfileLines()
	default:
		return nil
	}
}

// FileName returns the dot file name the template is written to.
func (templateName TemplateName) FileName() string {
	return templateFileNames[templateName]
}

// Render joins template lines with newlines, reproducing the original file content.
func Render(lines []string) string {
	return strings.Join(lines, lineSeparatorConstant)
}
