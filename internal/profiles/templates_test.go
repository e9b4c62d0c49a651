package profiles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/panes/internal/profiles"
)

func TestTemplatesBeginAndEndWithEmptyLines(testInstance *testing.T) {
	for _, templateName := range profiles.TemplateNames() {
		testInstance.Run(string(templateName), func(testInstance *testing.T) {
			lines := templateName.Lines()
			require.NotEmpty(testInstance, lines)
			require.Empty(testInstance, lines[0])
			require.Empty(testInstance, lines[len(lines)-1])
			require.Equal(testInstance, "# "+templateName.FileName(), lines[1])
		})
	}
}

func TestRenderReproducesFileContent(testInstance *testing.T) {
	rendered := profiles.Render(profiles.BashProfileLines())
	require.True(testInstance, strings.HasPrefix(rendered, "\n# .bash_profile\n"))
	require.True(testInstance, strings.HasSuffix(rendered, "\nexport PATH\n"))
	require.Contains(testInstance, rendered, "PATH=$PATH:$HOME/.local/bin:$HOME/bin\n")

	renderedBashrc := profiles.Render(profiles.BashrcLines())
	require.Contains(testInstance, renderedBashrc, "if [ -f /etc/bashrc ]; then\n        . /etc/bashrc\nfi\n")
	require.True(testInstance, strings.HasSuffix(renderedBashrc, "# User specific aliases and functions\n"))
}

func TestLinesReturnCopies(testInstance *testing.T) {
	lines := profiles.BashrcLines()
	lines[1] = "mutated"
	require.Equal(testInstance, "# .bashrc", profiles.BashrcLines()[1])
}

func TestParseTemplateName(testInstance *testing.T) {
	parsedName, parseError := profiles.ParseTemplateName(" bashrc ")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, profiles.TemplateBashrc, parsedName)
	require.Equal(testInstance, ".bashrc", parsedName.FileName())

	_, unknownError := profiles.ParseTemplateName("zshrc")
	require.Error(testInstance, unknownError)
	require.Contains(testInstance, unknownError.Error(), "bashrc, bash_profile")
}
