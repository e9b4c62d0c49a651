package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/panes/cmd/cli"
	"github.com/temirov/panes/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetTestNameConstant    = "readme_configuration"
	readmeSnippetTemporaryPattern    = "readme-config-*.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	unexpectedSectionMessageTemplate = "unexpected configuration section %s"
	readmeEnvironmentPrefixConstant  = "PANESREADME"
	defaultTempDirectoryRootConstant = ""
)

var expectedConfigurationSections = map[string]struct{}{
	"common":     {},
	"display":    {},
	"packages":   {},
	"visibility": {},
	"activity":   {},
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	testCases := []struct {
		name          string
		configuration string
	}{
		{
			name:          readmeSnippetTestNameConstant,
			configuration: snippetContent,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			var rawSections map[string]any
			require.NoError(subtest, yaml.Unmarshal([]byte(testCase.configuration), &rawSections))
			require.Len(subtest, rawSections, len(expectedConfigurationSections))
			for sectionName := range rawSections {
				_, expected := expectedConfigurationSections[sectionName]
				require.Truef(subtest, expected, unexpectedSectionMessageTemplate, sectionName)
			}

			tempFile, tempFileError := os.CreateTemp(defaultTempDirectoryRootConstant, readmeSnippetTemporaryPattern)
			require.NoError(subtest, tempFileError)
			subtest.Cleanup(func() {
				require.NoError(subtest, os.Remove(tempFile.Name()))
			})

			_, writeError := tempFile.WriteString(testCase.configuration)
			require.NoError(subtest, writeError)
			require.NoError(subtest, tempFile.Close())

			loader := utils.NewConfigurationLoader("config", "yaml", readmeEnvironmentPrefixConstant, nil)
			var applicationConfiguration cli.ApplicationConfiguration
			_, loadError := loader.LoadConfiguration(tempFile.Name(), map[string]any{}, &applicationConfiguration)
			require.NoError(subtest, loadError)

			require.Equal(subtest, "console", applicationConfiguration.Common.LogFormat)
			require.Equal(subtest, []string{"anaconda3", "julia"}, applicationConfiguration.Packages.Green)
			require.Len(subtest, applicationConfiguration.Visibility.Paths, 2)
			require.Len(subtest, applicationConfiguration.Activity.OnDemand, 2)
			require.Equal(subtest, "jupyter", applicationConfiguration.Activity.OnDemand[0].Name)
		})
	}
}
