package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testConfigurationContentsConstant = "display:\n  width: 30\n  gutter: \"\"\npackages:\n  green:\n    - julia\n"
)

func isolateConfiguration(testInstance *testing.T) {
	testInstance.Helper()
	testInstance.Setenv("XDG_CONFIG_HOME", testInstance.TempDir())
	testInstance.Setenv("HOME", testInstance.TempDir())
	testInstance.Chdir(testInstance.TempDir())
}

func executeApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()

	application := NewApplication()
	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(&bytes.Buffer{})
	application.rootCommand.SetArgs(arguments)

	executionError := application.Execute()
	return outputBuffer.String(), executionError
}

func TestApplicationExecutesSubcommands(testInstance *testing.T) {
	testCases := []struct {
		name           string
		environment    map[string]string
		arguments      []string
		expectedOutput string
	}{
		{
			name:           "NameCommand",
			arguments:      []string{"name", "Ada", "K.", "Lovelace"},
			expectedOutput: "Ada Lovelace\n",
		},
		{
			name:           "HostCommand",
			arguments:      []string{"host", "della5.princeton.edu"},
			expectedOutput: "della\n",
		},
		{
			name:           "DividerUsesEnvironmentOverrides",
			environment:    map[string]string{"PANES_DISPLAY_WIDTH": "8", "PANES_DISPLAY_GUTTER": " "},
			arguments:      []string{"divider", "Storage", "quota", "exceeded"},
			expectedOutput: "\n Storage\n========\nquota exceeded\n",
		},
		{
			name:           "ProfileShow",
			arguments:      []string{"profile", "show", "bash_profile"},
			expectedOutput: "\n# .bash_profile\n\n# Get the aliases and functions\nif [ -f ~/.bashrc ]; then\n        . ~/.bashrc\nfi\n\n# User specific environment and startup programs\n\nPATH=$PATH:$HOME/.local/bin:$HOME/bin\n\nexport PATH\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			isolateConfiguration(testInstance)
			for environmentName, environmentValue := range testCase.environment {
				testInstance.Setenv(environmentName, environmentValue)
			}

			output, executionError := executeApplication(testInstance, testCase.arguments...)
			require.NoError(testInstance, executionError)
			require.Equal(testInstance, testCase.expectedOutput, output)
		})
	}
}

func TestApplicationReadsConfigurationFile(testInstance *testing.T) {
	isolateConfiguration(testInstance)

	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(testConfigurationContentsConstant), 0o600))

	output, executionError := executeApplication(testInstance, "--config", configurationPath, "packages", "julia", "--color", "never")
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "julia"+strings.Repeat(" ", 9)+"\n", output)
}

func TestApplicationReadsWorkingDirectoryConfiguration(testInstance *testing.T) {
	isolateConfiguration(testInstance)
	require.NoError(testInstance, os.WriteFile(testConfigurationFileNameConstant, []byte(testConfigurationContentsConstant), 0o600))

	application := NewApplication()
	application.rootCommand.SetOut(&bytes.Buffer{})
	application.rootCommand.SetArgs([]string{"name", "Grace", "Hopper"})
	require.NoError(testInstance, application.Execute())

	require.Equal(testInstance, 30, application.configuration.Display.Width)
	require.Equal(testInstance, []string{"julia"}, application.configuration.Packages.Green)
	require.Equal(testInstance, testConfigurationFileNameConstant, filepath.Base(application.configurationMetadata.ConfigFileUsed))
}

func TestApplicationLoggingOverrides(testInstance *testing.T) {
	testCases := []struct {
		name              string
		arguments         []string
		expectedError     string
		expectedLogLevel  string
		expectedLogFormat string
	}{
		{
			name:              "FlagsOverrideDefaults",
			arguments:         []string{"--log-level", "debug", "--log-format", "console", "name", "Ada", "Lovelace"},
			expectedLogLevel:  "debug",
			expectedLogFormat: "console",
		},
		{
			name:          "UnsupportedLogLevel",
			arguments:     []string{"--log-level", "verbose", "name", "Ada", "Lovelace"},
			expectedError: "unsupported log level",
		},
		{
			name:          "UnsupportedLogFormat",
			arguments:     []string{"--log-format", "xml", "name", "Ada", "Lovelace"},
			expectedError: "unsupported log format",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			isolateConfiguration(testInstance)

			application := NewApplication()
			application.rootCommand.SetOut(&bytes.Buffer{})
			application.rootCommand.SetErr(&bytes.Buffer{})
			application.rootCommand.SetArgs(testCase.arguments)

			executionError := application.Execute()
			if len(testCase.expectedError) > 0 {
				require.ErrorContains(testInstance, executionError, testCase.expectedError)
				return
			}
			require.NoError(testInstance, executionError)
			require.Equal(testInstance, testCase.expectedLogLevel, application.configuration.Common.LogLevel)
			require.Equal(testInstance, testCase.expectedLogFormat, application.configuration.Common.LogFormat)
		})
	}
}

func TestApplicationVersionAndHelp(testInstance *testing.T) {
	isolateConfiguration(testInstance)

	versionOutput, versionError := executeApplication(testInstance, "--version")
	require.NoError(testInstance, versionError)
	require.Contains(testInstance, versionOutput, Version)

	helpOutput, helpError := executeApplication(testInstance)
	require.NoError(testInstance, helpError)
	for _, commandName := range []string{"activity", "divider", "host", "name", "packages", "profile", "status", "visibility"} {
		require.Contains(testInstance, helpOutput, commandName)
	}
}
