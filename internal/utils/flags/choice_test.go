package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "table",
			choices:        []string{"table", "yaml"},
			description:    "Render the host map as a TABLE or yaml.",
			expectedOutput: "`<TABLE|yaml>` Render the host map as a TABLE or yaml.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "yaml",
			choices:        []string{"table", "yaml"},
			description:    "",
			expectedOutput: "`<table|YAML>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "bashrc",
			choices:        []string{"bashrc", "BASHRC", "bash_profile"},
			description:    "Template to print.",
			expectedOutput: "`<BASHRC|bash_profile>` Template to print.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestChoiceResolve(t *testing.T) {
	outputChoice := Choice{Name: "output format", DefaultChoice: "table", Choices: []string{"table", "yaml"}}

	testCases := []struct {
		name          string
		value         string
		expectedValue string
		expectError   bool
	}{
		{name: "EmptySelectsDefault", value: "", expectedValue: "table"},
		{name: "CaseInsensitive", value: " YAML ", expectedValue: "yaml"},
		{name: "Unsupported", value: "json", expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolvedValue, resolveError := outputChoice.Resolve(testCase.value)
			if testCase.expectError {
				require.Error(t, resolveError)
				require.Contains(t, resolveError.Error(), "<TABLE|yaml>")
				return
			}
			require.NoError(t, resolveError)
			require.Equal(t, testCase.expectedValue, resolvedValue)
		})
	}
}
