package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func repositoryRoot(testInstance *testing.T) string {
	testInstance.Helper()
	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	requireNoError(testInstance, workingDirectoryError, "")
	return filepath.Dir(currentWorkingDirectory)
}

func isolatedEnvironment(testInstance *testing.T, overrides ...string) []string {
	testInstance.Helper()
	environment := append([]string{}, os.Environ()...)
	environment = append(environment,
		"HOME="+testInstance.TempDir(),
		"XDG_CONFIG_HOME="+testInstance.TempDir(),
	)
	return append(environment, overrides...)
}

func runIntegrationCommand(testInstance *testing.T, repositoryRoot string, environment []string, timeout time.Duration, arguments []string) (string, error) {
	executionContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	command := exec.CommandContext(executionContext, "go", append([]string{"run", "."}, arguments...)...)
	command.Dir = repositoryRoot
	command.Env = environment

	outputBytes, runError := command.CombinedOutput()
	testInstance.Helper()
	return string(outputBytes), runError
}

func filterStructuredOutput(rawOutput string) string {
	lines := strings.Split(rawOutput, "\n")
	var filtered []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, "{") {
			continue
		}
		filtered = append(filtered, line)
	}
	if len(filtered) == 0 {
		return ""
	}
	return strings.Join(filtered, "\n") + "\n"
}

func requireNoError(testInstance *testing.T, err error, output string) {
	testInstance.Helper()
	if err != nil {
		testInstance.Fatalf("command failed: %v\n%s", err, output)
	}
}
