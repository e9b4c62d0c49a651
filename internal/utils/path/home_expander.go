package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
	variableSymbolConstant          = "$"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// EnvironmentLookup returns the value of an environment variable, or an empty string when unset.
type EnvironmentLookup func(name string) string

// HomeExpander converts "$VARIABLE" references and "~" shortcuts in dashboard paths to absolute paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	environmentLookup     EnvironmentLookup
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	return NewHomeExpanderWithEnvironment(provider, os.Getenv)
}

// NewHomeExpanderWithEnvironment constructs a HomeExpander with custom home and environment lookups.
func NewHomeExpanderWithEnvironment(provider HomeDirectoryProvider, lookup EnvironmentLookup) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	if lookup == nil {
		lookup = os.Getenv
	}
	return &HomeExpander{homeDirectoryProvider: provider, environmentLookup: lookup}
}

// HomeDirectory returns the resolved home directory.
func (expander *HomeExpander) HomeDirectory() (string, error) {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	return expander.homeDirectory, expander.homeDirectoryError
}

// Expand substitutes $VARIABLE references, then resolves a leading "~" or "~/" to the user's home directory.
// Other paths are trimmed and returned as is.
func (expander *HomeExpander) Expand(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if expander == nil {
		return trimmedPath
	}
	if strings.Contains(trimmedPath, variableSymbolConstant) {
		trimmedPath = strings.TrimSpace(os.Expand(trimmedPath, expander.environmentLookup))
	}
	if !strings.HasPrefix(trimmedPath, tildeSymbolConstant) {
		return trimmedPath
	}

	homeDirectory, homeDirectoryError := expander.HomeDirectory()
	if homeDirectoryError != nil || len(homeDirectory) == 0 {
		return trimmedPath
	}

	if trimmedPath == tildeSymbolConstant {
		return homeDirectory
	}

	if relativePath, hasPrefix := strings.CutPrefix(trimmedPath, tildeForwardSlashPrefixConstant); hasPrefix {
		return filepath.Join(homeDirectory, relativePath)
	}

	return trimmedPath
}

// ExpandAll expands every non-empty path and drops blank entries.
func (expander *HomeExpander) ExpandAll(candidatePaths []string) []string {
	expandedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		expandedPath := expander.Expand(candidatePath)
		if len(expandedPath) == 0 {
			continue
		}
		expandedPaths = append(expandedPaths, expandedPath)
	}
	return expandedPaths
}
