package activity_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/panes/internal/activity"
	"github.com/temirov/panes/internal/filesystem"
)

const (
	testHomeDirectoryNameConstant = "home"
	testMissingPathNameConstant   = "absent"
)

func fixedClock() time.Time {
	return testReferenceTime
}

func TestTrackerLastActiveReadsModificationTime(testInstance *testing.T) {
	homeDirectory := filepath.Join(testInstance.TempDir(), testHomeDirectoryNameConstant)
	require.NoError(testInstance, os.Mkdir(homeDirectory, 0o755))

	modified := testReferenceTime.Add(-2 * time.Hour)
	require.NoError(testInstance, os.Chtimes(homeDirectory, modified, modified))

	tracker := activity.NewTracker(filesystem.OSFileSystem{}, fixedClock)
	description, descriptionError := tracker.LastActive(homeDirectory)
	require.NoError(testInstance, descriptionError)
	require.Equal(testInstance, "Active: 2 hours ago", description)
}

func TestTrackerOnDemandLastUsedWritesLine(testInstance *testing.T) {
	sessionDirectory := filepath.Join(testInstance.TempDir(), testApplicationNameConstant)
	require.NoError(testInstance, os.Mkdir(sessionDirectory, 0o755))

	modified := testReferenceTime.Add(-3 * testDayConstant)
	require.NoError(testInstance, os.Chtimes(sessionDirectory, modified, modified))

	outputBuffer := &bytes.Buffer{}
	tracker := activity.NewTracker(nil, fixedClock)
	require.NoError(testInstance, tracker.OnDemandLastUsed(outputBuffer, testApplicationNameConstant, sessionDirectory, testGutterConstant))
	require.Equal(testInstance, "  OnDemand jupyter: 3 days ago\n", outputBuffer.String())
}

func TestTrackerMissingPath(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), testMissingPathNameConstant)
	tracker := activity.NewTracker(nil, fixedClock)

	_, descriptionError := tracker.LastActive(missingPath)
	require.True(testInstance, errors.Is(descriptionError, fs.ErrNotExist))

	outputBuffer := &bytes.Buffer{}
	onDemandError := tracker.OnDemandLastUsed(outputBuffer, testApplicationNameConstant, missingPath, testGutterConstant)
	require.True(testInstance, errors.Is(onDemandError, fs.ErrNotExist))
	require.Empty(testInstance, outputBuffer.String())
}

func TestLastActiveUsesCurrentTime(testInstance *testing.T) {
	filePath := filepath.Join(testInstance.TempDir(), testHomeDirectoryNameConstant)
	require.NoError(testInstance, os.WriteFile(filePath, nil, 0o600))

	modified := time.Now().Add(-3 * time.Hour)
	require.NoError(testInstance, os.Chtimes(filePath, modified, modified))

	description, descriptionError := activity.LastActive(filePath)
	require.NoError(testInstance, descriptionError)
	require.Equal(testInstance, "Active: 3 hours ago", description)
}
