package permissions_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/panes/internal/permissions"
)

const (
	testOtherDigitCaseTemplateConstant = "other_digit_%o"
	testPublicDirectoryNameConstant    = "public"
	testPrivateDirectoryNameConstant   = "private"
	testMissingPathNameConstant        = "missing"
	testRegularFileNameConstant        = "notes.txt"
)

func TestIsReadExecutableInspectsOnlyOtherDigit(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()

	for otherDigit := fs.FileMode(0); otherDigit <= 7; otherDigit++ {
		testInstance.Run(fmt.Sprintf(testOtherDigitCaseTemplateConstant, otherDigit), func(testInstance *testing.T) {
			filePath := filepath.Join(temporaryDirectory, fmt.Sprintf("file_%o", otherDigit))
			require.NoError(testInstance, os.WriteFile(filePath, []byte("x"), 0o600))
			require.NoError(testInstance, os.Chmod(filePath, 0o770|otherDigit))

			readExecutable, inspectionError := permissions.IsReadExecutable(filePath)
			require.NoError(testInstance, inspectionError)
			require.Equal(testInstance, otherDigit == 5 || otherDigit == 7, readExecutable)
		})
	}
}

func TestIsReadExecutableMissingPath(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), testMissingPathNameConstant)

	_, inspectionError := permissions.IsReadExecutable(missingPath)
	require.Error(testInstance, inspectionError)
	require.True(testInstance, errors.Is(inspectionError, fs.ErrNotExist))
}

func TestPublicOrPrivate(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()

	publicDirectory := filepath.Join(temporaryDirectory, testPublicDirectoryNameConstant)
	require.NoError(testInstance, os.Mkdir(publicDirectory, 0o700))
	for _, entryName := range []string{".hidden", "data", "results.csv"} {
		require.NoError(testInstance, os.WriteFile(filepath.Join(publicDirectory, entryName), nil, 0o600))
	}
	require.NoError(testInstance, os.Chmod(publicDirectory, 0o755))

	privateDirectory := filepath.Join(temporaryDirectory, testPrivateDirectoryNameConstant)
	require.NoError(testInstance, os.Mkdir(privateDirectory, 0o700))

	publicLabel, publicError := permissions.PublicOrPrivate(publicDirectory)
	require.NoError(testInstance, publicError)
	require.Equal(testInstance, publicDirectory+": public (3 items)", publicLabel)

	privateLabel, privateError := permissions.PublicOrPrivate(privateDirectory)
	require.NoError(testInstance, privateError)
	require.Equal(testInstance, privateDirectory+": private", privateLabel)
}

func TestPublicOrPrivateRejectsPublicRegularFile(testInstance *testing.T) {
	filePath := filepath.Join(testInstance.TempDir(), testRegularFileNameConstant)
	require.NoError(testInstance, os.WriteFile(filePath, []byte("notes"), 0o600))
	require.NoError(testInstance, os.Chmod(filePath, 0o755))

	_, labelError := permissions.PublicOrPrivate(filePath)
	require.Error(testInstance, labelError)
}

func TestIsReadable(testInstance *testing.T) {
	filePath := filepath.Join(testInstance.TempDir(), testRegularFileNameConstant)
	require.NoError(testInstance, os.WriteFile(filePath, []byte("notes"), 0o644))

	require.True(testInstance, permissions.IsReadable(filePath))
	require.False(testInstance, permissions.IsReadable(filePath+".absent"))
}

type stubFileInfo struct {
	mode fs.FileMode
}

func (info stubFileInfo) Name() string       { return "stub" }
func (info stubFileInfo) Size() int64        { return 0 }
func (info stubFileInfo) Mode() fs.FileMode  { return info.mode }
func (info stubFileInfo) ModTime() time.Time { return time.Time{} }
func (info stubFileInfo) IsDir() bool        { return info.mode.IsDir() }
func (info stubFileInfo) Sys() any           { return nil }

type stubFileSystem struct {
	modes       map[string]fs.FileMode
	entries     map[string][]fs.DirEntry
	readable    map[string]bool
	listedPaths []string
}

func (fileSystem *stubFileSystem) Stat(path string) (fs.FileInfo, error) {
	mode, exists := fileSystem.modes[path]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return stubFileInfo{mode: mode}, nil
}

func (fileSystem *stubFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	fileSystem.listedPaths = append(fileSystem.listedPaths, path)
	return fileSystem.entries[path], nil
}

func (fileSystem *stubFileSystem) CanRead(path string) bool {
	return fileSystem.readable[path]
}

func (fileSystem *stubFileSystem) WriteFile(string, []byte, fs.FileMode) error {
	return nil
}

func TestClassifierUsesProvidedFileSystem(testInstance *testing.T) {
	fileSystem := &stubFileSystem{
		modes: map[string]fs.FileMode{
			"/home/alice": fs.ModeDir | 0o701,
			"/home/bob":   fs.ModeDir | 0o705,
		},
		entries: map[string][]fs.DirEntry{
			"/home/bob": make([]fs.DirEntry, 12),
		},
		readable: map[string]bool{"/home/bob": true},
	}
	classifier := permissions.NewClassifier(fileSystem)

	aliceLabel, aliceError := classifier.PublicOrPrivate("/home/alice")
	require.NoError(testInstance, aliceError)
	require.Equal(testInstance, "/home/alice: private", aliceLabel)

	bobLabel, bobError := classifier.PublicOrPrivate("/home/bob")
	require.NoError(testInstance, bobError)
	require.Equal(testInstance, "/home/bob: public (12 items)", bobLabel)

	require.Equal(testInstance, []string{"/home/bob"}, fileSystem.listedPaths)
	require.True(testInstance, classifier.IsReadable("/home/bob"))
	require.False(testInstance, classifier.IsReadable("/home/alice"))
}
