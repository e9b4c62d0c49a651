package permissions

import (
	"fmt"
	"io/fs"

	"github.com/temirov/panes/internal/filesystem"
)

const (
	otherPermissionMaskConstant           = fs.FileMode(0o007)
	otherReadExecuteConstant              = fs.FileMode(0o005)
	otherReadWriteExecuteConstant         = fs.FileMode(0o007)
	publicVisibilityTemplateConstant      = "%s: public (%d items)"
	privateVisibilityTemplateConstant     = "%s: private"
	statErrorTemplateConstant             = "unable to inspect %s: %w"
	directoryListingErrorTemplateConstant = "unable to list %s: %w"
)

// Classifier inspects path permissions through a FileSystem.
type Classifier struct {
	fileSystem filesystem.FileSystem
}

// NewClassifier constructs a classifier; a nil file system selects the operating system.
func NewClassifier(fileSystem filesystem.FileSystem) Classifier {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return Classifier{fileSystem: fileSystem}
}

// IsReadExecutable reports whether users outside the owner and group may read and traverse the path.
func (classifier Classifier) IsReadExecutable(path string) (bool, error) {
	fileInfo, statError := classifier.fileSystem.Stat(path)
	if statError != nil {
		return false, fmt.Errorf(statErrorTemplateConstant, path, statError)
	}
	return OtherReadExecutable(fileInfo.Mode()), nil
}

// IsReadable reports whether the invoking user may read the path.
func (classifier Classifier) IsReadable(path string) bool {
	return classifier.fileSystem.CanRead(path)
}

// PublicOrPrivate labels the path as public with its entry count, or private.
func (classifier Classifier) PublicOrPrivate(path string) (string, error) {
	readExecutable, inspectionError := classifier.IsReadExecutable(path)
	if inspectionError != nil {
		return "", inspectionError
	}
	if !readExecutable {
		return fmt.Sprintf(privateVisibilityTemplateConstant, path), nil
	}

	directoryEntries, listingError := classifier.fileSystem.ReadDir(path)
	if listingError != nil {
		return "", fmt.Errorf(directoryListingErrorTemplateConstant, path, listingError)
	}
	return fmt.Sprintf(publicVisibilityTemplateConstant, path, len(directoryEntries)), nil
}

// OtherReadExecutable reports whether the "other" permission digit is r-x or rwx.
func OtherReadExecutable(mode fs.FileMode) bool {
	otherBits := mode.Perm() & otherPermissionMaskConstant
	return otherBits == otherReadExecuteConstant || otherBits == otherReadWriteExecuteConstant
}

var defaultClassifier = NewClassifier(nil)

// IsReadExecutable applies Classifier.IsReadExecutable using the operating system.
func IsReadExecutable(path string) (bool, error) {
	return defaultClassifier.IsReadExecutable(path)
}

// IsReadable applies Classifier.IsReadable using the operating system.
func IsReadable(path string) bool {
	return defaultClassifier.IsReadable(path)
}

// PublicOrPrivate applies Classifier.PublicOrPrivate using the operating system.
func PublicOrPrivate(path string) (string, error) {
	return defaultClassifier.PublicOrPrivate(path)
}
