package activity

import (
	"fmt"
	"io"
	"time"

	"github.com/temirov/panes/internal/filesystem"
)

const (
	modificationTimeErrorTemplateConstant = "unable to read modification time of %s: %w"
	onDemandWriteErrorTemplateConstant    = "unable to write On-Demand activity for %s: %w"
)

// Clock supplies the current time.
type Clock func() time.Time

// Tracker formats activity lines from path modification times.
type Tracker struct {
	fileSystem filesystem.FileSystem
	clock      Clock
}

// NewTracker constructs a Tracker; nil dependencies select the operating system and time.Now.
func NewTracker(fileSystem filesystem.FileSystem, clock Clock) Tracker {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	if clock == nil {
		clock = time.Now
	}
	return Tracker{fileSystem: fileSystem, clock: clock}
}

// ModificationTime returns the modification time of path.
func (tracker Tracker) ModificationTime(path string) (time.Time, error) {
	fileInfo, statError := tracker.fileSystem.Stat(path)
	if statError != nil {
		return time.Time{}, fmt.Errorf(modificationTimeErrorTemplateConstant, path, statError)
	}
	return fileInfo.ModTime(), nil
}

// LastActive describes how long ago path was modified.
func (tracker Tracker) LastActive(path string) (string, error) {
	modified, modificationError := tracker.ModificationTime(path)
	if modificationError != nil {
		return "", modificationError
	}
	return FormatLastActive(modified, tracker.clock()), nil
}

// OnDemandLastUsed writes one line describing when application was last used, using path as the proxy.
func (tracker Tracker) OnDemandLastUsed(writer io.Writer, application string, path string, gutter string) error {
	modified, modificationError := tracker.ModificationTime(path)
	if modificationError != nil {
		return modificationError
	}

	line := FormatOnDemandLastUsed(application, gutter, modified, tracker.clock())
	if _, writeError := io.WriteString(writer, line+"\n"); writeError != nil {
		return fmt.Errorf(onDemandWriteErrorTemplateConstant, application, writeError)
	}
	return nil
}

var defaultTracker = NewTracker(nil, nil)

// LastActive applies Tracker.LastActive using the operating system clock and file system.
func LastActive(path string) (string, error) {
	return defaultTracker.LastActive(path)
}

// OnDemandLastUsed applies Tracker.OnDemandLastUsed using the operating system clock and file system.
func OnDemandLastUsed(writer io.Writer, application string, path string, gutter string) error {
	return defaultTracker.OnDemandLastUsed(writer, application, path, gutter)
}
