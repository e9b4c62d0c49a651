package filesystem

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// FileSystem exposes the filesystem primitives used by the dashboard formatters.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	CanRead(path string) bool
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists directory entries.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// CanRead reports whether the invoking user passes the access(2) read check for the path.
func (OSFileSystem) CanRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}
