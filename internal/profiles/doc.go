// Package profiles holds the default shell profile templates restored for
// cluster accounts and the command that writes them to a home directory.
package profiles
