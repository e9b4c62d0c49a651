// Package permissions classifies directory visibility for other cluster users.
//
// IsReadExecutable inspects the raw "other" mode bits, IsReadable asks the
// kernel whether the invoking user may read a path, and PublicOrPrivate turns
// the former into the dashboard's visibility label.
package permissions
