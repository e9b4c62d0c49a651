// Package pathutils expands home directory shortcuts in configured and user supplied paths.
package pathutils
