// Package flags formats and validates enumerated command-line flag values.
package flags
